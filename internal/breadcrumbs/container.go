package breadcrumbs

// Constraint positions an element relative to its siblings, in the manner
// of a relative layout. Anchors are other elements of the same container;
// a nil anchor means the container edge.
type Constraint struct {
	RightOf    Element // left edge placed at the anchor's right edge
	Below      Element // top edge placed at the anchor's bottom edge
	AlignLeft  Element // left edge aligned with the anchor's left edge
	TopMargin  int
	LeftMargin int
}

// Container hosts the elements of a Breadcrumbs view, measures them and
// resolves their constraints.
//
// OnReady callbacks fire whenever the container has a stable width;
// OnMeasured callbacks fire after children have been measured. Both may
// fire repeatedly, so one-shot listeners remove themselves. Errors
// returned by callbacks propagate to whoever made the container ready.
type Container interface {
	Factory

	Width() int
	Add(el Element)
	Constrain(el Element, c Constraint)
	OnReady(fn func() error) (remove func())
	OnMeasured(fn func() error) (remove func())
}
