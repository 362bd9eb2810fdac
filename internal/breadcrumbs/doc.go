// Package breadcrumbs implements the layout and step state machine of a
// horizontal breadcrumbs progress indicator: a row of dots joined by
// separators, with optional labels under each dot.
//
// # Lifecycle
//
// A Breadcrumbs view is created against a Container. Nothing is laid out
// until the container reports that it knows its width; at that point the
// view builds one Step per position, adds every element to the container
// and assigns relative constraints to them. Layout happens exactly once.
//
//	crumbs := breadcrumbs.New(stage, 4, breadcrumbs.WithLabels("cart", "ship", "pay", "done"))
//	_ = crumbs.SetCurrentStep(1) // only before layout
//	_ = stage.SetSize(80, 10)     // container ready: layout runs here
//	crumbs.NextStep()
//
// # Transitions
//
// NextStep animates the separator after the current dot, then the next
// dot. PrevStep animates the current dot, then the separator before it.
// Exactly one transition may be in flight; requests made while one is
// running are dropped. Moves past either end are silent no-ops.
//
// All methods must be called from the goroutine that drives the
// container's event loop. Animation completion callbacks are expected on
// that same goroutine.
package breadcrumbs
