package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
)

// Stage is the terminal host of a Breadcrumbs view. It creates the
// elements, keeps them in insertion order, resolves their relative
// constraints to cell positions and paints them onto a Canvas.
//
// Every SetSize is one layout pass: ready listeners run first, then
// measurement listeners. Elements measure themselves, so measurement is
// immediate.
type Stage struct {
	width       int
	height      int
	children    []breadcrumbs.Element
	constraints map[breadcrumbs.Element]breadcrumbs.Constraint
	ready       breadcrumbs.Signal
	measured    breadcrumbs.Signal
	animator    *Animator
}

var _ breadcrumbs.Container = (*Stage)(nil)

// NewStage creates an empty stage whose elements animate with animator.
func NewStage(animator *Animator) *Stage {
	return &Stage{
		constraints: make(map[breadcrumbs.Element]breadcrumbs.Constraint),
		animator:    animator,
	}
}

// NewDot implements breadcrumbs.Factory.
func (s *Stage) NewDot(visited bool, cfg breadcrumbs.Config) breadcrumbs.Steppable {
	return newDot(visited, cfg, s.animator)
}

// NewSeparator implements breadcrumbs.Factory.
func (s *Stage) NewSeparator(visited bool, width int, cfg breadcrumbs.Config) breadcrumbs.Steppable {
	return newSeparator(visited, width, cfg, s.animator)
}

// NewLabel implements breadcrumbs.Factory.
func (s *Stage) NewLabel(text string, color lipgloss.Color, cfg breadcrumbs.Config) breadcrumbs.Label {
	return newLabel(text, color, cfg)
}

// Width returns the width given by the last SetSize.
func (s *Stage) Width() int {
	return s.width
}

// Add appends an element; later elements paint over earlier ones.
func (s *Stage) Add(el breadcrumbs.Element) {
	s.children = append(s.children, el)
}

// Constrain replaces the constraint of el.
func (s *Stage) Constrain(el breadcrumbs.Element, c breadcrumbs.Constraint) {
	s.constraints[el] = c
}

// OnReady implements breadcrumbs.Container.
func (s *Stage) OnReady(fn func() error) func() {
	return s.ready.Subscribe(fn)
}

// OnMeasured implements breadcrumbs.Container.
func (s *Stage) OnMeasured(fn func() error) func() {
	return s.measured.Subscribe(fn)
}

// SetSize records the space available to the stage and runs a layout pass.
// Errors from listeners are returned unchanged.
func (s *Stage) SetSize(width, height int) error {
	s.width = width
	s.height = height
	if err := s.ready.Emit(); err != nil {
		return err
	}
	return s.measured.Emit()
}

// Children returns the elements in insertion order.
func (s *Stage) Children() []breadcrumbs.Element {
	return append([]breadcrumbs.Element(nil), s.children...)
}

// Position resolves the top-left cell of el.
func (s *Stage) Position(el breadcrumbs.Element) (x, y int) {
	return s.position(el, 0)
}

func (s *Stage) position(el breadcrumbs.Element, depth int) (x, y int) {
	c := s.constraints[el]
	x, y = c.LeftMargin, c.TopMargin

	// Anchors always precede their dependents, so a chain can never be
	// longer than the child list. Deeper means a cycle.
	if depth > len(s.children) {
		return x, y
	}

	switch {
	case c.RightOf != nil:
		ax, _ := s.position(c.RightOf, depth+1)
		x = ax + c.RightOf.Width() + c.LeftMargin
	case c.AlignLeft != nil:
		ax, _ := s.position(c.AlignLeft, depth+1)
		x = ax + c.LeftMargin
	}

	if c.Below != nil {
		_, ay := s.position(c.Below, depth+1)
		y = ay + c.Below.Height() + c.TopMargin
	}
	return x, y
}

// Canvas paints all children onto a canvas as tall as the lowest child.
// It is as wide as the stage, plus whatever centred labels overhang on
// either side; the stage origin moves right by the left overhang.
func (s *Stage) Canvas() *Canvas {
	minX, maxX, height := 0, s.width, 0
	for _, el := range s.children {
		x, y := s.Position(el)
		minX = min(minX, x)
		maxX = max(maxX, x+el.Width())
		height = max(height, y+el.Height())
	}

	gutter := -minX
	c := NewCanvas(maxX+gutter, height)
	for _, el := range s.children {
		if d, ok := el.(drawable); ok {
			x, y := s.Position(el)
			d.Draw(c, x+gutter, y)
		}
	}
	return c
}

// Gutter is the number of columns the leftmost element overhangs the
// stage origin.
func (s *Stage) Gutter() int {
	gutter := 0
	for _, el := range s.children {
		x, _ := s.Position(el)
		gutter = max(gutter, -x)
	}
	return gutter
}

// View renders the stage with colors.
func (s *Stage) View() string {
	return s.Canvas().String()
}
