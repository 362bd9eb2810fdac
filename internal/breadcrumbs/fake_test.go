package breadcrumbs

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// fakeElement is a steppable element whose animations complete only when
// the test calls finish.
type fakeElement struct {
	name    string
	width   int
	height  int
	visited bool
	pending func()
	log     *[]string
}

func (e *fakeElement) Width() int              { return e.width }
func (e *fakeElement) Height() int             { return e.height }
func (e *fakeElement) Visited() bool           { return e.visited }
func (e *fakeElement) SetVisited(visited bool) { e.visited = visited }

func (e *fakeElement) AnimateToVisited(done func()) {
	e.animate(true, done)
}

func (e *fakeElement) AnimateToNext(done func()) {
	e.animate(false, done)
}

func (e *fakeElement) animate(toVisited bool, done func()) {
	state := "next"
	if toVisited {
		state = "visited"
	}
	*e.log = append(*e.log, fmt.Sprintf("%s->%s", e.name, state))
	e.pending = func() {
		e.visited = toVisited
		done()
	}
}

// finish completes the running animation and reports whether there was one.
func (e *fakeElement) finish() bool {
	if e.pending == nil {
		return false
	}
	fn := e.pending
	e.pending = nil
	fn()
	return true
}

type fakeLabel struct {
	text  string
	width int
	color lipgloss.Color
}

func (l *fakeLabel) Width() int                    { return l.width }
func (l *fakeLabel) Height() int                   { return 1 }
func (l *fakeLabel) Text() string                  { return l.text }
func (l *fakeLabel) Color() lipgloss.Color         { return l.color }
func (l *fakeLabel) SetColor(color lipgloss.Color) { l.color = color }

// fakeContainer records what the layout does to it.
type fakeContainer struct {
	width       int
	children    []Element
	constraints map[Element]Constraint
	ready       Signal
	measured    Signal
	animations  []string
	dots        int
	separators  int
}

func newFakeContainer(width int) *fakeContainer {
	return &fakeContainer{
		width:       width,
		constraints: make(map[Element]Constraint),
	}
}

func (c *fakeContainer) NewDot(visited bool, cfg Config) Steppable {
	d := &fakeElement{
		name:    fmt.Sprintf("dot%d", c.dots),
		width:   cfg.DotDiameter(),
		height:  cfg.DotDiameter(),
		visited: visited,
		log:     &c.animations,
	}
	c.dots++
	return d
}

func (c *fakeContainer) NewSeparator(visited bool, width int, cfg Config) Steppable {
	s := &fakeElement{
		name:    fmt.Sprintf("sep%d", c.separators),
		width:   width,
		height:  cfg.SeparatorHeight,
		visited: visited,
		log:     &c.animations,
	}
	c.separators++
	return s
}

func (c *fakeContainer) NewLabel(text string, color lipgloss.Color, cfg Config) Label {
	return &fakeLabel{text: text, width: len(text), color: color}
}

func (c *fakeContainer) Width() int                          { return c.width }
func (c *fakeContainer) Add(el Element)                      { c.children = append(c.children, el) }
func (c *fakeContainer) Constrain(el Element, cs Constraint) { c.constraints[el] = cs }

func (c *fakeContainer) OnReady(fn func() error) func() {
	return c.ready.Subscribe(fn)
}

func (c *fakeContainer) OnMeasured(fn func() error) func() {
	return c.measured.Subscribe(fn)
}

// makeReady simulates a layout pass of the host.
func (c *fakeContainer) makeReady() error {
	if err := c.ready.Emit(); err != nil {
		return err
	}
	return c.measured.Emit()
}

func dotOf(s Step) *fakeElement       { return s.Dot.(*fakeElement) }
func separatorOf(s Step) *fakeElement { return s.Separator.(*fakeElement) }
func labelOf(s Step) *fakeLabel       { return s.Label.(*fakeLabel) }
