package breadcrumbs

import "github.com/charmbracelet/lipgloss"

// Element is anything the layout places inside a Container. Sizes are
// only meaningful once the container has measured its children.
type Element interface {
	Width() int
	Height() int
}

// Steppable is a dot or separator: an element with a visited and a next
// appearance that can animate between the two. Animations report
// completion by calling done exactly once.
type Steppable interface {
	Element
	Visited() bool
	SetVisited(visited bool)
	AnimateToVisited(done func())
	AnimateToNext(done func())
}

// Label is the text shown under a dot.
type Label interface {
	Element
	Text() string
	Color() lipgloss.Color
	SetColor(color lipgloss.Color)
}

// Factory creates the visual elements of a step.
type Factory interface {
	NewDot(visited bool, cfg Config) Steppable
	NewSeparator(visited bool, width int, cfg Config) Steppable
	NewLabel(text string, color lipgloss.Color, cfg Config) Label
}

// Step groups the elements of one position. The last position has no
// Separator; the leading record created by Config.SeparatorOnStart has
// only a Separator.
type Step struct {
	Separator Steppable
	Dot       Steppable
	Label     Label
}
