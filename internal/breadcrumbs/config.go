package breadcrumbs

import "github.com/charmbracelet/lipgloss"

// Config holds the appearance and geometry of a Breadcrumbs view. It is
// fully populated before the view is created and never changes afterwards.
// Geometry is expressed in the container's units (terminal cells for the
// ui package).
type Config struct {
	// Steps is the number of logical positions. Must be at least 2.
	Steps int

	VisitedDotBorderColor lipgloss.Color
	VisitedDotFillColor   lipgloss.Color
	NextDotBorderColor    lipgloss.Color
	NextDotFillColor      lipgloss.Color

	VisitedSeparatorColor lipgloss.Color
	NextSeparatorColor    lipgloss.Color

	VisitedTextColor lipgloss.Color
	NextTextColor    lipgloss.Color

	Radius          int
	DotBorder       int
	SeparatorHeight int
	TextSize        int
	TextTopMargin   int

	// SeparatorOnStart draws an extra, always visited, separator before the first dot.
	SeparatorOnStart bool
}

// DefaultConfig returns the configuration used when only a step count is given.
func DefaultConfig() Config {
	return Config{
		Steps:                 2,
		VisitedDotBorderColor: "6",
		VisitedDotFillColor:   "6",
		NextDotBorderColor:    "8",
		NextDotFillColor:      "8",
		VisitedSeparatorColor: "6",
		NextSeparatorColor:    "8",
		VisitedTextColor:      "7",
		NextTextColor:         "8",
		Radius:                1,
		DotBorder:             0,
		SeparatorHeight:       1,
		TextSize:              1,
		TextTopMargin:         0,
	}
}

// DotDiameter is the width taken by a single dot.
func (c Config) DotDiameter() int {
	return c.Radius * 2
}

// SeparatorCount is the number of separators the layout reserves width for.
func (c Config) SeparatorCount() int {
	if c.SeparatorOnStart {
		return c.Steps + 1
	}
	return c.Steps
}
