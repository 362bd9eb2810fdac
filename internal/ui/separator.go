package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
)

// Separator is the bar joining two dots. Widths of zero or less draw nothing.
type Separator struct {
	steppable
	width  int
	height int

	visitedColor lipgloss.Color
	nextColor    lipgloss.Color
}

var _ breadcrumbs.Steppable = (*Separator)(nil)

func newSeparator(visited bool, width int, cfg breadcrumbs.Config, animator *Animator) *Separator {
	return &Separator{
		steppable:    steppable{visited: visited, animator: animator},
		width:        width,
		height:       max(cfg.SeparatorHeight, 1),
		visitedColor: cfg.VisitedSeparatorColor,
		nextColor:    cfg.NextSeparatorColor,
	}
}

// Width returns the computed step width, which may be negative when the
// container is too narrow.
func (s *Separator) Width() int  { return s.width }
func (s *Separator) Height() int { return s.height }

// Draw paints the separator with its top-left corner at x, y.
func (s *Separator) Draw(c *Canvas, x, y int) {
	glyph := glyphSeparator
	if s.height > 1 {
		glyph = glyphBlock
	}
	for col := 0; col < s.width; col++ {
		color := s.nextColor
		if s.visitedAt(col, s.width) {
			color = s.visitedColor
		}
		for row := 0; row < s.height; row++ {
			c.Set(x+col, y+row, glyph, color)
		}
	}
}
