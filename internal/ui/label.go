package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
)

// Label is the upper-cased caption under a dot. Terminals have a single
// glyph size, so text sizes of 2 and above render bold instead.
type Label struct {
	text  string
	color lipgloss.Color
	bold  bool
}

var _ breadcrumbs.Label = (*Label)(nil)

func newLabel(text string, color lipgloss.Color, cfg breadcrumbs.Config) *Label {
	return &Label{
		text:  strings.ToUpper(text),
		color: color,
		bold:  cfg.TextSize >= 2,
	}
}

func (l *Label) Width() int                    { return lipgloss.Width(l.text) }
func (l *Label) Height() int                   { return 1 }
func (l *Label) Text() string                  { return l.text }
func (l *Label) Color() lipgloss.Color         { return l.color }
func (l *Label) SetColor(color lipgloss.Color) { l.color = color }

// Draw paints the text starting at x, y.
func (l *Label) Draw(c *Canvas, x, y int) {
	c.SetString(x, y, l.text, l.color, l.bold)
}
