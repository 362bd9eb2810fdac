package ui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
)

// Dot is a filled circle of 2*radius by 2*radius cells with an optional
// border ring.
type Dot struct {
	steppable
	radius int
	border int

	visitedBorder, visitedFill lipgloss.Color
	nextBorder, nextFill       lipgloss.Color
}

var _ breadcrumbs.Steppable = (*Dot)(nil)

func newDot(visited bool, cfg breadcrumbs.Config, animator *Animator) *Dot {
	return &Dot{
		steppable:     steppable{visited: visited, animator: animator},
		radius:        max(cfg.Radius, 0),
		border:        max(cfg.DotBorder, 0),
		visitedBorder: cfg.VisitedDotBorderColor,
		visitedFill:   cfg.VisitedDotFillColor,
		nextBorder:    cfg.NextDotBorderColor,
		nextFill:      cfg.NextDotFillColor,
	}
}

func (d *Dot) Width() int  { return d.radius * 2 }
func (d *Dot) Height() int { return d.radius * 2 }

// Draw paints the dot with its top-left corner at x, y.
func (d *Dot) Draw(c *Canvas, x, y int) {
	size := d.Width()
	r := float64(d.radius)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			dx := float64(col) + 0.5 - r
			dy := float64(row) + 0.5 - r
			dist := math.Hypot(dx, dy)
			if dist > r+0.25 {
				continue
			}

			border, fill := d.nextBorder, d.nextFill
			if d.visitedAt(col, size) {
				border, fill = d.visitedBorder, d.visitedFill
			}

			color := fill
			if d.border > 0 && dist > r-float64(d.border) {
				color = border
			}
			c.Set(x+col, y+row, glyphBlock, color)
		}
	}
}
