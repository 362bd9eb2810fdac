package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal column of a canvas row. A zero rune marks the
// second column of a wide glyph.
type cell struct {
	r    rune
	fg   lipgloss.Color
	bold bool
}

// Canvas is a fixed-size grid of styled cells. Writes outside the grid
// are clipped.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Set writes a single-column rune.
func (c *Canvas) Set(x, y int, r rune, fg lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.put(x, y, cell{r: r, fg: fg}, 1)
}

// SetString writes s starting at column x, advancing by each rune's
// display width. Returns the number of columns used.
func (c *Canvas) SetString(x, y int, s string, fg lipgloss.Color, bold bool) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if y >= 0 && y < c.height && col >= 0 && col+w <= c.width {
			c.put(col, y, cell{r: r, fg: fg, bold: bold}, w)
		}
		col += w
	}
	return col - x
}

// put writes cl over w columns starting at x. A wide glyph that is
// partly covered is blanked so the row keeps its column count.
func (c *Canvas) put(x, y int, cl cell, w int) {
	row := c.cells[y]
	if row[x].r == 0 && x > 0 {
		row[x-1] = cell{r: ' '}
	}
	if end := x + w; end < c.width && row[end].r == 0 {
		row[end] = cell{r: ' '}
	}

	row[x] = cl
	for i := 1; i < w; i++ {
		row[x+i] = cell{}
	}
}

// Rune returns the rune at x, y, or a space outside the grid.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ' '
	}
	return c.cells[y][x].r
}

// Color returns the foreground color at x, y.
func (c *Canvas) Color(x, y int) lipgloss.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ""
	}
	return c.cells[y][x].fg
}

// String renders the canvas, one line per row, merging runs of cells
// that share a style. Trailing blanks are trimmed.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// Plain renders the canvas without any styling.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var sb strings.Builder
		for _, cl := range row {
			if cl.r != 0 {
				sb.WriteRune(cl.r)
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []cell) string {
	end := len(row)
	for end > 0 && row[end-1].r == ' ' {
		end--
	}

	var sb strings.Builder
	var run strings.Builder
	var cur cell
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if cur.fg == "" && !cur.bold {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(cur.fg).Bold(cur.bold).Render(run.String()))
		}
		run.Reset()
	}

	for _, cl := range row[:end] {
		if cl.r == 0 {
			continue
		}
		if cl.r == ' ' {
			cl.fg, cl.bold = "", false
		}
		if cl.fg != cur.fg || cl.bold != cur.bold {
			flush()
			cur = cl
		}
		run.WriteRune(cl.r)
	}
	flush()
	return sb.String()
}
