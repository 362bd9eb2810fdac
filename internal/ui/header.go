package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Title   string // Flow name shown in bold (e.g., "Checkout")
	Version string // Optional version string (e.g., "v0.1.0")
	Width   int    // Divider width; 0 means HeaderWidth
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the title line and a divider.
func RenderHeader(info HeaderInfo) string {
	width := info.Width
	if width <= 0 {
		width = HeaderWidth
	}

	var output strings.Builder

	output.WriteString(titleStyle.Render(info.Title))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(mutedStyle.Render(info.Version))
	}
	output.WriteString("\n")

	dividerStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	output.WriteString(dividerStyle.Render(strings.Repeat("━", width)))
	output.WriteString("\n")

	return output.String()
}
