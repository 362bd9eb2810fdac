package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors using ANSI codes for broad terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Shared text styles.
var (
	titleStyle  = lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	statusStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	errorStyle  = lipgloss.NewStyle().Foreground(ColorError)
)

// RenderError formats err as a red failure line.
func RenderError(err error) string {
	return errorStyle.Render(SymbolFail) + " " + err.Error()
}
