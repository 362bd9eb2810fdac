package doctor

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
	"github.com/rileyhilliard/crumbs/internal/config"
)

// minStepWidth is the narrowest separator that still reads as a bar.
const minStepWidth = 3

// LayoutWidthCheck verifies that the configured view fits in Width cells.
type LayoutWidthCheck struct {
	ConfigPath string
	Width      int // zero when stdout is not a terminal
}

func (c *LayoutWidthCheck) Name() string     { return "layout_width" }
func (c *LayoutWidthCheck) Category() string { return "TERMINAL" }

func (c *LayoutWidthCheck) Run() CheckResult {
	if c.Width <= 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Not a terminal, width unknown",
			Suggestion: "Use 'crumbs render --width N' to pick a width",
		}
	}

	cfg, _, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil || config.Validate(cfg) != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot check layout: invalid config",
		}
	}

	bc := cfg.Breadcrumbs()
	width := breadcrumbs.StepWidth(c.Width, bc.Radius, bc.SeparatorCount())
	switch {
	case width < 1:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%d steps don't fit in %d columns", bc.Steps, c.Width),
			Suggestion: "Widen the terminal, or lower steps or dot.radius",
		}
	case width < minStepWidth:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Separators are only %d cells wide at %d columns", width, c.Width),
			Suggestion: "Widen the terminal for clearer transitions",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Separators are %d cells wide at %d columns", width, c.Width),
	}
}

// ColorCheck reports the color support of the output.
type ColorCheck struct {
	Profile termenv.Profile
}

func (c *ColorCheck) Name() string     { return "color_profile" }
func (c *ColorCheck) Category() string { return "TERMINAL" }

func (c *ColorCheck) Run() CheckResult {
	if c.Profile == termenv.Ascii {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No color support, visited and next steps look the same",
			Suggestion: "Check TERM and NO_COLOR, or use a color terminal",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Colors: " + profileName(c.Profile),
	}
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true color"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "none"
	}
}
