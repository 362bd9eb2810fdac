package breadcrumbs

import (
	"github.com/rileyhilliard/crumbs/internal/errors"
)

// StepWidth returns the separator width that makes dots and separators
// tile containerWidth exactly, up to integer truncation.
func StepWidth(containerWidth, radius, separators int) int {
	dot := radius * 2
	return (containerWidth-dot)/(separators-1) - dot
}

// buildLayout creates the step records for cfg, adds their elements to c in
// creation order and constrains them. It fails before touching c when the
// step count is invalid.
func buildLayout(c Container, cfg Config, current int, labels []string) ([]Step, int, error) {
	if cfg.Steps < 2 {
		return nil, 0, errors.NewInvalidStepCount(cfg.Steps)
	}

	width := StepWidth(c.Width(), cfg.Radius, cfg.SeparatorCount())
	steps := make([]Step, 0, cfg.SeparatorCount())

	if cfg.SeparatorOnStart {
		lead := c.NewSeparator(true, width, cfg)
		c.Add(lead)
		steps = append(steps, Step{Separator: lead})
	}

	last := cfg.Steps - 1
	for position := 0; position <= last; position++ {
		dot := c.NewDot(position == 0 || position <= current, cfg)
		c.Add(dot)
		step := Step{Dot: dot}

		if position < len(labels) {
			// Only the first label starts visited. The rest are recoloured
			// as transitions reach them.
			color := cfg.NextTextColor
			if position == 0 {
				color = cfg.VisitedTextColor
			}
			step.Label = c.NewLabel(labels[position], color, cfg)
			c.Add(step.Label)
		}

		if position < last {
			step.Separator = c.NewSeparator(position < current, width, cfg)
			c.Add(step.Separator)
		}

		steps = append(steps, step)
	}

	locateOnScreen(c, cfg, steps)
	return steps, width, nil
}

// locateOnScreen chains the steps left to right: every dot sits right of
// the previous separator, every separator right of its dot, lowered by
// the radius so it lines up with the dot centres.
func locateOnScreen(c Container, cfg Config, steps []Step) {
	for i, step := range steps {
		if step.Dot != nil && i > 0 {
			c.Constrain(step.Dot, Constraint{RightOf: steps[i-1].Separator})
		}

		if step.Label != nil {
			centerLabel(c, cfg, step.Dot, step.Label)
		}

		if step.Separator != nil {
			sc := Constraint{TopMargin: cfg.Radius}
			if step.Dot != nil {
				sc.RightOf = step.Dot
			}
			c.Constrain(step.Separator, sc)
		}
	}
}

// centerLabel puts label under dot and, once both are measured, shifts it
// left by half their width difference so it is centred on the dot.
func centerLabel(c Container, cfg Config, dot Steppable, label Label) {
	lc := Constraint{Below: dot, AlignLeft: dot}
	c.Constrain(label, lc)

	var remove func()
	remove = c.OnMeasured(func() error {
		remove()
		lc.LeftMargin = -(label.Width() - dot.Width()) / 2
		lc.TopMargin = cfg.TextTopMargin
		c.Constrain(label, lc)
		return nil
	})
}
