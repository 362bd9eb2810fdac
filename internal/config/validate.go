package config

import (
	"fmt"

	"github.com/rileyhilliard/crumbs/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
// The current step is not range checked here; the view clamps it at layout.
func Validate(cfg *File) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but crumbs only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade crumbs or lower the version field")
	}

	if cfg.Steps < 2 {
		return errors.NewInvalidStepCount(cfg.Steps)
	}

	if len(cfg.Labels) > cfg.Steps {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Got %d labels for %d steps", len(cfg.Labels), cfg.Steps),
			"Remove the extra labels or raise steps")
	}

	geometry := []struct {
		name  string
		value int
	}{
		{"dot.radius", cfg.Dot.Radius},
		{"dot.border", cfg.Dot.Border},
		{"separator.height", cfg.Separator.Height},
		{"label.size", cfg.Label.Size},
		{"label.top_margin", cfg.Label.TopMargin},
	}
	for _, g := range geometry {
		if g.value < 0 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s can't be negative, got %d", g.name, g.value),
				"Use zero or a positive number of cells")
		}
	}

	if cfg.Dot.Radius == 0 {
		return errors.New(errors.ErrConfig,
			"dot.radius must be at least 1",
			"A zero radius leaves nothing to draw")
	}

	if cfg.Animation.FPS <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("animation.fps must be positive, got %d", cfg.Animation.FPS),
			"60 is a good default")
	}
	if cfg.Animation.Frequency <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("animation.frequency must be positive, got %g", cfg.Animation.Frequency),
			"Try 18 for a half second transition")
	}
	if cfg.Animation.Damping <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("animation.damping must be positive, got %g", cfg.Animation.Damping),
			"1 is critically damped; without damping the spring never settles")
	}

	return nil
}
