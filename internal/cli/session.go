package cli

import (
	"fmt"

	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
	"github.com/rileyhilliard/crumbs/internal/config"
	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/rileyhilliard/crumbs/internal/logger"
	"github.com/rileyhilliard/crumbs/internal/ui"
)

// session is a Breadcrumbs view wired to a stage, built from config.
type session struct {
	file     *config.File
	path     string
	animator *ui.Animator
	stage    *ui.Stage
	crumbs   *breadcrumbs.Breadcrumbs
}

// newSession loads and validates the config, then creates the view. The
// view is not laid out until the stage is given a size.
func newSession(explicit string) (*session, error) {
	file, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(file); err != nil {
		return nil, err
	}

	log := logger.Default()
	if path != "" {
		log.Debug("using config %s", path)
	} else {
		log.Debug("no config found, using defaults")
	}

	animator := ui.NewAnimator(file.AnimationSettings())
	stage := ui.NewStage(animator)
	crumbs := breadcrumbs.NewWithConfig(stage, file.Breadcrumbs(),
		breadcrumbs.WithLabels(file.Labels...),
		breadcrumbs.WithLogger(log),
	)
	if err := crumbs.SetCurrentStep(file.Current); err != nil {
		return nil, err
	}

	return &session{
		file:     file,
		path:     path,
		animator: animator,
		stage:    stage,
		crumbs:   crumbs,
	}, nil
}

// advance plays n moves to completion, forward for positive n and back for
// negative n, stopping early at either end. Each move may use at most
// frameBudget animator frames.
func (s *session) advance(n, frameBudget int) error {
	move := s.crumbs.NextStep
	if n < 0 {
		move = s.crumbs.PrevStep
		n = -n
	}

	for i := 0; i < n; i++ {
		if !move() {
			return nil
		}
		s.animator.Settle(frameBudget)
		if s.animator.Active() || s.crumbs.Animating() {
			return errors.New(errors.ErrUI,
				fmt.Sprintf("Transition did not finish within %d frames", frameBudget),
				"Check the animation settings in your config")
		}
	}
	return nil
}
