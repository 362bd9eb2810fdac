package breadcrumbs

import (
	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/rileyhilliard/crumbs/internal/logger"
)

// Breadcrumbs is a step indicator hosted by a Container.
type Breadcrumbs struct {
	container Container
	cfg       Config
	labels    []string
	steps     []Step
	stepWidth int
	ctl       controller
	log       logger.Logger
}

// Option customizes a Breadcrumbs view at construction.
type Option func(*Breadcrumbs)

// WithLogger sets the logger used for layout and transition diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(b *Breadcrumbs) {
		b.log = l
	}
}

// WithLabels sets the label texts, index-aligned to positions.
func WithLabels(labels ...string) Option {
	return func(b *Breadcrumbs) {
		b.labels = append([]string(nil), labels...)
	}
}

// New creates a view with steps positions and the default configuration.
func New(c Container, steps int, opts ...Option) *Breadcrumbs {
	cfg := DefaultConfig()
	cfg.Steps = steps
	return NewWithConfig(c, cfg, opts...)
}

// NewWithConfig creates a view from an explicit configuration. Layout is
// deferred until c first reports it is ready.
func NewWithConfig(c Container, cfg Config, opts ...Option) *Breadcrumbs {
	b := &Breadcrumbs{
		container: c,
		cfg:       cfg,
		log:       logger.Noop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.ctl = controller{
		visitedText: cfg.VisitedTextColor,
		nextText:    cfg.NextTextColor,
		log:         b.log,
	}

	var remove func()
	remove = c.OnReady(func() error {
		remove()
		return b.layout()
	})
	return b
}

func (b *Breadcrumbs) layout() error {
	current := b.ctl.current
	if limit := b.cfg.Steps - 1; limit >= 1 && (current < 0 || current > limit) {
		clamped := min(max(current, 0), limit)
		b.log.Warn("current step %d outside 0..%d, using %d", current, limit, clamped)
		current = clamped
	}

	steps, width, err := buildLayout(b.container, b.cfg, current, b.labels)
	if err != nil {
		b.log.Error("layout failed: steps=%d", b.cfg.Steps)
		return err
	}

	offset := 0
	if b.cfg.SeparatorOnStart {
		offset = 1
	}

	b.steps = steps
	b.stepWidth = width
	b.ctl.current = current
	b.ctl.bind(steps, offset, b.cfg.Steps)

	b.log.Debug("laid out %d records: container width %d, step width %d",
		len(steps), b.container.Width(), width)
	return nil
}

// CurrentStep returns the highest visited position, counting from 0.
func (b *Breadcrumbs) CurrentStep() int {
	return b.ctl.current
}

// SetCurrentStep sets the initial position without animation. It must be
// called before the container is ready; afterwards it fails with a STATE
// error. Out-of-range values are clamped when the layout runs.
func (b *Breadcrumbs) SetCurrentStep(step int) error {
	if b.LaidOut() {
		return errors.NewAlreadyLaidOut("current step")
	}
	b.ctl.current = step
	return nil
}

// SetLabels replaces the label texts. Like SetCurrentStep, only allowed
// before layout.
func (b *Breadcrumbs) SetLabels(labels []string) error {
	if b.LaidOut() {
		return errors.NewAlreadyLaidOut("labels")
	}
	b.labels = append([]string(nil), labels...)
	return nil
}

// NextStep moves one position forward. It is a no-op while a transition
// is running or at the last position, and reports whether it started one.
func (b *Breadcrumbs) NextStep() bool {
	return b.ctl.advance()
}

// PrevStep moves one position back. It is a no-op while a transition is
// running or at the first position, and reports whether it started one.
func (b *Breadcrumbs) PrevStep() bool {
	return b.ctl.retreat()
}

// Phase returns the controller state.
func (b *Breadcrumbs) Phase() Phase {
	return b.ctl.phase
}

// Animating reports whether a transition is in flight.
func (b *Breadcrumbs) Animating() bool {
	return b.ctl.phase != Idle
}

// LaidOut reports whether the step records exist.
func (b *Breadcrumbs) LaidOut() bool {
	return b.steps != nil
}

// Steps returns the step records in layout order, including the leading
// separator record if configured. Nil before layout.
func (b *Breadcrumbs) Steps() []Step {
	if b.steps == nil {
		return nil
	}
	return append([]Step(nil), b.steps...)
}

// StepWidth returns the separator width computed at layout, 0 before it.
func (b *Breadcrumbs) StepWidth() int {
	return b.stepWidth
}

// StepCount returns the number of logical positions.
func (b *Breadcrumbs) StepCount() int {
	return b.cfg.Steps
}

// Labels returns the label texts.
func (b *Breadcrumbs) Labels() []string {
	return append([]string(nil), b.labels...)
}
