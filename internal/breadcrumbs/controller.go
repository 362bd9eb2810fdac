package breadcrumbs

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/crumbs/internal/logger"
)

// Phase is the state of the step controller.
type Phase int

const (
	Idle Phase = iota
	AnimatingForward
	AnimatingBackward
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case AnimatingForward:
		return "animating-forward"
	case AnimatingBackward:
		return "animating-backward"
	default:
		return "idle"
	}
}

// controller owns the current position and sequences the two animations
// of every transition. It references the step records, it does not own them.
type controller struct {
	steps   []Step
	offset  int // records before position 0 (the leading separator)
	count   int
	current int
	phase   Phase

	visitedText lipgloss.Color
	nextText    lipgloss.Color
	log         logger.Logger
}

func (c *controller) bind(steps []Step, offset, count int) {
	c.steps = steps
	c.offset = offset
	c.count = count
}

func (c *controller) step(position int) Step {
	return c.steps[position+c.offset]
}

// advance starts the forward transition p -> p+1: separator after p,
// then dot p+1. It reports whether a transition was started.
func (c *controller) advance() bool {
	if c.steps == nil {
		c.log.Debug("next step ignored: not laid out yet")
		return false
	}
	if c.phase != Idle {
		c.log.Debug("next step dropped: %s", c.phase)
		return false
	}
	if c.current >= c.count-1 {
		return false
	}

	target := c.current + 1
	from, to := c.step(c.current), c.step(target)
	c.phase = AnimatingForward

	if to.Label != nil {
		to.Label.SetColor(c.visitedText)
	}

	from.Separator.AnimateToVisited(func() {
		to.Dot.AnimateToVisited(func() {
			c.current = target
			c.phase = Idle
		})
	})
	return true
}

// retreat starts the backward transition p -> p-1: dot p, then the
// separator before it. It reports whether a transition was started.
func (c *controller) retreat() bool {
	if c.steps == nil {
		c.log.Debug("previous step ignored: not laid out yet")
		return false
	}
	if c.phase != Idle {
		c.log.Debug("previous step dropped: %s", c.phase)
		return false
	}
	if c.current <= 0 {
		return false
	}

	target := c.current - 1
	from, to := c.step(c.current), c.step(target)
	c.phase = AnimatingBackward

	if from.Label != nil {
		from.Label.SetColor(c.nextText)
	}

	from.Dot.AnimateToNext(func() {
		to.Separator.AnimateToNext(func() {
			c.current = target
			c.phase = Idle
		})
	})
	return true
}
