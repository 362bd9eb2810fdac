package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// AnimationConfig tunes the spring that drives element transitions.
type AnimationConfig struct {
	FPS       int     // frames per second
	Frequency float64 // angular frequency; higher settles faster
	Damping   float64 // damping ratio; 1 is critically damped
}

// DefaultAnimationConfig returns a critically damped spring settling in
// roughly half a second.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		FPS:       60,
		Frequency: 18.0,
		Damping:   1.0,
	}
}

// settleThreshold is how close to the target a spring must be, in both
// position and velocity, to count as finished.
const settleThreshold = 0.005

// maxTransitionSeconds bounds a single transition. A spring that has not
// settled by then snaps to its target.
const maxTransitionSeconds = 3

// animation is a single 0 -> 1 progress curve.
type animation struct {
	pos, vel float64
	frames   int
	frame    func(progress float64)
	done     func()
}

// Animator advances element transitions one frame at a time. It is not
// safe for concurrent use; the bubbletea Update loop owns it.
type Animator struct {
	cfg    AnimationConfig
	spring harmonica.Spring
	active []*animation
}

// NewAnimator creates an animator with the given spring settings.
func NewAnimator(cfg AnimationConfig) *Animator {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultAnimationConfig().FPS
	}
	return &Animator{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
	}
}

// Start registers a transition. frame receives the progress after every
// step, done runs once after the final frame.
func (a *Animator) Start(frame func(progress float64), done func()) {
	a.active = append(a.active, &animation{frame: frame, done: done})
	frame(0)
}

// Step advances every running transition by one frame. Completion
// callbacks run after all frames are applied and may start new
// transitions, which first move on the next Step.
func (a *Animator) Step() {
	running := a.active
	a.active = nil

	var finished []*animation
	for _, an := range running {
		an.pos, an.vel = a.spring.Update(an.pos, an.vel, 1.0)
		an.frames++
		if a.settled(an) {
			an.frame(1)
			finished = append(finished, an)
			continue
		}
		an.frame(clampUnit(an.pos))
		a.active = append(a.active, an)
	}

	for _, an := range finished {
		an.done()
	}
}

func (a *Animator) settled(an *animation) bool {
	if an.frames >= a.MaxFrames() {
		return true
	}
	return math.Abs(1-an.pos) < settleThreshold && math.Abs(an.vel) < settleThreshold
}

// MaxFrames is the most frames a single transition can take.
func (a *Animator) MaxFrames() int {
	return a.cfg.FPS * maxTransitionSeconds
}

// Settle steps until nothing is running or maxFrames is reached, and
// returns the number of frames stepped.
func (a *Animator) Settle(maxFrames int) int {
	frames := 0
	for a.Active() && frames < maxFrames {
		a.Step()
		frames++
	}
	return frames
}

// Active reports whether any transition is running.
func (a *Animator) Active() bool {
	return len(a.active) > 0
}

// Interval is the time between frames.
func (a *Animator) Interval() time.Duration {
	return time.Second / time.Duration(a.cfg.FPS)
}

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
