package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAnimationConfig(t *testing.T) {
	cfg := DefaultAnimationConfig()

	assert.Equal(t, 60, cfg.FPS)
	assert.Greater(t, cfg.Frequency, 0.0)
	assert.Equal(t, 1.0, cfg.Damping)
}

func TestAnimator_ProgressesToCompletion(t *testing.T) {
	a := NewAnimator(DefaultAnimationConfig())
	var progress []float64
	done := 0

	a.Start(func(p float64) { progress = append(progress, p) }, func() { done++ })
	require.True(t, a.Active())
	assert.Equal(t, 0.0, progress[0])

	frames := a.Settle(1000)

	assert.Less(t, frames, 1000)
	assert.False(t, a.Active())
	assert.Equal(t, 1, done)
	assert.Equal(t, 1.0, progress[len(progress)-1])
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], 0.0)
		assert.LessOrEqual(t, progress[i], 1.0)
	}
}

func TestAnimator_DoneRunsAfterFinalFrame(t *testing.T) {
	a := NewAnimator(DefaultAnimationConfig())
	var last float64

	a.Start(func(p float64) { last = p }, func() {
		assert.Equal(t, 1.0, last)
	})
	a.Settle(1000)
}

func TestAnimator_ChainedStartWaitsForNextStep(t *testing.T) {
	a := NewAnimator(DefaultAnimationConfig())
	var order []string
	secondFrames := 0

	a.Start(func(float64) {}, func() {
		order = append(order, "first")
		a.Start(func(float64) { secondFrames++ }, func() {
			order = append(order, "second")
		})
	})

	for a.Active() && len(order) == 0 {
		a.Step()
	}
	require.Equal(t, []string{"first"}, order)
	assert.Equal(t, 1, secondFrames, "only the initial frame of the chained transition has run")
	assert.True(t, a.Active())

	a.Settle(1000)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAnimator_Interval(t *testing.T) {
	a := NewAnimator(AnimationConfig{FPS: 50, Frequency: 10, Damping: 1})
	assert.Equal(t, 20*time.Millisecond, a.Interval())

	fallback := NewAnimator(AnimationConfig{Frequency: 10, Damping: 1})
	assert.Equal(t, time.Second/60, fallback.Interval())
}

func TestAnimator_SettleWhenIdle(t *testing.T) {
	a := NewAnimator(DefaultAnimationConfig())
	assert.Equal(t, 0, a.Settle(10))
}

func TestAnimator_UndampedSpringSnapsToTarget(t *testing.T) {
	a := NewAnimator(AnimationConfig{FPS: 60, Frequency: 18, Damping: 0})
	var last float64
	done := false

	a.Start(func(p float64) { last = p }, func() { done = true })
	frames := a.Settle(100000)

	require.True(t, done)
	assert.Equal(t, a.MaxFrames(), frames)
	assert.Equal(t, 1.0, last)
	assert.False(t, a.Active())
}

func TestAnimator_MaxFrames(t *testing.T) {
	assert.Equal(t, 180, NewAnimator(DefaultAnimationConfig()).MaxFrames())
	assert.Equal(t, 90, NewAnimator(AnimationConfig{FPS: 30, Frequency: 18, Damping: 1}).MaxFrames())
}
