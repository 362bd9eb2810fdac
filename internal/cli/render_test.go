package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeSteps = `
steps: 3
labels: [cart, address, payment]
`

func TestRender(t *testing.T) {
	path := writeConfig(t, threeSteps)

	var out bytes.Buffer
	err := Render(&out, RenderOptions{Config: path, Step: -1, Width: 40, Plain: true})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "█")
	assert.Contains(t, text, "━")
	assert.Contains(t, text, "Step 1 of 3")
	assert.Contains(t, text, "CART")
}

func TestRenderStartingStep(t *testing.T) {
	path := writeConfig(t, threeSteps)

	var out bytes.Buffer
	require.NoError(t, Render(&out, RenderOptions{Config: path, Step: 2, Width: 40, Plain: true}))

	assert.Contains(t, out.String(), "Step 3 of 3")
	assert.Contains(t, out.String(), "PAYMENT")
}

func TestRenderClampsStartingStep(t *testing.T) {
	path := writeConfig(t, threeSteps)

	var out bytes.Buffer
	require.NoError(t, Render(&out, RenderOptions{Config: path, Step: 10, Width: 40, Plain: true}))

	assert.Contains(t, out.String(), "Step 3 of 3")
}

func TestRenderAdvance(t *testing.T) {
	tests := []struct {
		name    string
		step    int
		advance int
		want    string
	}{
		{name: "one forward", step: -1, advance: 1, want: "Step 2 of 3"},
		{name: "past the end stops at last", step: -1, advance: 5, want: "Step 3 of 3"},
		{name: "one back", step: 2, advance: -1, want: "Step 2 of 3"},
		{name: "back from first is a no-op", step: 0, advance: -1, want: "Step 1 of 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, threeSteps)

			var out bytes.Buffer
			err := Render(&out, RenderOptions{Config: path, Step: tt.step, Width: 40, Advance: tt.advance, Plain: true})
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRenderWidthMustBePositive(t *testing.T) {
	path := writeConfig(t, threeSteps)

	err := Render(&bytes.Buffer{}, RenderOptions{Config: path, Step: -1, Width: 0})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRenderRejectsSingleStep(t *testing.T) {
	path := writeConfig(t, "steps: 1\n")

	err := Render(&bytes.Buffer{}, RenderOptions{Config: path, Step: -1, Width: 40})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "greater than 1")
}

func TestRenderMissingConfig(t *testing.T) {
	err := Render(&bytes.Buffer{}, RenderOptions{Config: "/nonexistent/.crumbs.yaml", Step: -1, Width: 40})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRenderCommand(t *testing.T) {
	path := writeConfig(t, threeSteps)
	t.Cleanup(func() { renderOpts = RenderOptions{Step: -1} })

	out, err := execute(t, "render", "--config", path, "--width", "30", "--plain", "--advance", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Step 2 of 3")
	assert.Contains(t, out, "ADDRESS")

	// Edge labels overhang the 30 columns instead of being cut.
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[2], "CART")
	assert.Contains(t, lines[2], "PAYMENT")
}

func TestSessionAdvanceReportsUnfinishedTransition(t *testing.T) {
	path := writeConfig(t, threeSteps)
	s, err := newSession(path)
	require.NoError(t, err)
	require.NoError(t, s.stage.SetSize(40, 0))

	err = s.advance(1, 1)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUI))
	assert.Contains(t, err.Error(), "within 1 frames")
}

func TestSessionAdvanceWithinBudget(t *testing.T) {
	path := writeConfig(t, threeSteps)
	s, err := newSession(path)
	require.NoError(t, err)
	require.NoError(t, s.stage.SetSize(40, 0))

	require.NoError(t, s.advance(2, 2*s.animator.MaxFrames()+1))
	assert.Equal(t, 2, s.crumbs.CurrentStep())
	assert.False(t, s.crumbs.Animating())

	require.NoError(t, s.advance(-5, 2*s.animator.MaxFrames()+1))
	assert.Equal(t, 0, s.crumbs.CurrentStep())
}
