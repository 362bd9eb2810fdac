package ui

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStage(t *testing.T, cfg breadcrumbs.Config, labels ...string) (*Stage, *Animator, *breadcrumbs.Breadcrumbs) {
	t.Helper()
	animator := NewAnimator(DefaultAnimationConfig())
	stage := NewStage(animator)
	crumbs := breadcrumbs.NewWithConfig(stage, cfg, breadcrumbs.WithLabels(labels...))
	return stage, animator, crumbs
}

func stageConfig(steps int) breadcrumbs.Config {
	cfg := breadcrumbs.DefaultConfig()
	cfg.Steps = steps
	return cfg
}

func TestStage_LayoutOnFirstSize(t *testing.T) {
	stage, _, crumbs := newTestStage(t, stageConfig(4), "cart", "ship", "pay", "done")

	assert.Empty(t, stage.Children())

	require.NoError(t, stage.SetSize(80, 10))
	assert.True(t, crumbs.LaidOut())
	assert.Len(t, stage.Children(), 4+4+3)

	require.NoError(t, stage.SetSize(120, 10))
	assert.Len(t, stage.Children(), 11, "resizing must not lay out again")
	assert.Equal(t, 24, crumbs.StepWidth(), "step width is fixed at the first layout")
}

func TestStage_SetSizeReturnsLayoutError(t *testing.T) {
	stage, _, crumbs := newTestStage(t, stageConfig(1))

	err := stage.SetSize(80, 10)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.False(t, crumbs.LaidOut())
	assert.Empty(t, stage.Children())
}

func TestStage_Positions(t *testing.T) {
	cfg := stageConfig(3)
	cfg.Radius = 2
	cfg.TextTopMargin = 1
	stage, _, crumbs := newTestStage(t, cfg, "abcdefgh")
	require.NoError(t, stage.SetSize(64, 10))

	// (64-4)/2 - 4 = 26
	require.Equal(t, 26, crumbs.StepWidth())
	steps := crumbs.Steps()

	pos := func(el breadcrumbs.Element) [2]int {
		x, y := stage.Position(el)
		return [2]int{x, y}
	}

	assert.Equal(t, [2]int{0, 0}, pos(steps[0].Dot))
	assert.Equal(t, [2]int{4, 2}, pos(steps[0].Separator))
	assert.Equal(t, [2]int{30, 0}, pos(steps[1].Dot))
	assert.Equal(t, [2]int{34, 2}, pos(steps[1].Separator))
	assert.Equal(t, [2]int{60, 0}, pos(steps[2].Dot))
	assert.Equal(t, 64, 60+steps[2].Dot.Width(), "last dot ends on the right edge")

	// label: below the dot plus top margin, centred: -(8-4)/2
	assert.Equal(t, [2]int{-2, 5}, pos(steps[0].Label))
}

func TestStage_LeadingSeparatorPositions(t *testing.T) {
	cfg := stageConfig(2)
	cfg.SeparatorOnStart = true
	stage, _, crumbs := newTestStage(t, cfg)
	require.NoError(t, stage.SetSize(40, 5))

	// (40-2)/2 - 2 = 17
	require.Equal(t, 17, crumbs.StepWidth())
	steps := crumbs.Steps()

	x, y := stage.Position(steps[0].Separator)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)

	x, _ = stage.Position(steps[1].Dot)
	assert.Equal(t, 17, x)
}

func TestStage_ViewDrawsElements(t *testing.T) {
	stage, _, _ := newTestStage(t, stageConfig(3), "one", "two", "ok")
	require.NoError(t, stage.SetSize(30, 5))

	plain := stage.Canvas().Plain()
	lines := strings.Split(plain, "\n")

	require.Len(t, lines, 3, "two dot rows plus the label row")
	assert.True(t, strings.HasPrefix(lines[0], "██"))
	assert.Contains(t, lines[1], "━")
	assert.Contains(t, lines[2], "ONE")
	assert.Contains(t, lines[2], "TWO")
	assert.True(t, strings.HasSuffix(lines[2], "OK"), "a label as wide as its dot stays inside the stage")
	assert.NotEmpty(t, stage.View())
}

func TestStage_TransitionUpdatesColors(t *testing.T) {
	cfg := stageConfig(3)
	stage, animator, crumbs := newTestStage(t, cfg, "a", "b", "c")
	require.NoError(t, stage.SetSize(30, 5))
	steps := crumbs.Steps()

	sepX, sepY := stage.Position(steps[0].Separator)
	dotX, dotY := stage.Position(steps[1].Dot)
	assert.Equal(t, cfg.NextSeparatorColor, stage.Canvas().Color(sepX, sepY))
	assert.Equal(t, cfg.NextDotFillColor, stage.Canvas().Color(dotX, dotY))

	require.True(t, crumbs.NextStep())
	assert.Equal(t, cfg.VisitedTextColor, steps[1].Label.Color())

	// Run the separator phase only.
	for animator.Active() && !steps[1].Dot.(*Dot).Animating() {
		animator.Step()
	}
	assert.True(t, steps[0].Separator.Visited())
	assert.Equal(t, cfg.VisitedSeparatorColor, stage.Canvas().Color(sepX, sepY))
	assert.Equal(t, 0, crumbs.CurrentStep())

	animator.Settle(1000)
	assert.Equal(t, 1, crumbs.CurrentStep())
	assert.False(t, crumbs.Animating())
	assert.Equal(t, cfg.VisitedDotFillColor, stage.Canvas().Color(dotX, dotY))

	require.True(t, crumbs.PrevStep())
	animator.Settle(1000)
	assert.Equal(t, 0, crumbs.CurrentStep())
	assert.Equal(t, cfg.NextDotFillColor, stage.Canvas().Color(dotX, dotY))
	assert.Equal(t, cfg.NextSeparatorColor, stage.Canvas().Color(sepX, sepY))
	assert.Equal(t, cfg.NextTextColor, steps[1].Label.Color())
}

func TestStage_NarrowContainer(t *testing.T) {
	stage, _, crumbs := newTestStage(t, stageConfig(4))
	require.NoError(t, stage.SetSize(6, 5))

	assert.Negative(t, crumbs.StepWidth())
	assert.NotPanics(t, func() { _ = stage.View() })
}

func TestStage_EdgeLabelsAreNotClipped(t *testing.T) {
	stage, _, crumbs := newTestStage(t, stageConfig(3), "cart", "ship", "done")
	require.NoError(t, stage.SetSize(40, 10))

	canvas := stage.Canvas()
	lines := strings.Split(canvas.Plain(), "\n")
	require.Len(t, lines, 3)

	labelRow := lines[2]
	for _, text := range []string{"CART", "SHIP", "DONE"} {
		assert.Contains(t, labelRow, text)
	}

	// CART overhangs its dot by one column on the left, DONE by one on the right.
	assert.Equal(t, 1, stage.Gutter())
	assert.True(t, strings.HasPrefix(labelRow, "CART"))
	assert.True(t, strings.HasPrefix(lines[0], " ██"), "dots shift right by the gutter")
	width, _ := canvas.Size()
	assert.Equal(t, 40+2, width)

	first, _ := stage.Position(crumbs.Steps()[0].Label)
	assert.Equal(t, -1, first)
}

func TestStage_NoGutterWhenLabelsFit(t *testing.T) {
	stage, _, _ := newTestStage(t, stageConfig(3), "ab", "cd", "ef")
	require.NoError(t, stage.SetSize(40, 10))

	assert.Equal(t, 0, stage.Gutter())
	width, _ := stage.Canvas().Size()
	assert.Equal(t, 40, width)
}
