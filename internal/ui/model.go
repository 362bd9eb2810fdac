package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/crumbs/internal/breadcrumbs"
)

// horizontalPadding is the number of columns kept free on each side of the stage.
const horizontalPadding = 2

// frameMsg advances running transitions by one frame.
type frameMsg time.Time

// Model is the Bubble Tea model hosting a Breadcrumbs view on a Stage.
// The first window size message makes the stage ready, which lays the
// view out; later ones only change the rendering width.
type Model struct {
	crumbs   *breadcrumbs.Breadcrumbs
	stage    *Stage
	animator *Animator
	title    string
	help     help.Model
	ticking  bool
	quitting bool
	err      error
}

// NewModel creates a model for crumbs, which must have been created on stage.
func NewModel(crumbs *breadcrumbs.Breadcrumbs, stage *Stage, animator *Animator, title string) Model {
	h := help.New()
	h.Styles.ShortKey = mutedStyle
	h.Styles.ShortDesc = mutedStyle
	return Model{
		crumbs:   crumbs,
		stage:    stage,
		animator: animator,
		title:    title,
		help:     h,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if err := m.stage.SetSize(msg.Width-2*horizontalPadding, msg.Height); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.animator.Step()
		if m.animator.Active() {
			return m, m.frameCmd()
		}
		m.ticking = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, breadcrumbsKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, breadcrumbsKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, breadcrumbsKeys.Next):
		if m.crumbs.NextStep() {
			return m.startFrames()
		}
		return m, nil

	case key.Matches(msg, breadcrumbsKeys.Prev):
		if m.crumbs.PrevStep() {
			return m.startFrames()
		}
		return m, nil
	}

	return m, nil
}

// startFrames schedules the frame loop unless it is already running.
func (m Model) startFrames() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.animator.Interval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderHeader(HeaderInfo{Title: m.title, Width: max(m.stage.Width(), 0)}))
	sb.WriteString("\n")

	if !m.crumbs.LaidOut() {
		sb.WriteString(mutedStyle.Render("Measuring..."))
		sb.WriteString("\n")
		return sb.String()
	}

	// Overhanging labels use the padding, so dots stay in place.
	pad := strings.Repeat(" ", max(horizontalPadding-m.stage.Gutter(), 0))
	for _, line := range strings.Split(m.stage.View(), "\n") {
		sb.WriteString(pad + line + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(StatusLine(m.crumbs))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(breadcrumbsKeys))
	return sb.String()
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Crumbs returns the hosted view.
func (m Model) Crumbs() *breadcrumbs.Breadcrumbs {
	return m.crumbs
}

// StatusLine summarises the position of crumbs, e.g. "● Step 2 of 4".
func StatusLine(crumbs *breadcrumbs.Breadcrumbs) string {
	symbol := SymbolComplete
	if crumbs.Animating() {
		symbol = SymbolProgress
	} else if crumbs.CurrentStep() == 0 {
		symbol = SymbolPending
	}

	text := fmt.Sprintf("Step %d of %d", crumbs.CurrentStep()+1, crumbs.StepCount())
	if labels := crumbs.Labels(); crumbs.CurrentStep() < len(labels) {
		text += " " + mutedStyle.Render(strings.ToUpper(labels[crumbs.CurrentStep()]))
	}
	return statusStyle.Render(symbol) + " " + text
}
