// Package ui hosts breadcrumbs views in the terminal.
//
// # Components Overview
//
//	Stage     - breadcrumbs.Container: creates elements, resolves their
//	            relative constraints to cells and paints them on a Canvas
//	Dot       - circle of 2*radius cells, optional border ring
//	Separator - bar between two dots
//	Label     - upper-cased caption centred under a dot
//	Animator  - harmonica spring driving visited/next sweeps frame by frame
//	Model     - Bubble Tea model with next/previous key bindings and help
//
// # Layout Timing
//
// A Stage is not ready until SetSize is called. Inside a Bubble Tea
// program that happens on the first tea.WindowSizeMsg, which is what
// lays the breadcrumbs out. Outside one (the render command) callers
// invoke SetSize themselves.
//
// # Animation
//
// Dots and separators sweep left to right when becoming visited and right
// to left when going back. The Animator is stepped by frame messages on
// the Update goroutine, so completion callbacks run there too and the
// breadcrumbs state machine needs no locking.
//
//	animator := ui.NewAnimator(ui.DefaultAnimationConfig())
//	stage := ui.NewStage(animator)
//	crumbs := breadcrumbs.New(stage, 4)
//	p := tea.NewProgram(ui.NewModel(crumbs, stage, animator, "Checkout"))
package ui
