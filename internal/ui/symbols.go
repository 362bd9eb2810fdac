package ui

// Unicode symbols for status indicators.
const (
	SymbolFail     = "✗" // Something failed
	SymbolPending  = "○" // Step not reached yet
	SymbolProgress = "◐" // Transition in flight
	SymbolComplete = "●" // Step reached
)

// Glyphs used when drawing on the canvas.
const (
	glyphBlock     = '█'
	glyphSeparator = '━'
)
