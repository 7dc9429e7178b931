package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init requests the first page and starts listening for fetch outcomes.
func (b *statefulBubble) Init() tea.Cmd {
	b.navigator.Fetch(b.ctx)
	return tea.Batch(b.spinnerC.Tick, b.waitForOutcome())
}
