package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/query"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		return b, uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case spinner.TickMsg:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case outcomeMsg:
		return b, b.onOutcome(msg)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b, nil
	case browseState:
		return b.updateBrowse(msg)
	case searchState:
		return b.updateSearch(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if index, ok := b.keymap.service(msg); ok {
			return b, b.toggleService(index)
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.next):
			b.navigator.Advance(b.ctx)
		case bubblesKey.Matches(msg, b.keymap.prev):
			b.navigator.Retreat(b.ctx)
		case bubblesKey.Matches(msg, b.keymap.clearFilter):
			b.navigator.JumpToFilter(b.ctx, filter.Set{})
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openCurrent()
		case bubblesKey.Matches(msg, b.keymap.retry):
			return b, b.retry()
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
		case bubblesKey.Matches(msg, b.keymap.search):
			b.inputC.SetValue("")
			b.searchSuggestion = mo.None[string]()
			b.newState(searchState)
			return b, tea.Batch(b.inputC.Focus(), b.refreshResults())
		}
	case tea.MouseMsg:
		b.updateMouse(msg)
	}

	return b, nil
}

// updateMouse maps wheel steps and horizontal drags to single moves.
func (b *statefulBubble) updateMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		b.navigator.Advance(b.ctx)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		b.navigator.Retreat(b.ctx)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		b.dragStart = mo.Some(msg.X)
	case msg.Action == tea.MouseActionRelease:
		if start, ok := b.dragStart.Get(); ok {
			b.navigator.Drag(b.ctx, msg.X-start)
		}
		b.dragStart = mo.None[int]()
	}
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.resultsC.SelectedItem().(*listItem); ok {
				_ = query.Remember(b.inputC.Value(), 1)
				b.navigator.Seek(b.ctx, item.position)
				b.inputC.Blur()
				b.previousState()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.up):
			b.resultsC.CursorUp()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.down):
			b.resultsC.CursorDown()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.CursorEnd()
			return b, b.refreshResults()
		}
	}

	before := b.inputC.Value()
	b.inputC, cmd = b.inputC.Update(msg)
	if b.inputC.Value() == before {
		return b, cmd
	}

	if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() && b.inputC.Value() != "" {
		b.searchSuggestion = mo.Some(suggestion)
	} else {
		b.searchSuggestion = mo.None[string]()
	}

	return b, tea.Batch(cmd, b.refreshResults())
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.retry):
			b.previousState()
			return b, b.retry()
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() == 0 {
				return b, tea.Quit
			}
			b.previousState()
		}
	}

	return b, nil
}
