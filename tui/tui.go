// Package tui implements the interactive movie browser.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelroll-cli/reelroll/fetch"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/navigator"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/store"
	"github.com/reelroll-cli/reelroll/streaming"
)

type Options struct {
	Source  source.Source
	Catalog *streaming.Catalog

	// Filter is active when the browser opens.
	Filter filter.Set
}

// Run opens a browsing session and blocks until the user quits.
func Run(options *Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := store.New(options.Catalog, store.OptionsFromConfig())
	st.ActivateFilter(options.Filter)

	coordinator := fetch.New(options.Source, st, fetch.OptionsFromConfig())
	nav := navigator.New(st, coordinator, navigator.OptionsFromConfig())

	bubble := newBubble(ctx, options, st, nav)
	bubble.setState(loadingState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
