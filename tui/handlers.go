package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelroll-cli/reelroll/internal/ui"
	"github.com/reelroll-cli/reelroll/log"
	"github.com/reelroll-cli/reelroll/navigator"
	"github.com/reelroll-cli/reelroll/open"
	"github.com/reelroll-cli/reelroll/query"
	"github.com/reelroll-cli/reelroll/util"
	"github.com/samber/lo"
)

const maxSearchResults = 50

type outcomeMsg navigator.Outcome

// waitForOutcome delivers the next fetch outcome. It is re-issued after every outcome.
func (b *statefulBubble) waitForOutcome() tea.Cmd {
	return func() tea.Msg {
		select {
		case outcome := <-b.navigator.Outcomes():
			return outcomeMsg(outcome)
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *statefulBubble) onOutcome(msg outcomeMsg) tea.Cmd {
	listen := b.waitForOutcome()

	if msg.Err != nil {
		log.Error(msg.Err)
		if b.state == loadingState {
			b.raiseError(msg.Err)
			return listen
		}
		return tea.Batch(listen, ui.NotifyError(msg.Err))
	}

	if b.state == loadingState {
		b.newState(browseState)
	}

	log.Infof("page %d: %d new movies", msg.Result.Page, msg.Result.Added)

	// a sparse filter may still sit within the threshold after a page lands
	if b.store.ShouldFetchMore() {
		b.navigator.Fetch(b.ctx)
	}

	if msg.Result.Exhausted {
		return tea.Batch(listen, ui.Notify("reached the end of the catalog"))
	}

	return listen
}

// retry requests the page that failed last.
func (b *statefulBubble) retry() tea.Cmd {
	if !b.navigator.Fetch(b.ctx) {
		return ui.Notify("already loading")
	}

	if b.store.Total() == 0 {
		b.setState(loadingState)
	}

	return ui.Notify("loading more movies")
}

func (b *statefulBubble) openCurrent() tea.Cmd {
	movie, ok := b.store.Current().Get()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		if err := open.Start(movie.URL()); err != nil {
			log.Error(err)
			return ui.NotificationMsg{Text: err.Error(), Error: true}
		}
		return ui.NotificationMsg{Text: "opened " + movie.Title}
	}
}

func (b *statefulBubble) toggleService(index int) tea.Cmd {
	names := b.store.Catalog().Names()
	if index >= len(names) {
		return nil
	}

	set := b.navigator.ToggleService(b.ctx, names[index])
	return ui.Notify(fmt.Sprintf("showing %s, %s", set, util.Quantify(b.store.Len(), "movie", "movies")))
}

// refreshResults ranks the active sequence against the search input.
func (b *statefulBubble) refreshResults() tea.Cmd {
	active := b.store.Active()
	found := query.Titles(b.inputC.Value(), active)
	found = found[:min(len(found), maxSearchResults)]

	items := lo.Map(found, func(position int, _ int) list.Item {
		return &listItem{movie: active[position], position: position}
	})

	return b.resultsC.SetItems(items)
}
