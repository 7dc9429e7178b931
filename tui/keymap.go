package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelroll-cli/reelroll/color"
	"github.com/reelroll-cli/reelroll/style"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	next, prev,
	clearFilter,
	search,
	acceptSearchSuggestion,
	confirm,
	openURL,
	retry,
	back,
	up, down,
	showHelp key.Binding

	// services holds one toggle per catalog entry, bound to 1..n
	services []key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap(services []string) *statefulKeymap {
	k := &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next"),
		),
		prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous"),
		),
		clearFilter: key.NewBinding(
			key.WithKeys("0", "backspace"),
			key.WithHelp("0", "all services"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open on tmdb"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp(style.Fg(color.Orange)("r"), style.Fg(color.Orange)("retry")),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}

	for i, name := range services {
		n := strconv.Itoa(i + 1)
		k.services = append(k.services, key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, name),
		))
	}

	return k
}

// service returns the catalog index toggled by msg.
func (k *statefulKeymap) service(msg tea.KeyMsg) (int, bool) {
	for i, binding := range k.services {
		if key.Matches(msg, binding) {
			return i, true
		}
	}
	return 0, false
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case browseState:
		full := append(h(k.prev, k.next), k.services...)
		full = append(full, k.clearFilter, k.search, k.openURL, k.retry, k.quit)
		return h(k.prev, k.next, k.search, k.showHelp, k.quit), full
	case searchState:
		return to2(h(k.confirm, k.up, k.down, k.acceptSearchSuggestion, k.back))
	case errorState:
		return to2(h(k.retry, k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
