package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/reelroll-cli/reelroll/internal/ui"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/navigator"
	"github.com/reelroll-cli/reelroll/store"
	"github.com/reelroll-cli/reelroll/style"
	"github.com/reelroll-cli/reelroll/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	resultsC list.Model
	helpC    help.Model

	ctx       context.Context
	store     *store.Store
	navigator *navigator.Navigator

	lastError        error
	dragStart        mo.Option[int]
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	width, height int
	cardWidth     int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering where to go back to. Loading is never returned to.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != loadingState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if previous, ok := b.statesHistory.Pop(); ok {
		b.setState(previous)
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.helpC.Width = b.width
	b.inputC.Width = b.width
	b.resultsC.SetSize(b.width, max(b.height-6, 3))
}

func newBubble(ctx context.Context, options *Options, st *store.Store, nav *navigator.Navigator) *statefulBubble {
	bubble := &statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(options.Catalog.Names()),
		ctx:           ctx,
		store:         st,
		navigator:     nav,
		notifier:      &ui.Model{},
		cardWidth:     max(viper.GetInt(key.TUICardWidth), 8),
		options:       options,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Search loaded titles"
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.resultsC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.resultsC.SetShowTitle(false)
	bubble.resultsC.SetShowHelp(false)
	bubble.resultsC.SetShowFilter(false)
	bubble.resultsC.SetFilteringEnabled(false)
	bubble.resultsC.SetShowStatusBar(false)
	bubble.resultsC.SetStatusBarItemName("movie", "movies")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}
