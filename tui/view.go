package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/reelroll-cli/reelroll/color"
	"github.com/reelroll-cli/reelroll/constant"
	"github.com/reelroll-cli/reelroll/icon"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/store"
	"github.com/reelroll-cli/reelroll/style"
	"github.com/reelroll-cli/reelroll/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case browseState:
		return b.viewBrowse()
	case searchState:
		return b.viewSearch()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title(constant.Reelroll),
			"",
			b.spinnerC.View() + " " + icon.Get(icon.Film) + " Loading popular movies...",
		},
	)
}

func (b *statefulBubble) viewBrowse() string {
	window := b.store.Window()

	lines := []string{
		style.Title(constant.Reelroll) + " " + b.viewFilters(window),
		"",
	}

	current, ok := window.Current().Get()
	if !ok {
		lines = append(lines, style.Faint(fmt.Sprintf("No movies on %s yet", window.Filter)))
	} else {
		lines = append(lines, b.viewCards(window), "")
		lines = append(lines, b.viewDetails(current.Movie)...)
	}

	lines = append(lines, "", b.viewStatus(window))
	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewFilters(window store.Window) string {
	tags := []string{b.viewFilterTag("0 all", style.SecondaryColor, window.Filter.Empty())}
	for i, name := range b.store.Catalog().Names() {
		tags = append(tags, b.viewFilterTag(fmt.Sprintf("%d %s", i+1, name), color.Service(i), window.Filter.Has(name)))
	}
	return strings.TrimSpace(icon.Get(icon.Filter) + " " + strings.Join(tags, " "))
}

func (b *statefulBubble) viewFilterTag(label string, bg lipgloss.Color, active bool) string {
	if active {
		return style.Tag(style.Text, bg)(label)
	}
	return style.Faint(label)
}

// viewCards renders the window as a row, as many cards around the cursor as fit.
func (b *statefulBubble) viewCards(window store.Window) string {
	reach := max(0, (b.width/(b.cardWidth+2)-1)/2)

	cards := lo.FilterMap(window.Slots, func(slot store.Slot, _ int) (string, bool) {
		if util.Abs(slot.Offset) > reach {
			return "", false
		}
		return b.viewCard(slot), true
	})

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (b *statefulBubble) viewCard(slot store.Slot) string {
	movie := slot.Movie
	inner := b.cardWidth - 2

	availability := style.Faint("-")
	if n := len(movie.Providers); n > 0 {
		availability = icon.Get(icon.Stream) + " " + util.Quantify(n, "service", "services")
	}

	body := strings.Join([]string{
		truncate.StringWithTail(movie.Title, uint(inner), "…"),
		style.Faint(movie.Year()),
		fmt.Sprintf("%s %.1f", icon.Get(icon.Star), movie.Rating),
		truncate.StringWithTail(availability, uint(inner), "…"),
	}, "\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(inner)

	switch distance := util.Abs(slot.Offset); {
	case distance == 0:
		card = card.BorderForeground(style.ActiveBorderColor).Foreground(style.AccentColor).Bold(true)
	case distance == 1:
		card = card.BorderForeground(style.BorderColor)
	default:
		card = card.BorderForeground(style.BorderColor).Faint(true)
	}

	return card.Render(body)
}

func (b *statefulBubble) viewDetails(movie *source.Movie) []string {
	lines := []string{
		style.Bold(movie.Title) + " " + style.Faint(movie.Year()),
		fmt.Sprintf("%s %.1f/10", icon.Get(icon.Star), movie.Rating),
	}

	if viper.GetBool(key.TUIShowProviders) {
		if len(movie.Providers) == 0 {
			lines = append(lines, style.Faint("Not streaming on a subscription service in "+viper.GetString(key.TMDBRegion)))
		} else {
			tags := lo.Map(movie.Providers, func(p source.ProviderRef, _ int) string {
				return style.Tag(style.Base, style.Teal)(p.Name)
			})
			lines = append(lines, strings.Join(tags, " "))
		}
	}

	if viper.GetBool(key.TUIShowOverview) && movie.Overview != "" {
		lines = append(lines, "", wordwrap.String(movie.Overview, max(b.width, 20)))
	}

	if poster := movie.PosterURL(viper.GetString(key.TMDBImageURL)); poster != "" {
		lines = append(lines, "", style.Faint(poster))
	}

	return lines
}

func (b *statefulBubble) viewStatus(window store.Window) string {
	parts := []string{
		fmt.Sprintf("%d/%d", min(window.Cursor+1, window.Len), window.Len),
		util.Quantify(window.Total, "movie cached", "movies cached"),
	}

	switch {
	case b.navigator.Pending():
		parts = append(parts, b.spinnerC.View()+" loading more")
	case b.store.Exhausted():
		parts = append(parts, icon.Get(icon.End)+" end of catalog")
	}

	status := style.Faint(strings.Join(parts, " · "))
	if notification := b.notifier.View(); notification != "" {
		status += "  " + notification
	}

	return status
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title(strings.TrimSpace(icon.Get(icon.Search) + " Search")),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, style.Faint("tab: "+suggestion))
	} else {
		lines = append(lines, "")
	}

	lines = append(lines, "", b.resultsC.View())
	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), max(b.width, 20))

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Could not load movies:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)

	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
