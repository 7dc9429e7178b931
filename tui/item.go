package tui

import (
	"fmt"
	"strings"

	"github.com/reelroll-cli/reelroll/icon"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/style"
)

// listItem is a search result: a movie and its position in the active sequence.
type listItem struct {
	movie    *source.Movie
	position int
}

func (t *listItem) Title() string {
	return t.movie.String()
}

func (t *listItem) Description() string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "#%d  %s %.1f", t.position+1, icon.Get(icon.Star), t.movie.Rating)
	if names := t.movie.ProviderNames(); len(names) > 0 {
		sb.WriteString("  ")
		sb.WriteString(style.Faint(strings.Join(names, ", ")))
	}

	return sb.String()
}

func (t *listItem) FilterValue() string {
	return t.movie.Title
}
