// Package inline implements the non-interactive mode: load movies until enough match, then print them.
package inline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reelroll-cli/reelroll/fetch"
	"github.com/reelroll-cli/reelroll/log"
	"github.com/reelroll-cli/reelroll/query"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/store"
	"github.com/samber/lo"
)

const DefaultLimit = 20

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Limit <= 0 {
		options.Limit = DefaultLimit
	}

	st := store.New(options.Catalog, store.Options{})
	st.ActivateFilter(options.Filter)
	coordinator := fetch.New(options.Source, st, options.Fetch)

	pages := 0
	for st.Len() < options.Limit && !coordinator.Exhausted() && (options.Pages <= 0 || pages < options.Pages) {
		if _, err := coordinator.LoadNextPage(ctx); err != nil {
			return err
		}
		pages++
	}

	movies := st.Active()
	if options.Query != "" {
		_ = query.Remember(options.Query, 1)
		movies = lo.Map(query.Titles(options.Query, movies), func(i int, _ int) *source.Movie {
			return movies[i]
		})
	}

	if len(movies) > options.Limit {
		movies = movies[:options.Limit]
	}

	if picker, ok := options.Picker.Get(); ok {
		picked, found := picker(movies).Get()
		movies = nil
		if found {
			movies = []*source.Movie{picked}
		}
	}

	log.Infof("inline: %d movies after %d pages", len(movies), pages)

	if options.Json {
		return writeJson(options.Out, &Output{
			Filter: options.Filter.Names(),
			Query:  options.Query,
			Pages:  pages,
			Result: movies,
		})
	}

	for _, m := range movies {
		if _, err := fmt.Fprintln(options.Out, line(m)); err != nil {
			return err
		}
	}

	return nil
}

func line(m *source.Movie) string {
	var b strings.Builder
	b.WriteString(m.String())
	_, _ = fmt.Fprintf(&b, "\t%.1f", m.Rating)

	if names := m.ProviderNames(); len(names) > 0 {
		b.WriteString("\t")
		b.WriteString(strings.Join(names, ", "))
	}

	return b.String()
}
