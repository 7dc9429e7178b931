package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reelroll-cli/reelroll/fetch"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/streaming"
	"github.com/samber/mo"
)

// Picker selects one movie out of the matches.
type Picker func([]*source.Movie) mo.Option[*source.Movie]

type Options struct {
	Out     io.Writer
	Source  source.Source
	Catalog *streaming.Catalog
	Fetch   fetch.Options

	// Filter restricts the output to movies on any of its services.
	Filter filter.Set

	// Query ranks the matches by title.
	Query string

	// Limit is the number of movies to collect. Loading stops earlier
	// after Pages pages or when the catalog is exhausted.
	Limit int
	Pages int

	Json   bool
	Picker mo.Option[Picker]
}

// ParsePicker builds a picker from its flag form: first, last, exact:<title> or a zero-based index.
func ParsePicker(description string) (Picker, error) {
	kind, value, _ := strings.Cut(description, ":")

	switch kind {
	case "first":
		return func(movies []*source.Movie) mo.Option[*source.Movie] {
			if len(movies) == 0 {
				return mo.None[*source.Movie]()
			}
			return mo.Some(movies[0])
		}, nil
	case "last":
		return func(movies []*source.Movie) mo.Option[*source.Movie] {
			if len(movies) == 0 {
				return mo.None[*source.Movie]()
			}
			return mo.Some(movies[len(movies)-1])
		}, nil
	case "exact":
		return func(movies []*source.Movie) mo.Option[*source.Movie] {
			for _, m := range movies {
				if strings.EqualFold(m.Title, value) {
					return mo.Some(m)
				}
			}
			return mo.None[*source.Movie]()
		}, nil
	}

	index, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid picker %q", description)
	}

	return func(movies []*source.Movie) mo.Option[*source.Movie] {
		if len(movies) == 0 {
			return mo.None[*source.Movie]()
		}
		return mo.Some(movies[min(int(index), len(movies)-1)])
	}, nil
}
