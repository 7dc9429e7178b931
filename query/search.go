package query

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Titles ranks movies whose title fuzzily contains q and returns their
// indices, closest match first. Ties keep list order.
func Titles(q string, movies []*source.Movie) []int {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	titles := lo.Map(movies, func(m *source.Movie, _ int) string {
		return m.Title
	})

	ranks := fuzzy.RankFindNormalizedFold(q, titles)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) int {
		return r.OriginalIndex
	})
}

// First returns the index of the best match.
func First(q string, movies []*source.Movie) mo.Option[int] {
	if found := Titles(q, movies); len(found) > 0 {
		return mo.Some(found[0])
	}
	return mo.None[int]()
}
