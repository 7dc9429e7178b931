package filter

import (
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/streaming"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type entry struct {
	ordinal int
	movie   *source.Movie
}

// Index holds, for every non-empty subset of the catalog, the ordered sublist of
// the master list whose providers satisfy that subset.
type Index struct {
	catalog *streaming.Catalog
	subsets []Set
	entries map[string][]entry
	covered int
}

// NewIndex creates an empty entry for every non-empty subset of the catalog.
func NewIndex(catalog *streaming.Catalog) *Index {
	idx := &Index{
		catalog: catalog,
		subsets: Subsets(catalog.Names()),
		entries: make(map[string][]entry),
	}

	for _, s := range idx.subsets {
		idx.entries[s.Key()] = nil
	}

	return idx
}

// Build indexes the whole master list from scratch.
func Build(catalog *streaming.Catalog, movies []*source.Movie) *Index {
	idx := NewIndex(catalog)
	idx.Extend(movies)
	return idx
}

// Extend indexes movies appended to the master list. Only the new movies are tested.
func (idx *Index) Extend(movies []*source.Movie) {
	for _, movie := range movies {
		ordinal := idx.covered
		idx.covered++

		for _, s := range idx.subsets {
			if MatchesSet(idx.catalog, movie, s) {
				k := s.Key()
				idx.entries[k] = append(idx.entries[k], entry{ordinal: ordinal, movie: movie})
			}
		}
	}
}

// Refresh re-evaluates one movie, already indexed at ordinal, after its providers changed.
func (idx *Index) Refresh(movie *source.Movie, ordinal int) {
	if ordinal < 0 || ordinal >= idx.covered {
		return
	}

	for _, s := range idx.subsets {
		k := s.Key()
		list := idx.entries[k]
		at, present := slices.BinarySearchFunc(list, ordinal, func(e entry, target int) int {
			return e.ordinal - target
		})

		switch matches := MatchesSet(idx.catalog, movie, s); {
		case matches && present:
			list[at].movie = movie
		case matches:
			list = slices.Insert(list, at, entry{ordinal: ordinal, movie: movie})
		case present:
			list = slices.Delete(list, at, at+1)
		}

		idx.entries[k] = list
	}
}

// Lookup returns a copy of the sublist for set.
// Sets outside the catalog, including the empty set, are not indexed.
func (idx *Index) Lookup(set Set) ([]*source.Movie, bool) {
	list, ok := idx.entries[set.Key()]
	if !ok || set.Empty() {
		return nil, false
	}

	return lo.Map(list, func(e entry, _ int) *source.Movie {
		return e.movie
	}), true
}

// Keys lists every indexed subset key.
func (idx *Index) Keys() []string {
	return lo.Map(idx.subsets, func(s Set, _ int) string {
		return s.Key()
	})
}

// Covered is the number of master movies indexed so far.
func (idx *Index) Covered() int {
	return idx.covered
}
