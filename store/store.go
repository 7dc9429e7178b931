// Package store owns the movies of one browsing session: the master list, the
// filter index, the active filter, the cursor and the visible window.
package store

import (
	"sync"

	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/streaming"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Store is safe for concurrent use. Every operation is atomic with respect to the others.
type Store struct {
	mu sync.RWMutex

	catalog *streaming.Catalog
	options Options

	all       []*source.Movie
	ordinals  map[int]int
	index     *filter.Index
	filter    filter.Set
	active    []*source.Movie
	cursor    int
	loads        int
	lastReceived int
	exhausted    bool
}

// New creates an empty store for one session.
func New(catalog *streaming.Catalog, options Options) *Store {
	return &Store{
		catalog:  catalog,
		options:  options.normalized(),
		ordinals: make(map[int]int),
		index:    filter.NewIndex(catalog),
	}
}

// Ingest appends movies not seen before, in arrival order, and extends the index
// with them. Movies already cached only have their providers replaced, and only when
// the incoming record carries provider data. It returns the number of movies appended.
func (s *Store) Ingest(movies []*source.Movie) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var appended []*source.Movie
	for _, m := range movies {
		if m == nil {
			continue
		}

		if ordinal, ok := s.ordinals[m.ID]; ok {
			if len(m.Providers) > 0 {
				s.enrich(ordinal, m.Providers)
			}
			continue
		}

		clone := m.Clone()
		s.ordinals[clone.ID] = len(s.all)
		s.all = append(s.all, clone)
		appended = append(appended, clone)
	}

	s.index.Extend(appended)
	s.refreshActive()

	return len(appended)
}

// Enrich replaces the providers of a cached movie. The focused movie stays focused
// when it is still part of the active sequence.
func (s *Store) Enrich(id int, providers []source.ProviderRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ordinal, ok := s.ordinals[id]
	if !ok {
		return false
	}

	s.enrich(ordinal, providers)
	s.refreshActive()
	return true
}

func (s *Store) enrich(ordinal int, providers []source.ProviderRef) {
	// cached records are never mutated, readers may still hold them
	enriched := s.all[ordinal].Clone()
	enriched.Providers = append([]source.ProviderRef(nil), providers...)

	s.all[ordinal] = enriched
	s.index.Refresh(enriched, ordinal)
}

// SetCursor moves the cursor, clamped to the active sequence.
func (s *Store) SetCursor(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor = clamp(i, len(s.active))
	return s.cursor
}

// ActivateFilter switches the active sequence and restarts browsing at its start.
// The empty set browses every movie. A set naming services outside the catalog
// yields an empty sequence.
func (s *Store) ActivateFilter(set filter.Set) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set = set.Resolve(s.catalog)
	s.filter = set
	s.active = s.lookup(set)
	s.cursor = 0
}

// ActivateKey is ActivateFilter for a serialized filter key.
func (s *Store) ActivateKey(key string) {
	s.ActivateFilter(filter.ParseKey(key))
}

// refreshActive re-reads the active sequence after the master list changed,
// following the focused movie if it moved.
func (s *Store) refreshActive() {
	var focused mo.Option[int]
	if s.cursor < len(s.active) {
		focused = mo.Some(s.active[s.cursor].ID)
	}

	s.active = s.lookup(s.filter)

	if id, ok := focused.Get(); ok {
		if _, i, found := lo.FindIndexOf(s.active, func(m *source.Movie) bool {
			return m.ID == id
		}); found {
			s.cursor = i
			return
		}
	}

	s.cursor = clamp(s.cursor, len(s.active))
}

func (s *Store) lookup(set filter.Set) []*source.Movie {
	if set.Empty() {
		return s.all[:len(s.all):len(s.all)]
	}

	movies, ok := s.index.Lookup(set)
	if !ok {
		return nil
	}
	return movies
}

// Window returns the visible slice of the active sequence around the cursor.
func (s *Store) Window() Window {
	s.mu.RLock()
	defer s.mu.RUnlock()

	from, to := bounds(len(s.active), s.cursor, s.options.WindowSize)
	slots := make([]Slot, 0, to-from)
	for i := from; i < to; i++ {
		slots = append(slots, Slot{
			Movie:    s.active[i],
			Position: i,
			Offset:   i - s.cursor,
		})
	}

	return Window{
		Slots:  slots,
		Cursor: s.cursor,
		Len:    len(s.active),
		Total:  len(s.all),
		Filter: s.filter,
	}
}

// ShouldFetchMore reports whether the cursor is within the fetch threshold of the
// end of the active sequence and the source may still have pages.
func (s *Store) ShouldFetchMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.exhausted:
		return false
	case s.loads == 0:
		return true
	case len(s.active) == 0:
		return s.lastReceived > 0
	default:
		return s.cursor >= len(s.active)-s.options.FetchThreshold
	}
}

// MarkLoaded records a completed load that returned received movies, whether or
// not they were already cached. An empty active filter keeps asking for pages
// until a load comes back empty.
func (s *Store) MarkLoaded(received int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loads++
	s.lastReceived = received
}

// MarkExhausted records that the source has no more pages.
func (s *Store) MarkExhausted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exhausted = true
}

func (s *Store) Exhausted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.exhausted
}

// Loads returns the number of completed loads.
func (s *Store) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loads
}

func (s *Store) Cursor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cursor
}

// Len returns the length of the active sequence.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.active)
}

// Total returns the number of cached movies.
func (s *Store) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.all)
}

// All returns the master list in arrival order.
func (s *Store) All() []*source.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*source.Movie(nil), s.all...)
}

// Active returns the active sequence.
func (s *Store) Active() []*source.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*source.Movie(nil), s.active...)
}

func (s *Store) ActiveFilter() filter.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter
}

// Current returns the movie under the cursor.
func (s *Store) Current() mo.Option[*source.Movie] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cursor >= len(s.active) {
		return mo.None[*source.Movie]()
	}
	return mo.Some(s.active[s.cursor])
}

// Position returns the index of a movie in the active sequence.
func (s *Store) Position(id int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, i, ok := lo.FindIndexOf(s.active, func(m *source.Movie) bool {
		return m.ID == id
	})
	return i, ok
}

func (s *Store) Catalog() *streaming.Catalog {
	return s.catalog
}

func (s *Store) Options() Options {
	return s.options
}

func clamp(i, length int) int {
	if length == 0 {
		return 0
	}
	return lo.Clamp(i, 0, length-1)
}
