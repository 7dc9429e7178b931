package store

import (
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Slot is one visible movie.
type Slot struct {
	Movie *source.Movie

	// Position is the absolute index in the active sequence.
	Position int

	// Offset is the signed distance from the cursor.
	Offset int
}

// Window is a consistent snapshot of what is visible.
type Window struct {
	Slots  []Slot
	Cursor int
	Len    int
	Total  int
	Filter filter.Set
}

// Current returns the slot under the cursor.
func (w Window) Current() mo.Option[Slot] {
	for _, s := range w.Slots {
		if s.Offset == 0 {
			return mo.Some(s)
		}
	}
	return mo.None[Slot]()
}

// Movies returns the visible movies in order.
func (w Window) Movies() []*source.Movie {
	return lo.Map(w.Slots, func(s Slot, _ int) *source.Movie {
		return s.Movie
	})
}

func (w Window) Empty() bool {
	return len(w.Slots) == 0
}

// bounds returns the [from, to) range of a window of size centered on cursor,
// shifted to stay full at either end.
func bounds(length, cursor, size int) (from, to int) {
	if length <= size {
		return 0, length
	}

	from = cursor - size/2
	from = max(0, min(from, length-size))
	return from, from + size
}
