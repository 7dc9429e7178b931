// Package navigator turns discrete user intents into cursor moves and fetch requests.
package navigator

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/reelroll-cli/reelroll/fetch"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/log"
	"github.com/reelroll-cli/reelroll/store"
	"github.com/spf13/viper"
)

// Fetcher loads more movies into the store.
type Fetcher interface {
	LoadNextPage(ctx context.Context) (fetch.Result, error)
	InFlight() bool
}

// Outcome is the result of a fetch started by the navigator.
type Outcome struct {
	Result fetch.Result
	Err    error
}

const DefaultDragThreshold = 10

type Options struct {
	// DragThreshold is the distance a drag must exceed to move one step.
	DragThreshold int
}

func OptionsFromConfig() Options {
	return Options{DragThreshold: viper.GetInt(key.BrowseDragThreshold)}
}

// Navigator moves the cursor of one store and keeps it fed.
type Navigator struct {
	store   *store.Store
	fetcher Fetcher
	options Options

	pending  atomic.Bool
	wg       sync.WaitGroup
	outcomes chan Outcome
}

func New(st *store.Store, fetcher Fetcher, options Options) *Navigator {
	if options.DragThreshold <= 0 {
		options.DragThreshold = DefaultDragThreshold
	}

	return &Navigator{
		store:    st,
		fetcher:  fetcher,
		options:  options,
		outcomes: make(chan Outcome, 1),
	}
}

// Outcomes delivers the result of every fetch the navigator starts.
func (n *Navigator) Outcomes() <-chan Outcome {
	return n.outcomes
}

// Advance moves to the next movie. At the end it only checks whether to fetch.
func (n *Navigator) Advance(ctx context.Context) bool {
	defer n.check(ctx)

	cursor := n.store.Cursor()
	return n.store.SetCursor(cursor+1) != cursor
}

// Retreat moves to the previous movie.
func (n *Navigator) Retreat(ctx context.Context) bool {
	defer n.check(ctx)

	cursor := n.store.Cursor()
	return n.store.SetCursor(cursor-1) != cursor
}

// Seek moves the cursor to position, clamped.
func (n *Navigator) Seek(ctx context.Context, position int) int {
	defer n.check(ctx)

	return n.store.SetCursor(position)
}

// JumpToFilter activates set and restarts at its first movie.
func (n *Navigator) JumpToFilter(ctx context.Context, set filter.Set) {
	defer n.check(ctx)

	log.Infof("activating filter %s", set)
	n.store.ActivateFilter(set)
}

// ToggleService selects a single service, or clears the filter when that service
// is already the only one selected. Names outside the catalog select nothing.
func (n *Navigator) ToggleService(ctx context.Context, name string) filter.Set {
	if canonical, ok := n.store.Catalog().Canonical(name); ok {
		name = canonical
	}

	next := filter.NewSet(name)
	if n.store.ActiveFilter().Equal(next) {
		next = filter.Set{}
	}

	n.JumpToFilter(ctx, next)
	return next
}

// Drag moves exactly one step for a drag longer than the threshold.
// A negative offset drags the next movie in.
func (n *Navigator) Drag(ctx context.Context, offset int) bool {
	switch {
	case offset < -n.options.DragThreshold:
		return n.Advance(ctx)
	case offset > n.options.DragThreshold:
		return n.Retreat(ctx)
	default:
		return false
	}
}

// Fetch starts loading the next page unless a load is already running.
// It reports whether a load was started.
func (n *Navigator) Fetch(ctx context.Context) bool {
	if n.fetcher.InFlight() || !n.pending.CompareAndSwap(false, true) {
		return false
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		result, err := n.fetcher.LoadNextPage(ctx)
		n.pending.Store(false)

		select {
		case n.outcomes <- Outcome{Result: result, Err: err}:
		case <-ctx.Done():
		}
	}()

	return true
}

// Pending reports whether a fetch started by the navigator has not delivered its outcome.
func (n *Navigator) Pending() bool {
	return n.pending.Load()
}

// Wait blocks until every started fetch has delivered its outcome.
func (n *Navigator) Wait() {
	n.wg.Wait()
}

// Position reports where the cursor is in the active sequence.
func (n *Navigator) Position() Position {
	return positionOf(n.store.Cursor(), n.store.Len())
}

func (n *Navigator) check(ctx context.Context) {
	if n.store.ShouldFetchMore() {
		n.Fetch(ctx)
	}
}
