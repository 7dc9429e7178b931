package navigator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/reelroll-cli/reelroll/fetch"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/store"
	"github.com/reelroll-cli/reelroll/streaming"
	. "github.com/smartystreets/goconvey/convey"
)

var catalog = streaming.MustCatalog(
	streaming.Service{Name: "Netflix", ID: 8},
	streaming.Service{Name: "Prime", ID: 9},
)

type fakeFetcher struct {
	store    *store.Store
	calls    atomic.Int32
	inFlight atomic.Bool
	block    chan struct{}
	fail     error

	mu   sync.Mutex
	next int
}

func (f *fakeFetcher) LoadNextPage(ctx context.Context) (fetch.Result, error) {
	f.calls.Add(1)
	f.inFlight.Store(true)
	defer f.inFlight.Store(false)

	if f.block != nil {
		<-f.block
	}
	if f.fail != nil {
		return fetch.Result{}, f.fail
	}

	f.mu.Lock()
	var page []*source.Movie
	for i := 0; i < 10; i++ {
		f.next++
		provider := 9
		if f.next%5 == 0 {
			provider = 8
		}
		page = append(page, &source.Movie{ID: f.next, Providers: []source.ProviderRef{{ID: provider}}})
	}
	f.mu.Unlock()

	added := f.store.Ingest(page)
	f.store.MarkLoaded(len(page))
	return fetch.Result{Received: len(page), Added: added}, nil
}

func (f *fakeFetcher) InFlight() bool {
	return f.inFlight.Load()
}

func setup() (*Navigator, *store.Store, *fakeFetcher) {
	st := store.New(catalog, store.Options{WindowSize: 5, FetchThreshold: 3})
	f := &fakeFetcher{store: st}
	return New(st, f, Options{DragThreshold: 10}), st, f
}

// loaded runs the bootstrap fetch and waits for its outcome.
func loaded(ctx context.Context, n *Navigator) Outcome {
	n.Fetch(ctx)
	return <-n.Outcomes()
}

func TestNavigation(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty session", t, func() {
		n, st, f := setup()

		So(n.Position(), ShouldEqual, Empty)

		Convey("Moving should not leave the empty sequence but should bootstrap a fetch", func() {
			So(n.Advance(ctx), ShouldBeFalse)
			outcome := <-n.Outcomes()
			So(outcome.Err, ShouldBeNil)
			So(f.calls.Load(), ShouldEqual, 1)
			So(st.Total(), ShouldEqual, 10)
		})
	})

	Convey("Given a loaded session", t, func() {
		n, st, f := setup()
		So(loaded(ctx, n).Err, ShouldBeNil)

		So(n.Position(), ShouldEqual, AtStart)

		Convey("Retreat at the start is a no-op", func() {
			So(n.Retreat(ctx), ShouldBeFalse)
			So(st.Cursor(), ShouldEqual, 0)
		})

		Convey("Advance moves one step without fetching far from the end", func() {
			So(n.Advance(ctx), ShouldBeTrue)
			So(st.Cursor(), ShouldEqual, 1)
			So(n.Position(), ShouldEqual, Middle)
			So(n.Pending(), ShouldBeFalse)
			So(f.calls.Load(), ShouldEqual, 1)
		})

		Convey("Reaching the threshold fetches the next page once", func() {
			n.Seek(ctx, 7)
			So(n.Pending() || f.calls.Load() == 2, ShouldBeTrue)
			<-n.Outcomes()
			So(f.calls.Load(), ShouldEqual, 2)
			So(st.Total(), ShouldEqual, 20)
			So(st.Cursor(), ShouldEqual, 7)
		})

		Convey("Advancing at the end keeps the cursor and asks for more", func() {
			f.block = make(chan struct{})
			n.Seek(ctx, 100)
			So(st.Cursor(), ShouldEqual, 9)
			So(n.Position(), ShouldEqual, AtEnd)

			So(n.Advance(ctx), ShouldBeFalse)
			So(n.Advance(ctx), ShouldBeFalse)
			So(st.Cursor(), ShouldEqual, 9)

			close(f.block)
			<-n.Outcomes()
			n.Wait()
			So(f.calls.Load(), ShouldEqual, 2)

			So(n.Advance(ctx), ShouldBeTrue)
			So(st.Cursor(), ShouldEqual, 10)
		})

		Convey("The cursor never leaves the sequence", func() {
			for i := 0; i < 25; i++ {
				n.Retreat(ctx)
				So(st.Cursor(), ShouldBeBetweenOrEqual, 0, st.Len()-1)
			}
			f.block = make(chan struct{})
			for i := 0; i < 25; i++ {
				n.Advance(ctx)
				So(st.Cursor(), ShouldBeBetweenOrEqual, 0, st.Len()-1)
			}
			close(f.block)
			<-n.Outcomes()
		})

		Convey("Drags move exactly one step past the threshold", func() {
			So(n.Drag(ctx, -5), ShouldBeFalse)
			So(n.Drag(ctx, -10), ShouldBeFalse)
			So(n.Drag(ctx, -300), ShouldBeTrue)
			So(st.Cursor(), ShouldEqual, 1)
			So(n.Drag(ctx, 11), ShouldBeTrue)
			So(st.Cursor(), ShouldEqual, 0)
		})

		Convey("Toggling a service restarts in the filtered sequence", func() {
			n.Seek(ctx, 3)
			set := n.ToggleService(ctx, "netflix")
			So(set.Key(), ShouldEqual, "Netflix")
			So(st.Cursor(), ShouldEqual, 0)
			So(st.Len(), ShouldEqual, 2)

			// two matches are within the threshold, so more raw data is requested
			<-n.Outcomes()
			So(st.Len(), ShouldEqual, 4)

			Convey("Toggling it again clears the filter", func() {
				So(n.ToggleService(ctx, "Netflix").Empty(), ShouldBeTrue)
				So(st.Len(), ShouldEqual, 20)
			})

			Convey("Toggling another service switches to it alone", func() {
				So(n.ToggleService(ctx, "Prime").Key(), ShouldEqual, "Prime")
			})
		})

		Convey("Jumping to a multi-service filter is supported", func() {
			n.JumpToFilter(ctx, filter.NewSet("Netflix", "Prime"))
			So(st.Len(), ShouldEqual, 10)
			So(n.Position(), ShouldEqual, AtStart)
		})

		Convey("An unknown service shows nothing", func() {
			n.ToggleService(ctx, "Hulu")
			So(st.Len(), ShouldEqual, 0)
			So(n.Position(), ShouldEqual, Empty)
		})
	})

	Convey("Given a failing fetcher", t, func() {
		n, st, f := setup()
		f.fail = errors.New("source unavailable")

		Convey("The error should be delivered and the fetch can be retried", func() {
			So(loaded(ctx, n).Err, ShouldNotBeNil)
			So(st.Total(), ShouldEqual, 0)

			f.fail = nil
			So(loaded(ctx, n).Err, ShouldBeNil)
			So(st.Total(), ShouldEqual, 10)
		})
	})

	Convey("Fetch is not started twice while pending", t, func() {
		n, _, f := setup()
		f.block = make(chan struct{})

		So(n.Fetch(ctx), ShouldBeTrue)
		So(n.Fetch(ctx), ShouldBeFalse)

		close(f.block)
		<-n.Outcomes()
		n.Wait()
		So(f.calls.Load(), ShouldEqual, 1)
	})
}

func TestPosition(t *testing.T) {
	Convey("positionOf", t, func() {
		So(positionOf(0, 0), ShouldEqual, Empty)
		So(positionOf(0, 5), ShouldEqual, AtStart)
		So(positionOf(2, 5), ShouldEqual, Middle)
		So(positionOf(4, 5), ShouldEqual, AtEnd)
		So(positionOf(0, 1), ShouldEqual, AtEnd)
		So(Middle.String(), ShouldEqual, "middle")
	})
}
