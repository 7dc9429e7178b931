package fetch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/store"
	"github.com/reelroll-cli/reelroll/streaming"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	netflix  = 8
	perPage  = 5
	lastPage = 3
)

var catalog = streaming.MustCatalog(
	streaming.Service{Name: "Netflix", ID: netflix},
	streaming.Service{Name: "Prime", ID: 9},
)

type fakeSource struct {
	mu        sync.Mutex
	requested []int
	failures  []error
	broken    map[int]bool
	lookups   int

	// when set, Discover blocks until release is closed
	entered chan struct{}
	release chan struct{}
}

func (f *fakeSource) Name() string {
	return "fake"
}

func (f *fakeSource) Discover(ctx context.Context, page int) (*source.Page, error) {
	f.mu.Lock()
	f.requested = append(f.requested, page)
	var err error
	if len(f.failures) > 0 {
		err, f.failures = f.failures[0], f.failures[1:]
	}
	f.mu.Unlock()

	if f.release != nil {
		f.entered <- struct{}{}
		<-f.release
	}

	if err != nil {
		return nil, err
	}

	response := &source.Page{Number: page, TotalPages: lastPage}
	if page > lastPage {
		return response, nil
	}

	for i := 0; i < perPage; i++ {
		response.Results = append(response.Results, &source.Movie{ID: page*100 + i, Title: "movie"})
	}
	return response, nil
}

func (f *fakeSource) ProvidersOf(ctx context.Context, id int) ([]source.ProviderRef, error) {
	f.mu.Lock()
	f.lookups++
	broken := f.broken[id]
	f.mu.Unlock()

	if broken {
		return nil, source.ErrProviderLookup
	}
	if id%2 == 0 {
		return []source.ProviderRef{{ID: netflix, Name: "Netflix"}}, nil
	}
	return []source.ProviderRef{}, nil
}

func (f *fakeSource) pages() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.requested...)
}

func setup(src *fakeSource, options Options) (*Coordinator, *store.Store) {
	st := store.New(catalog, store.Options{WindowSize: 5, FetchThreshold: 2})
	return New(src, st, options), st
}

func TestLoadNextPage(t *testing.T) {
	ctx := context.Background()

	Convey("Given a coordinator over a three page source", t, func() {
		src := &fakeSource{}
		c, st := setup(src, Options{Concurrency: 2})

		So(c.Page(), ShouldEqual, 1)
		So(st.ShouldFetchMore(), ShouldBeTrue)

		Convey("When the first page loads", func() {
			result, err := c.LoadNextPage(ctx)
			So(err, ShouldBeNil)

			Convey("Then its movies should be cached with their providers", func() {
				So(result, ShouldResemble, Result{Page: 1, Received: perPage, Added: perPage})
				So(st.Total(), ShouldEqual, perPage)
				So(st.Loads(), ShouldEqual, 1)
				So(c.Page(), ShouldEqual, 2)
				So(c.InFlight(), ShouldBeFalse)

				st.ActivateFilter(filter.NewSet("Netflix"))
				So(st.Len(), ShouldEqual, 3)
			})
		})

		Convey("When every page has loaded", func() {
			for i := 0; i < lastPage; i++ {
				_, err := c.LoadNextPage(ctx)
				So(err, ShouldBeNil)
			}

			Convey("Then the source should be exhausted", func() {
				So(c.Exhausted(), ShouldBeTrue)
				So(st.Exhausted(), ShouldBeTrue)
				So(st.ShouldFetchMore(), ShouldBeFalse)
				So(st.Total(), ShouldEqual, lastPage*perPage)
			})

			Convey("Then further loads should not reach the source", func() {
				result, err := c.LoadNextPage(ctx)
				So(err, ShouldBeNil)
				So(result.Exhausted, ShouldBeTrue)
				So(src.pages(), ShouldResemble, []int{1, 2, 3})
			})
		})
	})

	Convey("Given a source that fails once", t, func() {
		src := &fakeSource{failures: []error{errors.New("connection reset")}}
		c, st := setup(src, Options{})

		Convey("When a load fails", func() {
			_, err := c.LoadNextPage(ctx)

			Convey("Then the error should be surfaced and nothing cached", func() {
				So(errors.Is(err, source.ErrUnavailable), ShouldBeTrue)
				So(st.Total(), ShouldEqual, 0)
				So(st.Loads(), ShouldEqual, 0)
				So(c.Page(), ShouldEqual, 1)
			})

			Convey("Then the next load should request the same page", func() {
				_, err := c.LoadNextPage(ctx)
				So(err, ShouldBeNil)
				So(src.pages(), ShouldResemble, []int{1, 1})
				So(st.Total(), ShouldEqual, perPage)
			})
		})
	})

	Convey("Given transient failures", t, func() {
		transient := &source.TransientError{Err: errors.New("503")}

		Convey("They should be retried within one load", func() {
			src := &fakeSource{failures: []error{transient, transient}}
			c, st := setup(src, Options{Attempts: 3, Backoff: time.Millisecond})

			_, err := c.LoadNextPage(ctx)
			So(err, ShouldBeNil)
			So(src.pages(), ShouldResemble, []int{1, 1, 1})
			So(st.Total(), ShouldEqual, perPage)
		})

		Convey("They should give up after the configured attempts", func() {
			src := &fakeSource{failures: []error{transient, transient, transient}}
			c, _ := setup(src, Options{Attempts: 2, Backoff: time.Millisecond})

			_, err := c.LoadNextPage(ctx)
			So(errors.Is(err, source.ErrUnavailable), ShouldBeTrue)
			So(src.pages(), ShouldHaveLength, 2)
		})

		Convey("Permanent failures should not be retried", func() {
			src := &fakeSource{failures: []error{errors.New("401")}}
			c, _ := setup(src, Options{Attempts: 5, Backoff: time.Millisecond})

			_, err := c.LoadNextPage(ctx)
			So(err, ShouldNotBeNil)
			So(src.pages(), ShouldHaveLength, 1)
		})
	})

	Convey("Given provider lookups that fail", t, func() {
		src := &fakeSource{broken: map[int]bool{100: true}}
		c, st := setup(src, Options{Concurrency: 4})

		_, err := c.LoadNextPage(ctx)

		Convey("The page should still merge with the movie left unmatched", func() {
			So(err, ShouldBeNil)
			So(st.Total(), ShouldEqual, perPage)
			So(st.All()[0].Providers, ShouldBeEmpty)

			st.ActivateFilter(filter.NewSet("Netflix"))
			So(st.Len(), ShouldEqual, 2)
		})
	})

	Convey("Given eager ingestion", t, func() {
		src := &fakeSource{}
		c, st := setup(src, Options{EagerIngest: true, Concurrency: 3})

		_, err := c.LoadNextPage(ctx)

		Convey("Movies should be enriched once their lookups land", func() {
			So(err, ShouldBeNil)
			So(src.lookups, ShouldEqual, perPage)
			st.ActivateFilter(filter.NewSet("Netflix"))
			So(st.Len(), ShouldEqual, 3)
		})
	})
}

func TestAtMostOneFetch(t *testing.T) {
	Convey("Given a slow source", t, func() {
		src := &fakeSource{entered: make(chan struct{}, 1), release: make(chan struct{})}
		c, st := setup(src, Options{})

		type outcome struct {
			result Result
			err    error
		}

		outcomes := make(chan outcome, 2)
		load := func() {
			result, err := c.LoadNextPage(context.Background())
			outcomes <- outcome{result, err}
		}

		Convey("When two loads overlap", func() {
			go load()
			<-src.entered
			So(c.InFlight(), ShouldBeTrue)

			go load()
			time.Sleep(50 * time.Millisecond)
			close(src.release)

			first, second := <-outcomes, <-outcomes
			So(first.err, ShouldBeNil)
			So(second.err, ShouldBeNil)

			Convey("Then the source should see one request and both callers the same outcome", func() {
				So(src.pages(), ShouldResemble, []int{1})
				So(first.result, ShouldResemble, second.result)
				So(st.Total(), ShouldEqual, perPage)
				So(c.Page(), ShouldEqual, 2)
			})
		})
	})
}
