// Package fetch loads catalog pages into a store, one page at a time.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avast/retry-go/v4"
	"github.com/reelroll-cli/reelroll/log"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/store"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/singleflight"
)

const flight = "next-page"

// Result describes one completed load.
type Result struct {
	// Page is the page number that was requested.
	Page int

	// Received is the number of movies on the page, Added the number new to the store.
	Received int
	Added    int

	// Exhausted is set once the source has no pages left.
	Exhausted bool
}

// Coordinator requests pages from a source and merges them into a store.
// At most one request is in flight; concurrent callers share its outcome.
type Coordinator struct {
	source  source.Source
	store   *store.Store
	options Options
	group   singleflight.Group

	mu        sync.Mutex
	page      int
	inFlight  bool
	exhausted bool
}

func New(src source.Source, st *store.Store, options Options) *Coordinator {
	return &Coordinator{
		source:  src,
		store:   st,
		options: options.normalized(),
		page:    1,
	}
}

// LoadNextPage requests the next page and its provider data and merges them into the store.
// On failure the store and the page counter are left unchanged and the error wraps
// source.ErrUnavailable. Nothing is retried across calls.
func (c *Coordinator) LoadNextPage(ctx context.Context) (Result, error) {
	v, err, shared := c.group.Do(flight, func() (any, error) {
		return c.load(ctx)
	})

	if shared {
		log.Debug("joined the page request in flight")
	}

	return v.(Result), err
}

// InFlight reports whether a page request is running.
func (c *Coordinator) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.inFlight
}

// Page returns the next page that will be requested.
func (c *Coordinator) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page
}

func (c *Coordinator) Exhausted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.exhausted
}

func (c *Coordinator) load(ctx context.Context) (Result, error) {
	c.mu.Lock()
	page := c.page
	if c.exhausted {
		c.mu.Unlock()
		return Result{Page: page, Exhausted: true}, nil
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	entry := log.WithFields(log.Fields{"source": c.source.Name(), "page": page})

	response, err := c.discover(ctx, page)
	if err != nil {
		entry.Errorf("page request failed: %v", err)
		return Result{Page: page}, err
	}

	if page > response.TotalPages {
		entry.Infof("source exhausted after %d pages", response.TotalPages)
		c.finish(page, true)
		c.store.MarkLoaded(0)
		return Result{Page: page, Exhausted: true}, nil
	}

	var added int
	if c.options.EagerIngest {
		added = c.store.Ingest(response.Results)
		c.lookup(ctx, response.Results, func(movie *source.Movie, providers []source.ProviderRef) {
			if providers != nil {
				c.store.Enrich(movie.ID, providers)
			}
		})
	} else {
		c.lookup(ctx, response.Results, func(movie *source.Movie, providers []source.ProviderRef) {
			movie.Providers = providers
		})
		added = c.store.Ingest(response.Results)
	}

	exhausted := page >= response.TotalPages
	c.finish(page+1, exhausted)
	c.store.MarkLoaded(len(response.Results))

	entry.Infof("merged %d of %d movies", added, len(response.Results))
	return Result{
		Page:      page,
		Received:  len(response.Results),
		Added:     added,
		Exhausted: exhausted,
	}, nil
}

func (c *Coordinator) finish(next int, exhausted bool) {
	c.mu.Lock()
	c.page = next
	c.exhausted = exhausted
	c.mu.Unlock()

	if exhausted {
		c.store.MarkExhausted()
	}
}

func (c *Coordinator) discover(ctx context.Context, page int) (*source.Page, error) {
	response, err := retry.DoWithData(
		func() (*source.Page, error) {
			requestCtx, cancel := c.requestContext(ctx)
			defer cancel()

			response, err := c.source.Discover(requestCtx, page)
			if err == nil && response == nil {
				err = errors.New("empty response")
			}
			return response, err
		},
		retry.Context(ctx),
		retry.Attempts(c.options.Attempts),
		retry.Delay(c.options.Backoff),
		retry.MaxDelay(c.options.MaxBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return source.IsTransient(err) || (errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil)
		}),
		retry.OnRetry(func(attempt uint, err error) {
			log.Warnf("retrying page %d after attempt %d: %v", page, attempt+1, err)
		}),
	)

	if err != nil && !errors.Is(err, source.ErrUnavailable) {
		err = fmt.Errorf("%w: %w", source.ErrUnavailable, err)
	}

	return response, err
}

// lookup resolves the providers of every movie concurrently. A failed lookup
// is logged and merged as nil, leaving the movie without provider data.
func (c *Coordinator) lookup(ctx context.Context, movies []*source.Movie, merge func(*source.Movie, []source.ProviderRef)) {
	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(c.options.Concurrency)

	for _, movie := range movies {
		p.Go(func() {
			requestCtx, cancel := c.requestContext(ctx)
			defer cancel()

			providers, err := c.source.ProvidersOf(requestCtx, movie.ID)
			if err != nil {
				log.WithFields(log.Fields{"movie": movie.ID}).Warnf("%v", err)
				providers = nil
			}

			mu.Lock()
			defer mu.Unlock()
			merge(movie, providers)
		})
	}

	p.Wait()
}

func (c *Coordinator) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.options.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.options.Timeout)
}
