package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/reelroll-cli/reelroll/filesystem"
	"github.com/reelroll-cli/reelroll/internal/cache"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/spf13/afero"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

const discoverBody = `{
	"page": 2,
	"total_pages": 7,
	"results": [
		{"id": 550, "title": "Fight Club", "poster_path": "/a.jpg", "vote_average": 8.4, "release_date": "1999-10-15"},
		{"id": 13, "title": "Forrest Gump", "vote_average": 8.5}
	]
}`

const providersBody = `{
	"id": 550,
	"results": {
		"US": {"flatrate": [{"provider_id": 8, "provider_name": "Netflix", "logo_path": "/n.jpg"}], "rent": [{"provider_id": 2}]},
		"DE": {"flatrate": [{"provider_id": 9, "provider_name": "Prime"}]}
	}
}`

func TestClient(t *testing.T) {
	Convey("Given a TMDB server", t, func() {
		var (
			hits    atomic.Int32
			status  = http.StatusOK
			lastReq *http.Request
		)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			lastReq = r
			if status != http.StatusOK {
				w.WriteHeader(status)
				return
			}

			switch r.URL.Path {
			case "/discover/movie":
				if r.URL.Query().Get("page") == "9" {
					_, _ = fmt.Fprint(w, `{"page": 9, "total_pages": 1000, "results": []}`)
					return
				}
				_, _ = fmt.Fprint(w, discoverBody)
			case "/movie/550/watch/providers":
				_, _ = fmt.Fprint(w, providersBody)
			case "/movie/1/watch/providers":
				_, _ = fmt.Fprint(w, `{"id": 1, "results": {}}`)
			case "/movie/2/watch/providers":
				_, _ = fmt.Fprint(w, `{"id": `)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := New(Options{
			BaseURL:   server.URL + "/",
			Key:       "v3key",
			Providers: cache.New[string, []source.ProviderRef](filepath.Join(t.TempDir(), "providers.json"), time.Hour),
		})
		ctx := context.Background()

		Convey("Discover should decode the page", func() {
			page, err := client.Discover(ctx, 2)
			So(err, ShouldBeNil)
			So(page.Number, ShouldEqual, 2)
			So(page.TotalPages, ShouldEqual, 7)
			So(page.Results, ShouldHaveLength, 2)
			So(page.Results[0].Title, ShouldEqual, "Fight Club")
			So(page.Results[0].Rating, ShouldEqual, 8.4)

			q := lastReq.URL.Query()
			So(q.Get("page"), ShouldEqual, "2")
			So(q.Get("api_key"), ShouldEqual, "v3key")
			So(q.Get("sort_by"), ShouldEqual, "popularity.desc")
			So(lastReq.Header.Get("Authorization"), ShouldBeEmpty)
		})

		Convey("Discover should cap total_pages at the last page TMDB serves", func() {
			page, err := client.Discover(ctx, 9)
			So(err, ShouldBeNil)
			So(page.TotalPages, ShouldEqual, 500)
		})

		Convey("A cache that cannot be written should not fail the lookup", func() {
			filesystem.Use(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			defer filesystem.SetMemMapFs()

			providers, err := client.ProvidersOf(ctx, 550)
			So(err, ShouldBeNil)
			So(providers, ShouldHaveLength, 1)

			_, err = client.ProvidersOf(ctx, 550)
			So(err, ShouldBeNil)
			So(hits.Load(), ShouldEqual, 2)
		})

		Convey("ProvidersOf should read the region's flatrate list", func() {
			providers, err := client.ProvidersOf(ctx, 550)
			So(err, ShouldBeNil)
			So(providers, ShouldResemble, []source.ProviderRef{{ID: 8, Name: "Netflix", Logo: "/n.jpg"}})

			Convey("And serve repeats from the cache", func() {
				before := hits.Load()
				again, err := client.ProvidersOf(ctx, 550)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, providers)
				So(hits.Load(), ShouldEqual, before)
			})
		})

		Convey("A movie unavailable in the region has no providers", func() {
			providers, err := client.ProvidersOf(ctx, 1)
			So(err, ShouldBeNil)
			So(providers, ShouldBeEmpty)
		})

		Convey("A malformed provider body is a lookup failure", func() {
			_, err := client.ProvidersOf(ctx, 2)
			So(errors.Is(err, source.ErrProviderLookup), ShouldBeTrue)
			So(source.IsTransient(err), ShouldBeFalse)
		})

		Convey("Server errors are transient and unavailable", func() {
			status = http.StatusServiceUnavailable
			_, err := client.Discover(ctx, 1)
			So(errors.Is(err, source.ErrUnavailable), ShouldBeTrue)
			So(source.IsTransient(err), ShouldBeTrue)

			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusServiceUnavailable)
		})

		Convey("Client errors are not transient", func() {
			status = http.StatusUnauthorized
			err := client.Ping(ctx)
			So(err, ShouldNotBeNil)
			So(source.IsTransient(err), ShouldBeFalse)
		})

		Convey("A read access token is sent as a bearer header", func() {
			bearer := New(Options{BaseURL: server.URL, Key: "eyJtoken"})
			_, err := bearer.Discover(ctx, 1)
			So(err, ShouldBeNil)
			So(lastReq.Header.Get("Authorization"), ShouldEqual, "Bearer eyJtoken")
			So(lastReq.URL.Query().Has("api_key"), ShouldBeFalse)
		})

		Convey("Another region reads its own list", func() {
			de := New(Options{BaseURL: server.URL, Key: "k", Region: "DE"})
			providers, err := de.ProvidersOf(ctx, 550)
			So(err, ShouldBeNil)
			So(providers[0].ID, ShouldEqual, 9)
		})
	})
}
