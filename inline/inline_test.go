package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/reelroll-cli/reelroll/fetch"
	"github.com/reelroll-cli/reelroll/filesystem"
	"github.com/reelroll-cli/reelroll/filter"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/streaming"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type pagedSource struct {
	requested int
}

func (p *pagedSource) Name() string { return "paged" }

func (p *pagedSource) Discover(_ context.Context, page int) (*source.Page, error) {
	p.requested++
	response := &source.Page{Number: page, TotalPages: 4}
	for i := 0; i < 5; i++ {
		id := page*10 + i
		response.Results = append(response.Results, &source.Movie{
			ID:          id,
			Title:       fmt.Sprintf("Movie %d", id),
			ReleaseDate: "2001-01-01",
			Rating:      7,
		})
	}
	return response, nil
}

func (p *pagedSource) ProvidersOf(_ context.Context, id int) ([]source.ProviderRef, error) {
	if id%10 == 0 {
		return []source.ProviderRef{{ID: 8, Name: "Netflix"}}, nil
	}
	return nil, nil
}

var catalog = streaming.MustCatalog(streaming.Service{Name: "Netflix", ID: 8})

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given a paged source", t, func() {
		src := &pagedSource{}
		var out bytes.Buffer
		options := &Options{
			Out:     &out,
			Source:  src,
			Catalog: catalog,
			Fetch:   fetch.Options{Concurrency: 2},
		}

		Convey("When asking for a few movies", func() {
			options.Limit = 3
			So(Run(ctx, options), ShouldBeNil)

			Convey("Then one page should be enough", func() {
				So(src.requested, ShouldEqual, 1)
				So(out.String(), ShouldStartWith, "Movie 10 (2001)\t7.0\tNetflix\nMovie 11 (2001)\t7.0\n")
			})
		})

		Convey("When filtering by a service", func() {
			options.Filter = filter.NewSet("Netflix")
			options.Limit = 10
			options.Json = true
			So(Run(ctx, options), ShouldBeNil)

			Convey("Then pages should load until the catalog is exhausted", func() {
				So(src.requested, ShouldEqual, 4)

				var output Output
				So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
				So(output.Filter, ShouldResemble, []string{"Netflix"})
				So(output.Pages, ShouldEqual, 4)
				So(output.Result, ShouldHaveLength, 4)
			})
		})

		Convey("When the page budget runs out", func() {
			options.Filter = filter.NewSet("Netflix")
			options.Limit = 10
			options.Pages = 2
			So(Run(ctx, options), ShouldBeNil)
			So(src.requested, ShouldEqual, 2)
		})

		Convey("When a picker is set", func() {
			picker, err := ParsePicker("exact:movie 12")
			So(err, ShouldBeNil)
			options.Picker = mo.Some(picker)
			So(Run(ctx, options), ShouldBeNil)
			So(out.String(), ShouldStartWith, "Movie 12 (2001)")
		})

		Convey("When nothing matches the JSON output is still valid", func() {
			options.Filter = filter.NewSet("Hulu")
			options.Pages = 1
			options.Json = true
			So(Run(ctx, options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}

func TestParsePicker(t *testing.T) {
	movies := []*source.Movie{{ID: 1, Title: "Heat"}, {ID: 2, Title: "Ronin"}}

	Convey("ParsePicker", t, func() {
		for description, want := range map[string]int{"first": 1, "last": 2, "exact:ronin": 2, "1": 2, "42": 2} {
			picker, err := ParsePicker(description)
			So(err, ShouldBeNil)
			So(picker(movies).MustGet().ID, ShouldEqual, want)
		}

		Convey("Should miss on an empty list", func() {
			picker, _ := ParsePicker("first")
			So(picker(nil).IsAbsent(), ShouldBeTrue)
		})

		Convey("Should reject unknown pickers", func() {
			_, err := ParsePicker("middle")
			So(err, ShouldNotBeNil)
		})
	})
}
