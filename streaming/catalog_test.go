package streaming

import (
	"testing"

	"github.com/reelroll-cli/reelroll/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should read Name=ID", func() {
			s, err := Parse(" Disney+ = 337 ")
			So(err, ShouldBeNil)
			So(s, ShouldResemble, Service{Name: "Disney+", ID: 337})
			So(s.String(), ShouldEqual, "Disney+=337")
		})

		Convey("Should reject malformed entries", func() {
			for _, entry := range []string{"Netflix", "=8", "Netflix=abc", "Netflix=0"} {
				_, err := Parse(entry)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestCatalog(t *testing.T) {
	Convey("Given the default catalog", t, func() {
		catalog := MustCatalog(
			Service{Name: "Netflix", ID: 8},
			Service{Name: "Disney+", ID: 337},
			Service{Name: "Prime", ID: 9},
		)

		Convey("Names should keep catalog order", func() {
			So(catalog.Names(), ShouldResemble, []string{"Netflix", "Disney+", "Prime"})
			So(catalog.Len(), ShouldEqual, 3)
		})

		Convey("Lookup should ignore case", func() {
			id, ok := catalog.Lookup("netflix")
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, 8)

			name, ok := catalog.Canonical("PRIME")
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "Prime")
		})

		Convey("Lookup should miss unknown services", func() {
			_, ok := catalog.Lookup("Hulu")
			So(ok, ShouldBeFalse)
		})

		Convey("Closest should suggest a near spelling", func() {
			So(catalog.Closest("Netflx"), ShouldEqual, "Netflix")
			So(catalog.Closest("disney"), ShouldEqual, "Disney+")
		})
	})

	Convey("NewCatalog should reject", t, func() {
		Convey("duplicate names", func() {
			_, err := NewCatalog(Service{Name: "Netflix", ID: 8}, Service{Name: "netflix", ID: 9})
			So(err, ShouldNotBeNil)
		})

		Convey("duplicate ids", func() {
			_, err := NewCatalog(Service{Name: "Netflix", ID: 8}, Service{Name: "Other", ID: 8})
			So(err, ShouldNotBeNil)
		})

		Convey("names that would break filter keys", func() {
			_, err := NewCatalog(Service{Name: "A,B", ID: 1})
			So(err, ShouldNotBeNil)
		})

		Convey("more services than can be indexed", func() {
			_, err := NewCatalog(
				Service{Name: "A", ID: 1},
				Service{Name: "B", ID: 2},
				Service{Name: "C", ID: 3},
				Service{Name: "D", ID: 4},
				Service{Name: "E", ID: 5},
			)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("FromConfig should read the configured services", t, func() {
		viper.Set(key.StreamingServices, []string{"Netflix=8", "Prime=9"})
		defer viper.Set(key.StreamingServices, nil)

		catalog, err := FromConfig()
		So(err, ShouldBeNil)
		So(catalog.Names(), ShouldResemble, []string{"Netflix", "Prime"})
	})
}
