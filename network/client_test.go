package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelroll-cli/reelroll/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the user agent", t, func() {
		var agent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		Convey("The shared client should identify the application", func() {
			resp, err := Client.Get(server.URL)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(agent, ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit user agent should be kept", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom")
			resp, err := Client.Do(req)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(agent, ShouldEqual, "custom")
		})
	})
}
