package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestService(t *testing.T) {
	Convey("Service", t, func() {
		So(Service(0), ShouldNotEqual, Service(1))
		So(Service(len(services)), ShouldEqual, Service(0))
		So(Service(-1), ShouldEqual, Purple)
	})
}
