package generators

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ob6160/SphereMap/core"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSphereMap(t *testing.T) {
	Convey("Sphere map with default bands", t, func() {
		sphere := NewSphereMap(DefaultLatitudeBands, DefaultLongitudeBands, DefaultRadius)
		So(sphere.Validate(), ShouldBeNil)

		buf := new(core.MeshBuffer)
		sphere.Generate(buf)

		Convey("emits six vertices per cell", func() {
			So(buf.Len(), ShouldEqual, 30*30*6)
			So(sphere.VertexCount(), ShouldEqual, 5400)
			So(len(buf.Normals), ShouldEqual, len(buf.Vertices))
		})

		Convey("keeps every vertex on the sphere", func() {
			for _, v := range buf.Vertices {
				So(v.W(), ShouldEqual, float32(1))
				So(v.Vec3().Len(), ShouldAlmostEqual, 1.0, 1e-5)
			}
		})

		Convey("uses the raw position as the normal", func() {
			for i, n := range buf.Normals {
				p := buf.Vertices[i].Vec3()
				So(n, ShouldResemble, p)
				So(n.Normalize().ApproxEqualThreshold(p.Normalize(), 1e-6), ShouldBeTrue)
			}
		})

		Convey("starts at the north pole with a degenerate triangle", func() {
			pole := mgl32.Vec4{0, 1, 0, 1}
			So(buf.Vertices[0].ApproxEqual(pole), ShouldBeTrue)
			So(buf.Vertices[1].ApproxEqual(pole), ShouldBeTrue)
			So(buf.Vertices[0], ShouldResemble, buf.Vertices[1])
			So(buf.Vertices[2].Y(), ShouldBeLessThan, 1.0)
		})

		Convey("winds each cell as (p1, p2, p3) (p2, p4, p3)", func() {
			cell := buf.Vertices[6:12]
			So(cell[3], ShouldResemble, cell[1])
			So(cell[5], ShouldResemble, cell[2])
			So(cell[0].Y(), ShouldEqual, cell[1].Y())
			So(cell[2].Y(), ShouldEqual, cell[4].Y())
		})
	})

	Convey("Sphere map radius", t, func() {
		buf := new(core.MeshBuffer)
		NewSphereMap(4, 8, 2.5).Generate(buf)
		So(buf.Len(), ShouldEqual, 4*8*6)
		for _, v := range buf.Vertices {
			So(v.Vec3().Len(), ShouldAlmostEqual, 2.5, 1e-5)
		}
	})

	Convey("Sphere map validation", t, func() {
		So(NewSphereMap(0, 30, 1).Validate(), ShouldNotBeNil)
		So(NewSphereMap(30, 0, 1).Validate(), ShouldNotBeNil)
		So(NewSphereMap(30, 30, 0).Validate(), ShouldNotBeNil)
		So(NewSphereMap(30, 30, -1).Validate(), ShouldNotBeNil)
		So(NewSphereMap(1, 1, 0.1).Validate(), ShouldBeNil)

		Convey("caps the band counts", func() {
			So(NewSphereMap(MaxBands, MaxBands, 1).Validate(), ShouldBeNil)
			So(NewSphereMap(MaxBands+1, 30, 1).Validate(), ShouldNotBeNil)
			So(NewSphereMap(30, 1<<20, 1).Validate(), ShouldNotBeNil)
		})

		Convey("rejects a radius that is not finite", func() {
			So(NewSphereMap(30, 30, float32(math.Inf(1))).Validate(), ShouldNotBeNil)
			So(NewSphereMap(30, 30, float32(math.NaN())).Validate(), ShouldNotBeNil)
		})
	})
}
