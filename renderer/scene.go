package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ob6160/SphereMap/core"
)

// Ortho is an orthographic view volume.
type Ortho struct {
	Left, Right, Bottom, Top, Near, Far float32
}

func (o Ortho) Mat4() mgl32.Mat4 {
	return mgl32.Ortho(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

// Placement is translate(Translate) * scale(Scale, Scale, Scale).
type Placement struct {
	Translate mgl32.Vec3
	Scale     float32
}

func (p Placement) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(p.Translate.Elem()).Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
}

// Scene is every fixed parameter of a frame. None of it changes after the
// renderer is built.
type Scene struct {
	Width, Height int
	ClearColor    mgl32.Vec4

	Eye, At, Up mgl32.Vec3
	Projection  Ortho

	Plane, Object Placement

	// ObjectUsesView combines the camera view into the object's model-view.
	// Off by default: the object is placed relative to an identity view while
	// the plane goes through the camera.
	ObjectUsesView bool

	Light    core.Light
	Material core.Material
}

const (
	lightTheta  = 0.9
	lightRadius = 48
)

func DefaultScene(width, height int) Scene {
	return Scene{
		Width:      width,
		Height:     height,
		ClearColor: mgl32.Vec4{0, 0, 0, 1},

		Eye: mgl32.Vec3{0, 0, 1},
		At:  mgl32.Vec3{0, 0, 0},
		Up:  mgl32.Vec3{0, 1, 0},
		Projection: Ortho{
			Left: -3, Right: 3,
			Bottom: -3, Top: 3,
			Near: -10, Far: 110,
		},

		Plane:  Placement{Translate: mgl32.Vec3{0, 1, 0}, Scale: 1.3},
		Object: Placement{Translate: mgl32.Vec3{2.12, 1.2, 2.91}, Scale: 0.3},

		Light: core.Light{
			Position: mgl32.Vec4{
				float32(lightRadius * math.Sin(lightTheta)),
				10,
				float32(lightRadius * math.Cos(lightTheta)),
				0,
			},
			Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
			Diffuse:  mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
			Specular: mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
		},
		Material: core.Material{
			Ambient:   mgl32.Vec4{0.8, 0.0, 0.8, 1.0},
			Diffuse:   mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
			Specular:  mgl32.Vec4{0.0, 0.0, 0.0, 1.0},
			Shininess: 40.0,
		},
	}
}

// View is the camera transform.
func (s Scene) View() mgl32.Mat4 {
	return mgl32.LookAtV(s.Eye, s.At, s.Up)
}

func (s Scene) PlaneModelView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mul4(s.Plane.Mat4())
}

func (s Scene) ObjectModelView(view mgl32.Mat4) mgl32.Mat4 {
	if s.ObjectUsesView {
		return view.Mul4(s.Object.Mat4())
	}
	return s.Object.Mat4()
}
