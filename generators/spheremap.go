package generators

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ob6160/SphereMap/core"
)

const (
	DefaultLatitudeBands  = 30
	DefaultLongitudeBands = 30
	DefaultRadius         = 1.0

	// MaxBands caps either band count so the vertex total stays well inside
	// what a draw call can address.
	MaxBands = 512
)

// SphereMap is a UV-sphere centred on the origin, split into latitude bands
// and longitude segments with two triangles per cell.
type SphereMap struct {
	LatitudeBands, LongitudeBands int
	Radius                        float32
}

func NewSphereMap(latitudeBands, longitudeBands int, radius float32) *SphereMap {
	return &SphereMap{latitudeBands, longitudeBands, radius}
}

func (s *SphereMap) Validate() error {
	if s.LatitudeBands < 1 || s.LongitudeBands < 1 {
		return fmt.Errorf("sphere needs at least one band, got %dx%d", s.LatitudeBands, s.LongitudeBands)
	}
	if s.LatitudeBands > MaxBands || s.LongitudeBands > MaxBands {
		return fmt.Errorf("sphere allows at most %d bands, got %dx%d", MaxBands, s.LatitudeBands, s.LongitudeBands)
	}
	if !(s.Radius > 0) || math.IsInf(float64(s.Radius), 1) {
		return fmt.Errorf("sphere radius must be positive and finite, got %v", s.Radius)
	}
	return nil
}

func (s *SphereMap) VertexCount() int {
	return s.LatitudeBands * s.LongitudeBands * 6
}

// point converts polar angle phi and azimuth theta to a position on the sphere.
func (s *SphereMap) point(sinPhi, cosPhi, sinTheta, cosTheta float64) mgl32.Vec4 {
	var r = float64(s.Radius)
	return mgl32.Vec4{
		float32(cosTheta * sinPhi * r),
		float32(cosPhi * r),
		float32(sinTheta * sinPhi * r),
		1.0,
	}
}

// Generate emits (p1, p2, p3) and (p2, p4, p3) for every cell. Normals are the
// raw positions; cells touching a pole keep their degenerate triangle.
func (s *SphereMap) Generate(buf *core.MeshBuffer) {
	var lat, long = float64(s.LatitudeBands), float64(s.LongitudeBands)

	for latNumber := 1; latNumber <= s.LatitudeBands; latNumber++ {
		var phi1 = math.Pi * float64(latNumber-1) / lat
		var phi2 = math.Pi * float64(latNumber) / lat
		var sinPhi1, cosPhi1 = math.Sincos(phi1)
		var sinPhi2, cosPhi2 = math.Sincos(phi2)

		for longNumber := 1; longNumber <= s.LongitudeBands; longNumber++ {
			var theta1 = 2 * math.Pi * float64(longNumber-1) / long
			var theta2 = 2 * math.Pi * float64(longNumber) / long
			var sinTheta1, cosTheta1 = math.Sincos(theta1)
			var sinTheta2, cosTheta2 = math.Sincos(theta2)

			var p1 = s.point(sinPhi1, cosPhi1, sinTheta1, cosTheta1)
			var p2 = s.point(sinPhi1, cosPhi1, sinTheta2, cosTheta2)
			var p3 = s.point(sinPhi2, cosPhi2, sinTheta1, cosTheta1)
			var p4 = s.point(sinPhi2, cosPhi2, sinTheta2, cosTheta2)

			for _, p := range [6]mgl32.Vec4{p1, p2, p3, p2, p4, p3} {
				buf.Push(p, p.Vec3())
			}
		}
	}
}
