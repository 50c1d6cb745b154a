package core

import "github.com/go-gl/mathgl/mgl32"

// PlaneCorners is the fixed quad of the scene, two triangles sharing the
// edge between corners 0 and 2.
var PlaneCorners = [6]mgl32.Vec4{
	{-1.15, -1.75, 1.25, 1.0},
	{-1.80, 0.5, 1.25, 1.0},
	{-0.45, 0.75, -0.45, 1.0},
	{-1.15, -1.75, 1.25, 1.0},
	{-0.45, 0.75, -0.45, 1.0},
	{0.05, -1.35, -0.45, 1.0},
}

// Plane is a flat shaded quad made of six explicit corners.
type Plane struct {
	Corners [6]mgl32.Vec4
}

func NewPlane(corners [6]mgl32.Vec4) *Plane {
	return &Plane{Corners: corners}
}

// Normal is cross(v1 - v0, v1 - v2), left unnormalized.
func (p *Plane) Normal() mgl32.Vec3 {
	var t1 = p.Corners[1].Sub(p.Corners[0]).Vec3()
	var t2 = p.Corners[1].Sub(p.Corners[2]).Vec3()
	return t1.Cross(t2)
}

func (p *Plane) VertexCount() int {
	return len(p.Corners)
}

// Generate appends the corners in order, all sharing one normal.
func (p *Plane) Generate(buf *MeshBuffer) {
	var normal = p.Normal()
	for _, corner := range p.Corners {
		buf.Push(corner, normal)
	}
}
