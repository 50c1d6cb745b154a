package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshBuffer holds positions and normals paired by index. Every three
// consecutive entries form one triangle.
type MeshBuffer struct {
	Vertices []mgl32.Vec4
	Normals  []mgl32.Vec3
}

// Range addresses a run of vertices inside a MeshBuffer.
type Range struct {
	First, Count int
}

func NewMeshBuffer(capacity int) *MeshBuffer {
	return &MeshBuffer{
		Vertices: make([]mgl32.Vec4, 0, capacity),
		Normals:  make([]mgl32.Vec3, 0, capacity),
	}
}

func (b *MeshBuffer) Push(vertex mgl32.Vec4, normal mgl32.Vec3) {
	b.Vertices = append(b.Vertices, vertex)
	b.Normals = append(b.Normals, normal)
}

func (b *MeshBuffer) Len() int {
	return len(b.Vertices)
}

// FlatVertices packs the positions as x, y, z, w tuples.
func (b *MeshBuffer) FlatVertices() []float32 {
	var out = make([]float32, 0, len(b.Vertices)*4)
	for _, v := range b.Vertices {
		out = append(out, v[0], v[1], v[2], v[3])
	}
	return out
}

// FlatNormals packs the normals as x, y, z tuples.
func (b *MeshBuffer) FlatNormals() []float32 {
	var out = make([]float32, 0, len(b.Normals)*3)
	for _, n := range b.Normals {
		out = append(out, n[0], n[1], n[2])
	}
	return out
}

// Mesh is a MeshBuffer living on the GPU: one vertex array with a static
// position buffer and a static normal buffer.
type Mesh struct {
	Count      int
	RenderMode uint32
	vao        uint32
	vbo, nbo   uint32
	gl         GL
}

// Attribute names the shader inputs a Mesh feeds.
type Attributes struct {
	Position, Normal string
}

func NewMesh(gl GL, program uint32, buf *MeshBuffer, attrs Attributes) (*Mesh, error) {
	if len(buf.Vertices) != len(buf.Normals) {
		return nil, fmt.Errorf("mesh has %d vertices but %d normals", len(buf.Vertices), len(buf.Normals))
	}
	var m = &Mesh{Count: buf.Len(), RenderMode: Triangles, gl: gl}
	m.Construct(program, buf, attrs)
	return m, nil
}

func (m *Mesh) Construct(program uint32, buf *MeshBuffer, attrs Attributes) {
	var gl = m.gl

	m.vao = gl.GenVertexArray()
	gl.BindVertexArray(m.vao)

	// Positions
	m.vbo = gl.GenBuffer()
	gl.BindBuffer(ArrayBuffer, m.vbo)
	gl.BufferData(ArrayBuffer, buf.FlatVertices(), StaticDraw)
	if loc := gl.GetAttribLocation(program, attrs.Position); loc >= 0 {
		gl.VertexAttribPointer(uint32(loc), 4, Float, false, 0, 0)
		gl.EnableVertexAttribArray(uint32(loc))
	}

	// Normals
	m.nbo = gl.GenBuffer()
	gl.BindBuffer(ArrayBuffer, m.nbo)
	gl.BufferData(ArrayBuffer, buf.FlatNormals(), StaticDraw)
	if loc := gl.GetAttribLocation(program, attrs.Normal); loc >= 0 {
		gl.VertexAttribPointer(uint32(loc), 3, Float, false, 0, 0)
		gl.EnableVertexAttribArray(uint32(loc))
	}
}

func (m *Mesh) Draw(r Range) {
	m.gl.BindVertexArray(m.vao)
	m.gl.DrawArrays(m.RenderMode, int32(r.First), int32(r.Count))
}
