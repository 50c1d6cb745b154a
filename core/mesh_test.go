package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ob6160/SphereMap/core/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAttributes = Attributes{Position: "vPosition", Normal: "vNormal"}

func TestMeshBufferFlatten(t *testing.T) {
	var buf = NewMeshBuffer(2)
	assert.Equal(t, 0, buf.Len())
	buf.Push(mgl32.Vec4{1, 2, 3, 1}, mgl32.Vec3{4, 5, 6})
	buf.Push(mgl32.Vec4{7, 8, 9, 1}, mgl32.Vec3{10, 11, 12})

	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, []float32{1, 2, 3, 1, 7, 8, 9, 1}, buf.FlatVertices())
	assert.Equal(t, []float32{4, 5, 6, 10, 11, 12}, buf.FlatNormals())
}

func TestNewMeshUploadsOnce(t *testing.T) {
	var gl = gltest.NewRecorder()
	var buf MeshBuffer
	NewPlane(PlaneCorners).Generate(&buf)

	mesh, err := NewMesh(gl, 1, &buf, testAttributes)
	require.NoError(t, err)

	assert.Equal(t, 6, mesh.Count)
	assert.Equal(t, 2, gl.Count("BufferData"))
	assert.Len(t, gl.Buffers, 2)
	assert.Equal(t, buf.FlatVertices(), gl.Buffers[mesh.vbo])
	assert.Equal(t, buf.FlatNormals(), gl.Buffers[mesh.nbo])
	assert.Equal(t, 2, gl.Count("EnableVertexAttribArray"))

	// Both buffers are static; positions are vec4, normals vec3.
	for _, c := range gl.Named("BufferData") {
		assert.Equal(t, StaticDraw, c.Args[2])
	}
	var pointers = gl.Named("VertexAttribPointer")
	require.Len(t, pointers, 2)
	assert.Equal(t, []interface{}{uint32(0), int32(4), Float, false, int32(0), uintptr(0)}, pointers[0].Args)
	assert.Equal(t, []interface{}{uint32(1), int32(3), Float, false, int32(0), uintptr(0)}, pointers[1].Args)

	mesh.Draw(Range{First: 0, Count: 6})
	require.Len(t, gl.Draws, 1)
	assert.Equal(t, Triangles, gl.Draws[0].Mode)
	assert.Equal(t, int32(6), gl.Draws[0].Count)
	assert.Equal(t, 2, gl.Count("BufferData"))
}

func TestNewMeshSkipsMissingAttributes(t *testing.T) {
	var gl = gltest.NewRecorder()
	delete(gl.Attributes, "vNormal")
	var buf MeshBuffer
	NewPlane(PlaneCorners).Generate(&buf)

	_, err := NewMesh(gl, 1, &buf, testAttributes)
	require.NoError(t, err)
	assert.Equal(t, 1, gl.Count("EnableVertexAttribArray"))
}

func TestNewMeshRejectsUnpairedBuffer(t *testing.T) {
	var buf = MeshBuffer{Vertices: []mgl32.Vec4{{0, 0, 0, 1}}}
	_, err := NewMesh(gltest.NewRecorder(), 1, &buf, testAttributes)
	assert.Error(t, err)
}
