package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ob6160/SphereMap/core"
	"github.com/ob6160/SphereMap/core/gltest"
	"github.com/ob6160/SphereMap/generators"
	"github.com/ob6160/SphereMap/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, gl *gltest.Recorder, scene Scene) *Renderer {
	src, err := shaders.Load("")
	require.NoError(t, err)
	r, err := New(gl, scene, src,
		core.NewPlane(core.PlaneCorners),
		generators.NewSphereMap(generators.DefaultLatitudeBands, generators.DefaultLongitudeBands, generators.DefaultRadius))
	require.NoError(t, err)
	return r
}

func TestNewSetsUpOnce(t *testing.T) {
	var gl = gltest.NewRecorder()
	var scene = DefaultScene(512, 512)
	var r = newTestRenderer(t, gl, scene)

	assert.Equal(t, [4]int32{0, 0, 512, 512}, gl.ViewportBox)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, gl.Clear4)
	assert.True(t, gl.Enabled[core.DepthTest])

	// One static upload each for positions and normals.
	assert.Equal(t, 2, gl.Count("BufferData"))
	var sizes []int
	for _, data := range gl.Buffers {
		sizes = append(sizes, len(data))
	}
	assert.ElementsMatch(t, []int{5406 * 4, 5406 * 3}, sizes)
	for _, c := range gl.Named("BufferData") {
		assert.Equal(t, core.StaticDraw, c.Args[2])
	}

	// vPosition reads vec4s and vNormal vec3s, both tightly packed floats.
	var pointers = gl.Named("VertexAttribPointer")
	require.Len(t, pointers, 2)
	var layout = make(map[uint32]int32)
	for _, c := range pointers {
		assert.Equal(t, core.Float, c.Args[2])
		assert.Equal(t, int32(0), c.Args[4])
		layout[c.Args[0].(uint32)] = c.Args[1].(int32)
	}
	assert.Equal(t, map[uint32]int32{0: 4, 1: 3}, layout)

	assert.Equal(t, scene.Projection.Mat4(), gl.Uniforms["projectionMatrix"])
	assert.Equal(t, scene.Light.Position, gl.Uniforms["lightPosition"])
	assert.Equal(t, r.Products.Ambient, gl.Uniforms["ambientProduct"])
	assert.Equal(t, scene.Light.Diffuse, gl.Uniforms["diffuseProduct"])
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, gl.Uniforms["specularProduct"])
	assert.Equal(t, float32(40), gl.Uniforms["shininess"])
	assert.Len(t, r.Uniforms, 7)
}

func TestRenderFrameDrawsPlaneThenObject(t *testing.T) {
	var gl = gltest.NewRecorder()
	var scene = DefaultScene(512, 512)
	var r = newTestRenderer(t, gl, scene)

	r.RenderFrame()

	assert.Equal(t, 1, gl.Clears)
	require.Len(t, gl.Draws, 2)

	var plane, object = gl.Draws[0], gl.Draws[1]
	assert.Equal(t, core.Triangles, plane.Mode)
	assert.Equal(t, int32(0), plane.First)
	assert.Equal(t, int32(6), plane.Count)
	assert.Equal(t, int32(6), object.First)
	assert.Equal(t, int32(5400), object.Count)

	var view = mgl32.LookAtV(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	var wantPlane = view.Mul4(mgl32.Translate3D(0, 1, 0)).Mul4(mgl32.Scale3D(1.3, 1.3, 1.3))
	assert.True(t, plane.ModelView.ApproxEqualThreshold(wantPlane, 1e-6))

	// The object skips the camera view.
	var wantObject = mgl32.Translate3D(2.12, 1.2, 2.91).Mul4(mgl32.Scale3D(0.3, 0.3, 0.3))
	assert.True(t, object.ModelView.ApproxEqualThreshold(wantObject, 1e-6))

	assert.Equal(t, Stats{PlaneVertices: 6, ObjectVertices: 5400, Frames: 1}, r.Stats())
}

func TestRenderFrameIsRepeatable(t *testing.T) {
	var gl = gltest.NewRecorder()
	var r = newTestRenderer(t, gl, DefaultScene(512, 512))

	for i := 0; i < 3; i++ {
		r.RenderFrame()
	}

	require.Len(t, gl.Draws, 6)
	assert.Equal(t, gl.Draws[0], gl.Draws[2])
	assert.Equal(t, gl.Draws[1], gl.Draws[5])
	assert.Equal(t, 2, gl.Count("BufferData"))
	assert.Equal(t, uint64(3), r.Stats().Frames)
}

func TestObjectUsesView(t *testing.T) {
	var gl = gltest.NewRecorder()
	var scene = DefaultScene(512, 512)
	scene.Eye = mgl32.Vec3{1, 2, 3}
	scene.ObjectUsesView = true
	var r = newTestRenderer(t, gl, scene)

	r.RenderFrame()

	require.Len(t, gl.Draws, 2)
	var want = scene.View().Mul4(scene.Object.Mat4())
	assert.True(t, gl.Draws[1].ModelView.ApproxEqualThreshold(want, 1e-6))
}

func TestNewFailsOnShaderError(t *testing.T) {
	var gl = gltest.NewRecorder()
	gl.FailLink = true

	src, err := shaders.Load("")
	require.NoError(t, err)
	r, err := New(gl, DefaultScene(512, 512), src,
		core.NewPlane(core.PlaneCorners), generators.NewSphereMap(2, 2, 1))

	assert.Nil(t, r)
	assert.True(t, errors.Is(err, core.ErrShader))
	assert.Equal(t, 0, gl.Count("BufferData"))
}

func TestDefaultSceneLight(t *testing.T) {
	var scene = DefaultScene(512, 512)
	assert.InDelta(t, 48*math.Sin(0.9), float64(scene.Light.Position.X()), 1e-4)
	assert.Equal(t, float32(10), scene.Light.Position.Y())
	assert.InDelta(t, 48*math.Cos(0.9), float64(scene.Light.Position.Z()), 1e-4)
	assert.Equal(t, float32(0), scene.Light.Position.W())

	var p = scene.Light.Products(scene.Material)
	assert.Equal(t, scene.Light.Diffuse, p.Diffuse)
}

func TestOrthoMatchesBounds(t *testing.T) {
	var m = DefaultScene(512, 512).Projection.Mat4()
	// x = 3 maps to the right clip edge, y = -3 to the bottom.
	assert.InDelta(t, 1.0, float64(m.Mul4x1(mgl32.Vec4{3, 0, 0, 1}).X()), 1e-6)
	assert.InDelta(t, -1.0, float64(m.Mul4x1(mgl32.Vec4{0, -3, 0, 1}).Y()), 1e-6)
}
