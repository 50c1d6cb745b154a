package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ob6160/SphereMap/core"
	"github.com/ob6160/SphereMap/generators"
	"github.com/ob6160/SphereMap/shaders"
)

// Shader interface names.
const (
	attribPosition = "vPosition"
	attribNormal   = "vNormal"

	uniformProjection = "projectionMatrix"
	uniformModelView  = "modelViewMatrix"
	uniformLight      = "lightPosition"
	uniformAmbient    = "ambientProduct"
	uniformDiffuse    = "diffuseProduct"
	uniformSpecular   = "specularProduct"
	uniformShininess  = "shininess"
)

// Renderer owns the program, the uploaded geometry and the scene. Everything
// is written once by New; RenderFrame only reads it.
type Renderer struct {
	gl       core.GL
	Program  uint32
	Uniforms map[string]int32 // name -> location
	Scene    Scene
	Products core.Products

	mesh   *core.Mesh
	plane  core.Range
	object core.Range
	frames uint64
}

// Stats describes what the renderer draws.
type Stats struct {
	PlaneVertices, ObjectVertices int
	Frames                        uint64
}

// New performs all one-time setup: GL state, geometry upload, program and the
// uniforms that never change between frames.
func New(gl core.GL, scene Scene, src shaders.Sources, plane *core.Plane, object generators.Generator) (*Renderer, error) {
	gl.Viewport(0, 0, int32(scene.Width), int32(scene.Height))
	gl.ClearColor(scene.ClearColor.Elem())
	gl.Enable(core.DepthTest)

	program, err := core.NewProgram(gl, src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}
	gl.UseProgram(program)

	buf, ranges := generators.Build(plane, object)
	mesh, err := core.NewMesh(gl, program, buf, core.Attributes{Position: attribPosition, Normal: attribNormal})
	if err != nil {
		return nil, fmt.Errorf("uploading scene geometry: %w", err)
	}

	var r = &Renderer{
		gl:       gl,
		Program:  program,
		Uniforms: make(map[string]int32),
		Scene:    scene,
		Products: scene.Light.Products(scene.Material),
		mesh:     mesh,
		plane:    ranges[0],
		object:   ranges[1],
	}
	r.setupUniforms()
	return r, nil
}

func (r *Renderer) setupUniforms() {
	var gl = r.gl
	for _, name := range []string{
		uniformProjection, uniformModelView, uniformLight,
		uniformAmbient, uniformDiffuse, uniformSpecular, uniformShininess,
	} {
		r.Uniforms[name] = gl.GetUniformLocation(r.Program, name)
	}

	gl.UniformMatrix4fv(r.Uniforms[uniformProjection], r.Scene.Projection.Mat4())
	gl.Uniform4fv(r.Uniforms[uniformLight], r.Scene.Light.Position)
	gl.Uniform4fv(r.Uniforms[uniformAmbient], r.Products.Ambient)
	gl.Uniform4fv(r.Uniforms[uniformDiffuse], r.Products.Diffuse)
	gl.Uniform4fv(r.Uniforms[uniformSpecular], r.Products.Specular)
	gl.Uniform1f(r.Uniforms[uniformShininess], r.Scene.Material.Shininess)
}

// RenderFrame draws the plane and then the object. Scheduling the next frame
// is left to the caller.
func (r *Renderer) RenderFrame() {
	var gl = r.gl
	gl.UseProgram(r.Program)
	gl.Clear(core.ColorBufferBit | core.DepthBufferBit)

	var view = r.Scene.View()

	r.draw(r.Scene.PlaneModelView(view), r.plane)
	r.draw(r.Scene.ObjectModelView(view), r.object)

	r.frames++
}

func (r *Renderer) draw(modelView mgl32.Mat4, rng core.Range) {
	r.gl.UniformMatrix4fv(r.Uniforms[uniformModelView], modelView)
	r.mesh.Draw(rng)
}

func (r *Renderer) Stats() Stats {
	return Stats{
		PlaneVertices:  r.plane.Count,
		ObjectVertices: r.object.Count,
		Frames:         r.frames,
	}
}
