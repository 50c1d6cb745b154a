// Package gltest provides an in-memory core.GL that records what it was asked
// to do, for tests that have no GPU.
package gltest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mirrors of the core enums; core's own tests import this package.
const (
	fragmentShader uint32 = 0x8B30
	vertexShader   uint32 = 0x8B31
)

type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type Draw struct {
	Mode         uint32
	First, Count int32
	ModelView    mgl32.Mat4
}

// Recorder implements core.GL.
type Recorder struct {
	Calls []Call

	// Failure injection
	FailVertex, FailFragment, FailLink bool

	Buffers     map[uint32][]float32
	Uniforms    map[string]interface{}
	Attributes  map[string]int32
	Enabled     map[uint32]bool
	Draws       []Draw
	Clears      int
	ViewportBox [4]int32
	Clear4      [4]float32
	Program     uint32

	nextID        uint32
	boundBuffer   uint32
	shaderKinds   map[uint32]uint32
	locationNames map[int32]string
	uniformLocs   map[string]int32
}

func NewRecorder() *Recorder {
	return &Recorder{
		Buffers:       make(map[uint32][]float32),
		Uniforms:      make(map[string]interface{}),
		Attributes:    map[string]int32{"vPosition": 0, "vNormal": 1},
		Enabled:       make(map[uint32]bool),
		shaderKinds:   make(map[uint32]uint32),
		locationNames: make(map[int32]string),
		uniformLocs:   make(map[string]int32),
	}
}

func (r *Recorder) record(name string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	var n = 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Named returns the recorded calls with the given name, in order.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
	r.ViewportBox = [4]int32{x, y, width, height}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
	r.Clear4 = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear", mask)
	r.Clears++
}

func (r *Recorder) Enable(capability uint32) {
	r.record("Enable", capability)
	r.Enabled[capability] = true
}

func (r *Recorder) GenBuffer() uint32 {
	r.record("GenBuffer")
	return r.id()
}

func (r *Recorder) BindBuffer(target, buffer uint32) {
	r.record("BindBuffer", target, buffer)
	r.boundBuffer = buffer
}

func (r *Recorder) BufferData(target uint32, data []float32, usage uint32) {
	r.record("BufferData", target, len(data), usage)
	var copied = make([]float32, len(data))
	copy(copied, data)
	r.Buffers[r.boundBuffer] = copied
}

func (r *Recorder) GenVertexArray() uint32 {
	r.record("GenVertexArray")
	return r.id()
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.record("BindVertexArray", vao)
}

func (r *Recorder) CreateShader(kind uint32) uint32 {
	r.record("CreateShader", kind)
	var id = r.id()
	r.shaderKinds[id] = kind
	return id
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	r.record("ShaderSource", shader, len(source))
}

func (r *Recorder) CompileShader(shader uint32) {
	r.record("CompileShader", shader)
}

func (r *Recorder) GetShaderiv(shader, pname uint32, params *int32) {
	r.record("GetShaderiv", shader, pname)
	*params = 1
	switch r.shaderKinds[shader] {
	case vertexShader:
		if r.FailVertex {
			*params = 0
		}
	case fragmentShader:
		if r.FailFragment {
			*params = 0
		}
	}
}

func (r *Recorder) GetShaderInfoLog(shader uint32) string {
	r.record("GetShaderInfoLog", shader)
	return fmt.Sprintf("0:1(1): error: shader %d rejected", shader)
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader", shader)
}

func (r *Recorder) CreateProgram() uint32 {
	r.record("CreateProgram")
	return r.id()
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader", program, shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram", program)
}

func (r *Recorder) GetProgramiv(program, pname uint32, params *int32) {
	r.record("GetProgramiv", program, pname)
	*params = 1
	if r.FailLink {
		*params = 0
	}
}

func (r *Recorder) GetProgramInfoLog(program uint32) string {
	r.record("GetProgramInfoLog", program)
	return "error: vNormal not written by vertex stage"
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
	r.Program = program
}

func (r *Recorder) GetAttribLocation(program uint32, name string) int32 {
	r.record("GetAttribLocation", program, name)
	if loc, ok := r.Attributes[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.record("GetUniformLocation", program, name)
	if loc, ok := r.uniformLocs[name]; ok {
		return loc
	}
	var loc = int32(len(r.uniformLocs))
	r.uniformLocs[name] = loc
	r.locationNames[loc] = name
	return loc
}

func (r *Recorder) setUniform(location int32, value interface{}) {
	if name, ok := r.locationNames[location]; ok {
		r.Uniforms[name] = value
	}
}

func (r *Recorder) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	r.record("UniformMatrix4fv", location)
	r.setUniform(location, m)
}

func (r *Recorder) Uniform4fv(location int32, v mgl32.Vec4) {
	r.record("Uniform4fv", location)
	r.setUniform(location, v)
}

func (r *Recorder) Uniform1f(location int32, v float32) {
	r.record("Uniform1f", location)
	r.setUniform(location, v)
}

// DrawArrays also snapshots the model-view uniform current at draw time.
func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.record("DrawArrays", mode, first, count)
	var mv, _ = r.Uniforms["modelViewMatrix"].(mgl32.Mat4)
	r.Draws = append(r.Draws, Draw{Mode: mode, First: first, Count: count, ModelView: mv})
}
