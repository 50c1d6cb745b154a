package core

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// OpenGL enum values used by the demo. They match the GL headers so a backend
// can pass them straight through.
const (
	Triangles      uint32 = 0x0004
	DepthBufferBit uint32 = 0x0100
	ColorBufferBit uint32 = 0x4000
	DepthTest      uint32 = 0x0B71
	Float          uint32 = 0x1406
	ArrayBuffer    uint32 = 0x8892
	StaticDraw     uint32 = 0x88E4
	FragmentShader uint32 = 0x8B30
	VertexShader   uint32 = 0x8B31
	CompileStatus  uint32 = 0x8B81
	LinkStatus     uint32 = 0x8B82
)

// ErrContextUnavailable is returned when no rendering context could be created.
var ErrContextUnavailable = errors.New("rendering context unavailable")

// GL is the slice of OpenGL the renderer talks to. The window layer provides the
// real implementation; tests use a recorder.
type GL interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	GenVertexArray() uint32
	BindVertexArray(vao uint32)

	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32, params *int32)
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, m mgl32.Mat4)
	Uniform4fv(location int32, v mgl32.Vec4)
	Uniform1f(location int32, v float32)

	DrawArrays(mode uint32, first, count int32)
}
