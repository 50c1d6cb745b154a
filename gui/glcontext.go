package gui

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glContext is the go-gl implementation of core.GL. It is only valid on the
// thread that owns the current context.
type glContext struct{}

func (glContext) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (glContext) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (glContext) Clear(mask uint32)                  { gl.Clear(mask) }
func (glContext) Enable(capability uint32)           { gl.Enable(capability) }

func (glContext) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (glContext) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (glContext) BufferData(target uint32, data []float32, usage uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(target, len(data)*4, ptr, usage)
}

func (glContext) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (glContext) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (glContext) CreateShader(kind uint32) uint32 { return gl.CreateShader(kind) }

func (glContext) ShaderSource(shader uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (glContext) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (glContext) GetShaderiv(shader, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (glContext) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (glContext) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (glContext) CreateProgram() uint32               { return gl.CreateProgram() }
func (glContext) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (glContext) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (glContext) GetProgramiv(program, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (glContext) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (glContext) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (glContext) UseProgram(program uint32)    { gl.UseProgram(program) }

func (glContext) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (glContext) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (glContext) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (glContext) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (glContext) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (glContext) Uniform4fv(location int32, v mgl32.Vec4) {
	gl.Uniform4fv(location, 1, &v[0])
}

func (glContext) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (glContext) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }
