package core

import (
	"errors"
	"fmt"
)

// ErrShader matches every *ShaderError via errors.Is.
var ErrShader = errors.New("shader program failed")

// ShaderError carries the driver's info log for a failed compile or link.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("program linking failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

func (e *ShaderError) Is(target error) bool {
	return target == ErrShader
}

func compileShader(gl GL, source string, kind uint32, stage string) (uint32, error) {
	var shader = gl.CreateShader(kind)
	gl.ShaderSource(shader, source)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, CompileStatus, &status)
	if status == 0 {
		log := gl.GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: log}
	}
	return shader, nil
}

// NewProgram compiles and links a vertex/fragment pair.
func NewProgram(gl GL, vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl, vertexSource, VertexShader, "vertex")
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(gl, fragmentSource, FragmentShader, "fragment")
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	var program = gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Shader objects are no longer needed once the program is linked (or not).
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, LinkStatus, &status)
	if status == 0 {
		log := gl.GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		return 0, &ShaderError{Stage: "link", Log: log}
	}
	return program, nil
}
