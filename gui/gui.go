package gui

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v2"
	"github.com/ob6160/SphereMap/core"
	"github.com/ob6160/SphereMap/gui/renderers"
)

type Options struct {
	Width, Height int
	Title         string
	VSync         bool
	Overlay       bool
}

// GUI owns the window, its GL context and the optional imgui overlay.
type GUI struct {
	window   *glfw.Window
	gl       glContext
	context  *imgui.Context
	renderer *renderers.OpenGL3
	io       imgui.IO
	time     float64
}

// NewGUI opens the window and makes its context current on the calling
// thread. Any failure wraps core.ErrContextUnavailable.
func NewGUI(opts Options) (*GUI, error) {
	runtime.LockOSThread()
	var g = new(GUI)

	window, err := g.initialiseGLFW(opts)
	if err != nil {
		return nil, err
	}
	g.window = window

	if opts.Overlay {
		g.context = imgui.CreateContext(nil)
		g.io = imgui.CurrentIO()
		renderer, err := renderers.NewOpenGL3(g.io, g.gl)
		if err != nil {
			g.context.Destroy()
			g.window.Destroy()
			glfw.Terminate()
			return nil, fmt.Errorf("overlay: %w", err)
		}
		g.renderer = renderer
	}
	return g, nil
}

func (g *GUI) initialiseGLFW(opts Options) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: initialising GLFW: %v", core.ErrContextUnavailable, err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: creating window: %v", core.ErrContextUnavailable, err)
	}
	window.MakeContextCurrent()
	// Initialize Glow
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: loading OpenGL: %v", core.ErrContextUnavailable, err)
	}
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	slog.Info("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return window, nil
}

// GL is the context's core.GL.
func (g *GUI) GL() core.GL {
	return g.gl
}

func (g *GUI) HasOverlay() bool {
	return g.renderer != nil
}

func (g *GUI) ShouldClose() bool {
	return g.window.ShouldClose()
}

func (g *GUI) PollEvents() {
	glfw.PollEvents()
}

func (g *GUI) SwapBuffers() {
	g.window.SwapBuffers()
}

func (g *GUI) FramebufferSize() (int, int) {
	return g.window.GetFramebufferSize()
}

// Overlay lays out one imgui frame with build and draws it on top of the
// scene. It does nothing when the overlay is off.
func (g *GUI) Overlay(build func()) {
	if g.renderer == nil {
		return
	}
	w, h := g.window.GetSize()
	g.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	currentTime := glfw.GetTime()
	if g.time > 0 {
		g.io.SetDeltaTime(float32(currentTime - g.time))
	}
	g.time = currentTime

	imgui.NewFrame()
	build()
	imgui.Render()

	fw, fh := g.window.GetFramebufferSize()
	g.renderer.Render(
		[2]float32{float32(w), float32(h)},
		[2]float32{float32(fw), float32(fh)},
		imgui.RenderedDrawData())
}

func (g *GUI) Dispose() {
	if g.renderer != nil {
		g.renderer.Dispose()
		g.context.Destroy()
	}
	g.window.Destroy()
	glfw.Terminate()
}
