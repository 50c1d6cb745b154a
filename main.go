package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/ob6160/SphereMap/config"
	"github.com/ob6160/SphereMap/core"
	"github.com/ob6160/SphereMap/gui"
	"github.com/ob6160/SphereMap/renderer"
	"github.com/ob6160/SphereMap/shaders"
	"github.com/ob6160/SphereMap/utils"
	"github.com/xlab/closer"
)

func init() {
	// GLFW must run on the process's main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	overlay := flag.Bool("overlay", false, "show the frame statistics overlay")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("loading configuration", err)
	}
	if *overlay {
		cfg.Overlay = true
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		fatal("configuring logging", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	src, err := shaders.Load(cfg.ShaderDir)
	if err != nil {
		fatal("loading shaders", err)
	}

	g, err := gui.NewGUI(gui.Options{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.Window.Title,
		VSync:   cfg.Window.VSync,
		Overlay: cfg.Overlay,
	})
	if err != nil {
		fatal("creating rendering context", err)
	}

	// The framebuffer can be larger than the window on high-DPI displays.
	width, height := g.FramebufferSize()
	var scene = renderer.DefaultScene(width, height)
	scene.ObjectUsesView = cfg.ObjectUsesView

	r, err := renderer.New(g.GL(), scene, src, core.NewPlane(core.PlaneCorners), cfg.SphereMap())
	if err != nil {
		g.Dispose()
		fatal("initialising renderer", err)
	}
	var stats = r.Stats()
	slog.Info("scene uploaded", "plane_vertices", stats.PlaneVertices, "sphere_vertices", stats.ObjectVertices)

	run(g, r)
}

func run(g *gui.GUI, r *renderer.Renderer) {
	exitC := make(chan struct{}, 1)
	doneC := make(chan struct{}, 1)
	closer.Bind(func() {
		close(exitC)
		<-doneC
	})
	defer close(doneC)
	defer g.Dispose()

	var counter = utils.NewFrameCounter(time.Second, time.Now())
	for {
		select {
		case <-exitC:
			return
		default:
		}
		if g.ShouldClose() {
			return
		}

		g.PollEvents()
		r.RenderFrame()

		if counter.Tick(time.Now()) {
			slog.Debug("frame rate", "fps", counter.FPS(), "frames", counter.Total())
		}
		if g.HasOverlay() {
			var stats = r.Stats()
			g.Overlay(gui.SceneInfo{
				FPS:            counter.FPS(),
				Frames:         stats.Frames,
				PlaneVertices:  stats.PlaneVertices,
				ObjectVertices: stats.ObjectVertices,
				ObjectUsesView: r.Scene.ObjectUsesView,
			}.Build)
		}
		g.SwapBuffers()
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
