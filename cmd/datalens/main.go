package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/datalens/engine"
	"github.com/Carmen-Shannon/datalens/engine/camera"
	"github.com/Carmen-Shannon/datalens/engine/config"
	"github.com/Carmen-Shannon/datalens/engine/inspector"
	"github.com/Carmen-Shannon/datalens/engine/profiler"
	"github.com/Carmen-Shannon/datalens/engine/renderer"
	"github.com/Carmen-Shannon/datalens/engine/window"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config overlaying the built-in defaults")
	watch := flag.Bool("watch", false, "reload -config when the file changes")
	profile := flag.Bool("profile", false, "log frame statistics")
	backend := flag.String("backend", "", "renderer backend: wgpu or gl (overrides the config)")
	frameLimit := flag.Float64("fps", 0, "frame rate cap, 0 for uncapped")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Datalens] %v", err)
		}
		cfg = loaded
	}
	if *backend != "" {
		cfg.Renderer.Backend = *backend
	}
	if *profile {
		cfg.Profiler.Enabled = true
	}

	backendType, err := renderer.ParseBackendType(cfg.Renderer.Backend)
	if err != nil {
		log.Fatalf("[Datalens] %v", err)
	}
	clientAPI := window.ClientAPIWebGPU
	if backendType == renderer.BackendTypeOpenGL {
		clientAPI = window.ClientAPIOpenGL
	}

	// ── Window ──────────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithMinWidth(cfg.Window.MinWidth),
		window.WithMinHeight(cfg.Window.MinHeight),
		window.WithClientAPI(clientAPI),
		window.WithVSync(cfg.Renderer.VSync),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if cfg.Renderer.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(backendType, win,
		renderer.WithMSAA(renderer.MSAAFromCount(cfg.Renderer.MSAA)),
		renderer.WithPresentMode(presentMode),
	)

	// ── Camera + Inspector ──────────────────────────────────────────────
	ctrl := camera.NewCameraController(cfg.CameraOptions()...)
	cam := camera.NewCamera(append(cfg.ProjectionOptions(), camera.WithController(ctrl))...)
	insp := inspector.NewInspector(cfg.InspectorOptions()...)

	opts := []engine.EngineBuilderOption{
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithController(ctrl),
		engine.WithCamera(cam),
		engine.WithInspector(insp),
		engine.WithProfiler(profiler.NewProfiler(cfg.ProfilerOptions()...)),
		engine.WithProfiling(cfg.Profiler.Enabled),
		engine.WithInputOptions(cfg.InputOptions()...),
		engine.WithFocus(cfg.Focus()),
		engine.WithRenderFrameLimit(*frameLimit),
	}

	if *watch {
		if *configPath == "" {
			log.Printf("[Datalens] -watch ignored without -config")
		} else {
			reloader, err := config.WatchFile(*configPath)
			if err != nil {
				log.Fatalf("[Datalens] %v", err)
			}
			opts = append(opts, engine.WithConfigSource(reloader))
		}
	}

	eng := engine.NewEngine(opts...)
	defer func() {
		if err := eng.Close(); err != nil {
			log.Printf("[Datalens] close: %v", err)
		}
	}()

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  Datalens                                            ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Orbit:  LMB drag=Rotate  RMB drag=Pan  Scroll=Dolly ║")
	fmt.Println("║  Fly:    WASD=Move  E/Q=Up/Down  Shift=Boost         ║")
	fmt.Println("║          Scroll=Zoom                                 ║")
	fmt.Println("║  `=Toggle mode  R=Reset camera  F=Wireframe  Esc=Quit║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	log.Printf("[Datalens] %s backend, %d model(s), shader %s",
		r.BackendType(), len(insp.Models()), insp.Shader())
	eng.Run()
}
