package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/datalens/common"
	"github.com/Carmen-Shannon/datalens/engine/camera"
	"github.com/Carmen-Shannon/datalens/engine/config"
	"github.com/Carmen-Shannon/datalens/engine/input"
	"github.com/Carmen-Shannon/datalens/engine/inspector"
	"github.com/Carmen-Shannon/datalens/engine/profiler"
	"github.com/Carmen-Shannon/datalens/engine/renderer"
	"github.com/Carmen-Shannon/datalens/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// ConfigSource delivers reloaded configurations to the frame loop. *config.Reloader
// satisfies it.
type ConfigSource interface {
	// Poll returns the newest configuration since the last call, or nil. Must not block.
	Poll() *config.Config

	// Close stops the source.
	Close() error
}

// engine implements the Engine interface.
// Everything it owns is driven from the goroutine that calls Run, which must be the
// thread the window was created on.
type engine struct {
	running     bool
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window     window.Window
	renderer   renderer.Renderer
	controller camera.CameraController
	camera     camera.Camera
	input      *input.Handler
	inspector  inspector.Inspector

	profiler         *profiler.Profiler
	profilingEnabled bool

	configSource ConfigSource
	inputOptions []input.HandlerOption
	focus        *mgl32.Vec3

	renderCallback   func(deltaTime float32)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine runs the viewer: it owns the window, renderer, camera, input context, inspector
// state and frame clock, and sequences them once per frame.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, nil if none was supplied
	Window() window.Window

	// Renderer returns the renderer frames are drawn with.
	Renderer() renderer.Renderer

	// Camera returns the projection camera fed by the controller.
	Camera() camera.Camera

	// Controller returns the camera controller.
	Controller() camera.CameraController

	// Input returns the input context bound to the window.
	Input() *input.Handler

	// Inspector returns the inspector state.
	Inspector() inspector.Inspector

	// Profiler returns the frame clock.
	Profiler() *profiler.Profiler

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderCallback registers the function called inside each frame's render pass,
	// after the clear and before the frame is submitted.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// ApplyConfig applies the runtime-tunable parts of cfg: camera limits, speeds and clip
	// planes, the input section (bindings, toggle and boost keys, boost amount, pitch
	// constraint), background color and profiler logging. The camera pose and the
	// interaction mode are kept.
	//
	// Parameters:
	//   - cfg: a validated configuration
	ApplyConfig(cfg *config.Config)

	// ResetCamera re-seats the camera on the current focus point.
	ResetCamera()

	// Run polls window events and renders frames until the window closes or Quit is called.
	// Without a window it returns immediately.
	Run()

	// Quit stops the frame loop. Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Close releases the config source, renderer and window.
	//
	// Returns:
	//   - error: the first error encountered while closing
	Close() error
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the provided options. A camera controller, camera,
// inspector and profiler are created with defaults when not supplied. When a window is
// supplied the input handler is bound to it and its callbacks are wired.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel: make(chan struct{}),
		profiler:    profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.controller == nil {
		e.controller = camera.NewCameraController()
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.camera.Controller() == nil {
		e.camera.SetController(e.controller)
	}
	if e.inspector == nil {
		e.inspector = inspector.NewInspector()
	}
	e.profiler.SetLogging(e.profilingEnabled)

	var cursor input.Cursor
	if e.window != nil {
		cursor = e.window
		e.camera.SetAspect(e.window.AspectRatio())
	}
	e.input = input.NewHandler(e.controller, cursor, e.inputOptions...)

	if e.focus != nil {
		e.inspector.ResetCamera(e.controller, *e.focus)
	}
	if e.renderer != nil {
		e.renderer.SetWireframe(e.inspector.Wireframe())
	}

	if e.window != nil {
		e.bindWindow()
	}

	return e
}

// bindWindow routes window events into the input context, the inspector shortcuts and
// the resize path.
func (e *engine) bindWindow() {
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		e.input.OnKey(keyCode, true)
		switch keyCode {
		case common.KeyR:
			e.ResetCamera()
		case common.KeyF:
			e.inspector.ToggleWireframe()
		}
	})
	e.window.SetKeyUpCallback(func(keyCode uint32) {
		e.input.OnKey(keyCode, false)
	})
	e.window.SetMouseButtonCallback(e.input.OnMouseButton)
	e.window.SetCursorPosCallback(e.input.OnCursorPos)
	e.window.SetScrollCallback(e.input.OnScroll)
	e.window.SetResizeCallback(func(width, height int) {
		if e.renderer != nil {
			e.renderer.Resize(width, height)
		}
		if width > 0 && height > 0 {
			e.camera.SetAspect(float32(width) / float32(height))
		}
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Input() *input.Handler {
	return e.input
}

func (e *engine) Inspector() inspector.Inspector {
	return e.inspector
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
	e.profiler.SetLogging(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
	e.profiler.SetLogging(false)
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	e.controller.SetLimits(cfg.Limits())
	if cfg.Camera.MovementSpeed > 0 {
		e.controller.SetMovementSpeed(cfg.Camera.MovementSpeed)
	}
	if cfg.Camera.MouseSensitivity > 0 {
		e.controller.SetMouseSensitivity(cfg.Camera.MouseSensitivity)
	}
	e.camera.SetNear(cfg.Camera.Near)
	e.camera.SetFar(cfg.Camera.Far)

	if _, err := cfg.Bindings(); err != nil {
		log.Printf("[Engine] keeping key bindings: %v", err)
	}
	e.input.Apply(cfg.InputOptions()...)

	e.inspector.SetBackgroundColor(cfg.BackgroundColor())
	if cfg.Profiler.Enabled {
		e.EnableProfiler()
	} else {
		e.DisableProfiler()
	}
}

func (e *engine) ResetCamera() {
	focus := mgl32.Vec3{}
	if e.focus != nil {
		focus = *e.focus
	}
	e.inspector.ResetCamera(e.controller, focus)
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] no window, nothing to run")
		return
	}
	e.running = true
	defer func() { e.running = false }()

	e.profiler.Tick()
	for e.window.IsRunning() {
		select {
		case <-e.quitChannel:
			return
		default:
		}

		frameStart := time.Now()
		if !e.window.PollEvents() {
			return
		}
		e.frame(e.profiler.Tick())

		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

// frame advances the viewer by one frame of deltaTime seconds: pending config, held input,
// camera smoothing, inspector animation, matrices, then the render pass.
func (e *engine) frame(deltaTime float32) {
	if e.configSource != nil {
		if cfg := e.configSource.Poll(); cfg != nil {
			e.ApplyConfig(cfg)
			log.Printf("[Engine] applied reloaded configuration")
		}
	}

	e.input.Process(deltaTime)
	e.controller.Update(deltaTime)
	e.inspector.Advance(deltaTime, e.input.CrosshairTarget())
	e.camera.Update(e.input.Mode())

	if e.renderer == nil {
		return
	}
	e.renderer.SetWireframe(e.inspector.Wireframe())
	if err := e.renderer.BeginFrame(e.inspector.BackgroundColor()); err != nil {
		log.Printf("[Engine] skipping frame: %v", err)
		return
	}
	if e.renderCallback != nil {
		e.renderCallback(deltaTime)
	}
	e.renderer.EndFrame()
	e.renderer.Present()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Close() error {
	e.Quit()
	var firstErr error
	if e.configSource != nil {
		if err := e.configSource.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if e.renderer != nil {
		e.renderer.Release()
	}
	if e.window != nil {
		if err := e.window.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
