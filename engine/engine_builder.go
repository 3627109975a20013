package engine

import (
	"time"

	"github.com/Carmen-Shannon/datalens/engine/camera"
	"github.com/Carmen-Shannon/datalens/engine/input"
	"github.com/Carmen-Shannon/datalens/engine/inspector"
	"github.com/Carmen-Shannon/datalens/engine/profiler"
	"github.com/Carmen-Shannon/datalens/engine/renderer"
	"github.com/Carmen-Shannon/datalens/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default frame clock.
//
// Parameters:
//   - p: the profiler to tick each frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window the engine polls and binds input to.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer frames are cleared and presented with.
//
// Parameters:
//   - r: a Renderer created for the engine's window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithController sets the camera controller driven by input.
//
// Parameters:
//   - cc: the camera controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(cc camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = cc
	}
}

// WithCamera sets the projection camera. If it has no controller the engine's controller
// is attached.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithInspector sets the inspector state.
//
// Parameters:
//   - i: the inspector
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInspector(i inspector.Inspector) EngineBuilderOption {
	return func(e *engine) {
		e.inspector = i
	}
}

// WithInputOptions passes options through to the input handler the engine creates.
//
// Parameters:
//   - options: input handler options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInputOptions(options ...input.HandlerOption) EngineBuilderOption {
	return func(e *engine) {
		e.inputOptions = append(e.inputOptions, options...)
	}
}

// WithConfigSource sets where reloaded configurations come from. The engine applies them
// at the start of the next frame and closes the source on Close.
//
// Parameters:
//   - source: a ConfigSource such as *config.Reloader
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfigSource(source ConfigSource) EngineBuilderOption {
	return func(e *engine) {
		e.configSource = source
	}
}

// WithFocus sets the point the camera is reset onto, and resets it there at construction.
//
// Parameters:
//   - focus: the model's focus point in world space
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFocus(focus mgl32.Vec3) EngineBuilderOption {
	return func(e *engine) {
		e.focus = &focus
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
