package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/datalens/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	wireframe   bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer clears and presents frames for the viewer. A frame is BeginFrame, any drawing,
// EndFrame, then Present. The Renderer hides which graphics API backs it.
type Renderer interface {
	// BeginFrame acquires the frame target and clears it.
	//
	// Parameters:
	//   - clear: background color, RGB in [0,1]
	//
	// Returns:
	//   - error: an error if the frame target could not be acquired
	BeginFrame(clear mgl32.Vec3) error

	// EndFrame finishes the current frame and submits it to the GPU.
	// Does not present; call Present after EndFrame.
	EndFrame()

	// Present presents the finished frame to the display.
	// Must be called once per frame after EndFrame.
	Present()

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetWireframe switches between filled and wireframe rasterization.
	//
	// Parameters:
	//   - enabled: draw edges only
	SetWireframe(enabled bool)

	// Wireframe reports whether wireframe rasterization is on.
	Wireframe() bool

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// BackendType returns the graphics API in use.
	BackendType() RendererBackendType

	// Release frees the backend's GPU objects.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for window using the given backend. The window must
// have been created with the matching client API: ClientAPIWebGPU for BackendTypeWGPU,
// ClientAPIOpenGL for BackendTypeOpenGL. Panics if the backend cannot be initialized.
//
// Parameters:
//   - backendType: the rendering backend to use
//   - win: the window to render into
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeOpenGL:
		r.backend = newGLRendererBackend(win, msaa)
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(win.Width(), win.Height())
	return r
}

func (r *renderer) BeginFrame(clear mgl32.Vec3) error {
	return r.backend.BeginFrame(clear)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetWireframe(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.wireframe == enabled {
		return
	}
	r.wireframe = enabled
	r.backend.SetWireframe(enabled)
}

func (r *renderer) Wireframe() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wireframe
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) Release() {
	r.backend.Release()
}
