package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/datalens/engine/window"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glRendererBackendImpl draws into the default framebuffer of an OpenGL window.
// All calls must happen on the thread that owns the window's GL context.
type glRendererBackendImpl struct {
	mu     *sync.Mutex
	window window.Window

	sampleCount MSAASampleCount
	vsync       bool
	inFrame     bool
}

var _ RendererBackend = &glRendererBackendImpl{}

func newGLRendererBackend(win window.Window, sampleCount MSAASampleCount) RendererBackend {
	if win.ClientAPI() != window.ClientAPIOpenGL {
		panic("gl backend requires a window created with ClientAPIOpenGL")
	}
	if err := gl.Init(); err != nil {
		panic(fmt.Sprintf("failed to initialize OpenGL: %v", err))
	}
	log.Printf("[Renderer] OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if sampleCount > 1 {
		gl.Enable(gl.MULTISAMPLE)
	}

	return &glRendererBackendImpl{
		mu:          &sync.Mutex{},
		window:      win,
		sampleCount: sampleCount,
		vsync:       true,
	}
}

func (b *glRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetPresentMode only records the mode; a GL context's swap interval is owned by the window.
func (b *glRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.vsync = mode == PresentModeVSync
}

func (b *glRendererBackendImpl) SetWireframe(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (b *glRendererBackendImpl) BeginFrame(clear mgl32.Vec3) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.inFrame {
		return fmt.Errorf("previous frame not yet presented")
	}
	gl.ClearColor(clear[0], clear[1], clear[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	b.inFrame = true
	return nil
}

func (b *glRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inFrame {
		gl.Flush()
	}
}

func (b *glRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.inFrame {
		return
	}
	b.window.SwapBuffers()
	b.inFrame = false
}

// Release is a no-op: the default framebuffer belongs to the window.
func (b *glRendererBackendImpl) Release() {}
