package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
	// BackendTypeOpenGL selects the OpenGL 4.1 core backend.
	BackendTypeOpenGL
)

func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeWGPU:
		return "wgpu"
	case BackendTypeOpenGL:
		return "gl"
	}
	return "unknown"
}

// ParseBackendType maps a backend name ("wgpu", "webgpu", "gl", "opengl") to its type.
//
// Parameters:
//   - name: backend name, case-insensitive
//
// Returns:
//   - RendererBackendType: the matching backend
//   - error: if the name is not recognized
func ParseBackendType(name string) (RendererBackendType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wgpu", "webgpu", "":
		return BackendTypeWGPU, nil
	case "gl", "opengl":
		return BackendTypeOpenGL, nil
	}
	return BackendTypeWGPU, fmt.Errorf("unknown renderer backend %q", name)
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// Only specific power-of-two values are valid for GPU hardware. WebGPU guarantees support for
// 1 (off) and 4; higher values (8, 16) are adapter-dependent and may not be available.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA16x MSAASampleCount = 16
)

// MSAAFromCount rounds an arbitrary sample count down to a supported MSAASampleCount.
//
// Parameters:
//   - count: requested samples
//
// Returns:
//   - MSAASampleCount: the nearest supported count not above count
func MSAAFromCount(count int) MSAASampleCount {
	switch {
	case count >= 16:
		return MSAA16x
	case count >= 8:
		return MSAA8x
	case count >= 4:
		return MSAA4x
	default:
		return MSAAOff
	}
}

// RendererBackend is the per-API implementation behind a Renderer.
type RendererBackend interface {
	// ConfigureSurface (re)creates size-dependent targets for a width x height framebuffer.
	ConfigureSurface(width, height int)

	// SetPresentMode records the present mode; it takes effect on the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the frame target and clears color to clear and depth to 1.
	BeginFrame(clear mgl32.Vec3) error

	// EndFrame finishes and submits the frame's commands.
	EndFrame()

	// Present shows the finished frame.
	Present()

	// SetWireframe switches between filled and line rasterization.
	SetWireframe(enabled bool)

	// Release frees GPU objects owned by the backend.
	Release()
}
