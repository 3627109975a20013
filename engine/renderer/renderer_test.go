package renderer

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type recordingBackend struct {
	calls     []string
	wireframe []bool
	sizes     [][2]int
}

func (b *recordingBackend) ConfigureSurface(width, height int) {
	b.sizes = append(b.sizes, [2]int{width, height})
}
func (b *recordingBackend) SetPresentMode(PresentMode) { b.calls = append(b.calls, "present_mode") }
func (b *recordingBackend) BeginFrame(mgl32.Vec3) error {
	b.calls = append(b.calls, "begin")
	return nil
}
func (b *recordingBackend) EndFrame() { b.calls = append(b.calls, "end") }
func (b *recordingBackend) Present()  { b.calls = append(b.calls, "present") }
func (b *recordingBackend) SetWireframe(enabled bool) {
	b.wireframe = append(b.wireframe, enabled)
}
func (b *recordingBackend) Release() { b.calls = append(b.calls, "release") }

func TestRendererDelegates(t *testing.T) {
	backend := &recordingBackend{}
	var r Renderer = &renderer{mu: &sync.Mutex{}, backend: backend, backendType: BackendTypeOpenGL}

	if err := r.BeginFrame(mgl32.Vec3{0.5, 0.5, 0.5}); err != nil {
		t.Fatal(err)
	}
	r.EndFrame()
	r.Present()

	want := []string{"begin", "end", "present"}
	for i, c := range want {
		if backend.calls[i] != c {
			t.Fatalf("calls = %v, want %v", backend.calls, want)
		}
	}

	t.Run("resize_ignores_minimized", func(t *testing.T) {
		r.Resize(0, 0)
		r.Resize(800, 600)
		if len(backend.sizes) != 1 || backend.sizes[0] != [2]int{800, 600} {
			t.Fatalf("sizes = %v", backend.sizes)
		}
	})

	t.Run("wireframe_only_on_change", func(t *testing.T) {
		r.SetWireframe(false)
		r.SetWireframe(true)
		r.SetWireframe(true)
		if len(backend.wireframe) != 1 || !backend.wireframe[0] || !r.Wireframe() {
			t.Fatalf("wireframe calls = %v", backend.wireframe)
		}
	})
}

func TestWGPUWireframeWithoutDevice(t *testing.T) {
	b := &wgpuRendererBackendImpl{mu: &sync.Mutex{}}
	b.SetWireframe(true)
	b.SetWireframe(false)

	r := &renderer{mu: &sync.Mutex{}, backend: b, backendType: BackendTypeWGPU}
	r.SetWireframe(true)
	if !r.Wireframe() {
		t.Fatalf("front end should track wireframe even when the backend ignores it")
	}
}

func TestParseBackendType(t *testing.T) {
	cases := []struct {
		in      string
		want    RendererBackendType
		wantErr bool
	}{
		{"wgpu", BackendTypeWGPU, false},
		{"WebGPU", BackendTypeWGPU, false},
		{"", BackendTypeWGPU, false},
		{"gl", BackendTypeOpenGL, false},
		{"OpenGL", BackendTypeOpenGL, false},
		{"vulkan", BackendTypeWGPU, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseBackendType(c.in)
			if (err != nil) != c.wantErr || got != c.want {
				t.Fatalf("ParseBackendType(%q) = %v, %v", c.in, got, err)
			}
		})
	}
}

func TestMSAAFromCount(t *testing.T) {
	cases := []struct {
		in   int
		want MSAASampleCount
	}{{0, MSAAOff}, {1, MSAAOff}, {2, MSAAOff}, {4, MSAA4x}, {6, MSAA4x}, {8, MSAA8x}, {32, MSAA16x}}
	for _, c := range cases {
		if got := MSAAFromCount(c.in); got != c.want {
			t.Fatalf("MSAAFromCount(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
