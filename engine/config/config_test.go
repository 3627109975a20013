package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/datalens/common"
	"github.com/Carmen-Shannon/datalens/engine/camera"
	"github.com/Carmen-Shannon/datalens/engine/input"
	"github.com/Carmen-Shannon/datalens/engine/inspector"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Fatalf("window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Renderer.Backend != BackendWebGPU {
		t.Fatalf("backend = %q", cfg.Renderer.Backend)
	}
	if cfg.Profiler.Interval != time.Second {
		t.Fatalf("profiler interval = %v", cfg.Profiler.Interval)
	}
	if cfg.Limits() != camera.DefaultLimits() {
		t.Fatalf("limits = %+v, want %+v", cfg.Limits(), camera.DefaultLimits())
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("bindings: %v", err)
	}
	for movement, key := range input.DefaultBindings() {
		if bindings[movement] != key {
			t.Fatalf("binding %v = %d, want %d", movement, bindings[movement], key)
		}
	}
}

func TestParseOverlay(t *testing.T) {
	data := []byte(`
window:
  width: 800
camera:
  zoom: 60
  smoothing: 0.5
  frame_rate_independent: true
renderer:
  backend: GL
input:
  bindings:
    forward: UP
inspector:
  shader: Toon
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 720 {
		t.Fatalf("window = %dx%d, want 800x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Datalens" {
		t.Fatalf("title = %q", cfg.Window.Title)
	}
	if cfg.Renderer.Backend != BackendOpenGL {
		t.Fatalf("backend = %q", cfg.Renderer.Backend)
	}
	if l := cfg.Limits(); l.Smoothing != 0.5 || !l.FrameRateIndependent {
		t.Fatalf("limits = %+v", l)
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("bindings: %v", err)
	}
	if len(bindings) != 1 || bindings[camera.Forward] != common.KeyUp {
		t.Fatalf("bindings = %v, want only forward=UP", bindings)
	}

	cc := camera.NewCameraController(cfg.CameraOptions()...)
	if cc.Zoom() != 60 {
		t.Fatalf("zoom = %f", cc.Zoom())
	}
	if cc.Position() != (mgl32.Vec3{0, 0, 5}) {
		t.Fatalf("position = %v", cc.Position())
	}
	if cfg.Focus() != cc.Target() {
		t.Fatalf("focus = %v, target = %v", cfg.Focus(), cc.Target())
	}

	insp := inspector.NewInspector(cfg.InspectorOptions()...)
	if insp.Shader() != inspector.ShaderToon || len(insp.Models()) != 1 {
		t.Fatalf("inspector shader %v models %v", insp.Shader(), insp.Models())
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"zero_width", "window: {width: 0}", ErrInvalidWindowSize},
		{"zoom_inverted", "camera: {min_zoom: 90, max_zoom: 10}", ErrInvalidZoomRange},
		{"zoom_floor_zero", "camera: {min_zoom: 0}", ErrInvalidZoomRange},
		{"smoothing_zero", "camera: {smoothing: 0}", ErrInvalidSmoothing},
		{"smoothing_above_one", "camera: {smoothing: 1.5}", ErrInvalidSmoothing},
		{"negative_distance", "camera: {target_distance: -1}", ErrInvalidDistance},
		{"distance_below_floor", "camera: {target_distance: 0.5, min_distance: 1}", ErrInvalidDistance},
		{"zero_min_distance", "camera: {min_distance: 0}", ErrInvalidDistance},
		{"pitch_limit_past_vertical", "camera: {pitch_limit: 95}", ErrInvalidPitchLimit},
		{"pitch_limit_vertical", "camera: {pitch_limit: 90}", ErrInvalidPitchLimit},
		{"pitch_limit_zero", "camera: {pitch_limit: 0}", ErrInvalidPitchLimit},
		{"far_before_near", "camera: {near: 10, far: 1}", ErrInvalidClipRange},
		{"unknown_toggle", "input: {toggle: F13}", ErrUnknownKey},
		{"unknown_movement", "input: {bindings: {jump: SPACE}}", ErrUnknownKey},
		{"unknown_binding_key", "input: {bindings: {forward: NOPE}}", ErrUnknownKey},
		{"unknown_backend", "renderer: {backend: vulkan}", ErrUnknownBackend},
		{"unknown_shader", "inspector: {shader: Phong}", ErrUnknownShader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}

	t.Run("malformed_yaml", func(t *testing.T) {
		if _, err := Parse([]byte("window: [")); err == nil {
			t.Fatalf("expected unmarshal error")
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datalens.yaml")
	if err := os.WriteFile(path, []byte("profiler: {enabled: true, interval: 250ms}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Profiler.Enabled || cfg.Profiler.Interval != 250*time.Millisecond {
		t.Fatalf("profiler = %+v", cfg.Profiler)
	}
	if len(cfg.ProfilerOptions()) != 2 {
		t.Fatalf("profiler options = %d", len(cfg.ProfilerOptions()))
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}

func TestReloader(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("camera: {zoom: 70}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("camera: {smoothing: 7}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	source := make(chan string, 2)
	r := NewReloader(source)
	defer r.Close()

	if r.Poll() != nil {
		t.Fatalf("poll before any change should be nil")
	}

	source <- bad
	source <- good
	select {
	case cfg := <-r.Updates():
		if cfg.Camera.Zoom != 70 {
			t.Fatalf("zoom = %f, want 70", cfg.Camera.Zoom)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
	if r.Poll() != nil {
		t.Fatalf("invalid file should not produce an update")
	}
}

func TestWatcherFilters(t *testing.T) {
	w := &Watcher{files: map[string]bool{filepath.Clean("/etc/datalens/app.yaml"): true}}
	cases := []struct {
		path string
		want bool
	}{
		{"/etc/datalens/app.yaml", true},
		{"/etc/datalens/other.yaml", false},
		{"/etc/datalens/app.yaml.swp", false},
		{"/srv/configs/any.yml", true},
		{"/srv/configs/notes.txt", false},
	}
	for _, c := range cases {
		t.Run(filepath.Base(c.path), func(t *testing.T) {
			if got := w.wants(filepath.Clean(c.path)); got != c.want {
				t.Fatalf("wants(%s) = %v, want %v", c.path, got, c.want)
			}
		})
	}
}
