package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/datalens/common"
	"github.com/Carmen-Shannon/datalens/engine/camera"
	"github.com/Carmen-Shannon/datalens/engine/input"
	"github.com/Carmen-Shannon/datalens/engine/inspector"
	"github.com/Carmen-Shannon/datalens/engine/profiler"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Renderer backend names accepted in renderer.backend.
const (
	BackendWebGPU = "wgpu"
	BackendOpenGL = "gl"
)

var (
	ErrInvalidWindowSize = errors.New("window size must be positive")
	ErrInvalidZoomRange  = errors.New("zoom range must satisfy 0 < min_zoom <= max_zoom")
	ErrInvalidSmoothing  = errors.New("smoothing must be in (0, 1]")
	ErrInvalidDistance   = errors.New("distances must satisfy 0 < min_distance <= target_distance")
	ErrInvalidPitchLimit = errors.New("pitch limit must be in (0, 90)")
	ErrInvalidClipRange  = errors.New("clip planes must satisfy 0 < near < far")
	ErrUnknownKey        = errors.New("unknown key")
	ErrUnknownBackend    = errors.New("unknown renderer backend")
	ErrUnknownShader     = errors.New("unknown shader")
)

// movementNames maps the input.bindings keys to camera movements.
var movementNames = map[string]camera.Movement{
	"forward":  camera.Forward,
	"backward": camera.Backward,
	"left":     camera.Left,
	"right":    camera.Right,
	"up":       camera.Up,
	"down":     camera.Down,
}

// Config is the viewer's configuration file.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Camera    CameraConfig    `yaml:"camera"`
	Input     InputConfig     `yaml:"input"`
	Inspector InspectorConfig `yaml:"inspector"`
	Profiler  ProfilerConfig  `yaml:"profiler"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
}

type RendererConfig struct {
	Backend string `yaml:"backend"`
	MSAA    int    `yaml:"msaa"`
	VSync   bool   `yaml:"vsync"`
}

type CameraConfig struct {
	Position             []float32 `yaml:"position"`
	Target               []float32 `yaml:"target"`
	Yaw                  float32   `yaml:"yaw"`
	Pitch                float32   `yaml:"pitch"`
	MovementSpeed        float32   `yaml:"movement_speed"`
	MouseSensitivity     float32   `yaml:"mouse_sensitivity"`
	Zoom                 float32   `yaml:"zoom"`
	MinZoom              float32   `yaml:"min_zoom"`
	MaxZoom              float32   `yaml:"max_zoom"`
	TargetDistance       float32   `yaml:"target_distance"`
	MinDistance          float32   `yaml:"min_distance"`
	PitchLimit           float32   `yaml:"pitch_limit"`
	Smoothing            float32   `yaml:"smoothing"`
	FrameRateIndependent bool      `yaml:"frame_rate_independent"`
	PanSpeed             float32   `yaml:"pan_speed"`
	Near                 float32   `yaml:"near"`
	Far                  float32   `yaml:"far"`
}

type InputConfig struct {
	Toggle         string            `yaml:"toggle"`
	Boost          string            `yaml:"boost"`
	BoostAmount    float32           `yaml:"boost_amount"`
	ConstrainPitch bool              `yaml:"constrain_pitch"`
	Bindings       map[string]string `yaml:"bindings"`
}

type InspectorConfig struct {
	Models        []string  `yaml:"models"`
	Background    []float32 `yaml:"background"`
	Rotatable     bool      `yaml:"rotatable"`
	Wireframe     bool      `yaml:"wireframe"`
	HideCrosshair bool      `yaml:"hide_crosshair"`
	Shader        string    `yaml:"shader"`
}

type ProfilerConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - *Config: the parsed embedded defaults
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Errorf("config: embedded defaults: %w", err))
	}
	return &cfg
}

// Parse overlays YAML data on the defaults and validates the result. Fields absent from
// data keep their default values.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the merged configuration
//   - error: a parse error or a wrapped validation sentinel
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	// an explicit bindings section replaces the default table rather than merging into it
	cfg.Input.Bindings = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.Input.Bindings == nil {
		cfg.Input.Bindings = Default().Input.Bindings
	}
	cfg.Renderer.Backend = common.Coalesce(strings.ToLower(strings.TrimSpace(cfg.Renderer.Backend)), BackendWebGPU)
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, "Datalens")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the file at path and parses it with Parse.
//
// Parameters:
//   - path: path to a YAML config file
//
// Returns:
//   - *Config: the merged configuration
//   - error: a read, parse or validation error
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and names. Every failure wraps one of the package's sentinel errors.
//
// Returns:
//   - error: nil when the configuration is usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.MinWidth < 0 || c.Window.MinHeight < 0 {
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidWindowSize)
	}
	switch c.Renderer.Backend {
	case BackendWebGPU, BackendOpenGL:
	default:
		return fmt.Errorf("%q: %w", c.Renderer.Backend, ErrUnknownBackend)
	}

	cam := c.Camera
	if cam.MinZoom <= 0 || cam.MinZoom > cam.MaxZoom {
		return fmt.Errorf("zoom [%g, %g]: %w", cam.MinZoom, cam.MaxZoom, ErrInvalidZoomRange)
	}
	if cam.Smoothing <= 0 || cam.Smoothing > 1 {
		return fmt.Errorf("smoothing %g: %w", cam.Smoothing, ErrInvalidSmoothing)
	}
	if cam.MinDistance <= 0 || cam.TargetDistance < cam.MinDistance {
		return fmt.Errorf("distance %g (min %g): %w", cam.TargetDistance, cam.MinDistance, ErrInvalidDistance)
	}
	if cam.PitchLimit <= 0 || cam.PitchLimit >= 90 {
		return fmt.Errorf("pitch limit %g: %w", cam.PitchLimit, ErrInvalidPitchLimit)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("near %g far %g: %w", cam.Near, cam.Far, ErrInvalidClipRange)
	}

	if _, ok := common.KeyByName(c.Input.Toggle); !ok {
		return fmt.Errorf("toggle %q: %w", c.Input.Toggle, ErrUnknownKey)
	}
	if _, ok := common.KeyByName(c.Input.Boost); !ok {
		return fmt.Errorf("boost %q: %w", c.Input.Boost, ErrUnknownKey)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}

	if c.Inspector.Shader != "" {
		if _, ok := inspector.ParseShader(c.Inspector.Shader); !ok {
			return fmt.Errorf("%q: %w", c.Inspector.Shader, ErrUnknownShader)
		}
	}
	return nil
}

// Limits translates the camera section into controller limits.
//
// Returns:
//   - camera.Limits: the configured limits
func (c *Config) Limits() camera.Limits {
	limits := camera.DefaultLimits()
	limits.MinZoom = c.Camera.MinZoom
	limits.MaxZoom = c.Camera.MaxZoom
	limits.MinDistance = c.Camera.MinDistance
	limits.PitchLimit = common.Coalesce(c.Camera.PitchLimit, limits.PitchLimit)
	limits.Smoothing = c.Camera.Smoothing
	limits.FrameRateIndependent = c.Camera.FrameRateIndependent
	limits.PanSpeed = common.Coalesce(c.Camera.PanSpeed, limits.PanSpeed)
	return limits
}

// CameraOptions translates the camera section into controller options.
//
// Returns:
//   - []camera.CameraControllerOption: options for camera.NewCameraController
func (c *Config) CameraOptions() []camera.CameraControllerOption {
	return []camera.CameraControllerOption{
		camera.WithLimits(c.Limits()),
		camera.WithPosition(common.Vec3OrDefault(c.Camera.Position, mgl32.Vec3{})),
		camera.WithTarget(common.Vec3OrDefault(c.Camera.Target, mgl32.Vec3{})),
		camera.WithYaw(c.Camera.Yaw),
		camera.WithPitch(c.Camera.Pitch),
		camera.WithMovementSpeed(common.Coalesce(c.Camera.MovementSpeed, camera.DefaultMovementSpeed)),
		camera.WithMouseSensitivity(common.Coalesce(c.Camera.MouseSensitivity, camera.DefaultMouseSensitivity)),
		camera.WithZoom(common.Coalesce(c.Camera.Zoom, camera.DefaultZoom)),
		camera.WithTargetDistance(c.Camera.TargetDistance),
	}
}

// Focus returns the camera target, the point the R shortcut re-seats the camera on.
func (c *Config) Focus() mgl32.Vec3 {
	return common.Vec3OrDefault(c.Camera.Target, mgl32.Vec3{})
}

// ProjectionOptions returns the clip plane options for camera.NewCamera.
//
// Returns:
//   - []camera.CameraBuilderOption: near and far plane options
func (c *Config) ProjectionOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
	}
}

// Bindings resolves the input.bindings table to key codes.
//
// Returns:
//   - input.Bindings: movement to key code map
//   - error: wraps ErrUnknownKey for an unknown movement or key name
func (c *Config) Bindings() (input.Bindings, error) {
	bindings := make(input.Bindings, len(c.Input.Bindings))
	for name, keyName := range c.Input.Bindings {
		movement, ok := movementNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("binding %q: %w", name, ErrUnknownKey)
		}
		key, ok := common.KeyByName(keyName)
		if !ok {
			return nil, fmt.Errorf("binding %s=%q: %w", name, keyName, ErrUnknownKey)
		}
		bindings[movement] = key
	}
	return bindings, nil
}

// InputOptions translates the input section into handler options. Call on a validated config.
//
// Returns:
//   - []input.HandlerOption: options for input.NewHandler
func (c *Config) InputOptions() []input.HandlerOption {
	opts := []input.HandlerOption{
		input.WithConstrainPitch(c.Input.ConstrainPitch),
		input.WithBoost(c.Input.BoostAmount),
	}
	if key, ok := common.KeyByName(c.Input.Toggle); ok {
		opts = append(opts, input.WithToggleKey(key))
	}
	if key, ok := common.KeyByName(c.Input.Boost); ok {
		opts = append(opts, input.WithBoostKey(key))
	}
	if bindings, err := c.Bindings(); err == nil {
		opts = append(opts, input.WithBindings(bindings))
	}
	return opts
}

// InspectorOptions translates the inspector section into inspector options.
//
// Returns:
//   - []inspector.InspectorOption: options for inspector.NewInspector
func (c *Config) InspectorOptions() []inspector.InspectorOption {
	opts := []inspector.InspectorOption{
		inspector.WithModels(c.Inspector.Models...),
		inspector.WithBackgroundColor(c.BackgroundColor()),
		inspector.WithRotatable(c.Inspector.Rotatable),
		inspector.WithWireframe(c.Inspector.Wireframe),
		inspector.WithHideCrosshair(c.Inspector.HideCrosshair),
	}
	if shader, ok := inspector.ParseShader(c.Inspector.Shader); ok {
		opts = append(opts, inspector.WithShader(shader))
	}
	return opts
}

// BackgroundColor returns the inspector background as a color.
//
// Returns:
//   - mgl32.Vec3: RGB in [0,1], mid-grey when unset
func (c *Config) BackgroundColor() mgl32.Vec3 {
	return common.Vec3OrDefault(c.Inspector.Background, mgl32.Vec3{0.5, 0.5, 0.5})
}

// ProfilerOptions translates the profiler section into profiler options.
//
// Returns:
//   - []profiler.ProfilerOption: options for profiler.NewProfiler
func (c *Config) ProfilerOptions() []profiler.ProfilerOption {
	opts := []profiler.ProfilerOption{profiler.WithLogging(c.Profiler.Enabled)}
	if c.Profiler.Interval > 0 {
		opts = append(opts, profiler.WithInterval(c.Profiler.Interval))
	}
	return opts
}
