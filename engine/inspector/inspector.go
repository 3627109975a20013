package inspector

import (
	"github.com/Carmen-Shannon/datalens/common"
	"github.com/Carmen-Shannon/datalens/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader identifies the shading style the viewer draws the model with.
type Shader int

const (
	ShaderFlat Shader = iota
	ShaderBlinnPhong
	ShaderToon
	ShaderGradient
	ShaderScreenDoor
)

var shaderNames = [...]string{"Flat", "Blinn-Phong", "Toon", "Gradient", "Screen Door"}

func (s Shader) String() string {
	if s < 0 || int(s) >= len(shaderNames) {
		return "Unknown"
	}
	return shaderNames[s]
}

// ShaderNames returns the display names of every shader in enum order.
//
// Returns:
//   - []string: shader names
func ShaderNames() []string {
	return append([]string(nil), shaderNames[:]...)
}

// ParseShader looks up a shader by display name.
//
// Parameters:
//   - name: the shader's display name
//
// Returns:
//   - Shader: the matching shader
//   - bool: false when no shader has that name
func ParseShader(name string) (Shader, bool) {
	for i, n := range shaderNames {
		if n == name {
			return Shader(i), true
		}
	}
	return ShaderFlat, false
}

const (
	// RotationSpeed is the model spin rate in degrees per second while rotatable.
	RotationSpeed float32 = 10
	// CrosshairSmoothing is the fraction of the remaining crosshair size change applied per frame.
	CrosshairSmoothing float32 = 0.1

	ResetYaw      float32 = -90
	ResetPitch    float32 = -10
	ResetDistance float32 = 5
)

// Inspector holds the viewer's inspector state: the model transform and animation, render
// options, crosshair visibility, model and shader selection, and the camera actions the
// inspector panel exposes.
type Inspector interface {
	// Advance steps the model animation and crosshair smoothing by one frame.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//   - crosshairTarget: the size the crosshair is moving toward this frame
	Advance(deltaTime, crosshairTarget float32)

	// ModelMatrix builds the model transform as translate * rotX * rotY * rotZ * scale.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// ResetCamera re-seats the camera on focus with the inspector's reset pose.
	//
	// Parameters:
	//   - controller: the camera to reset
	//   - focus: the point to look at
	ResetCamera(controller camera.CameraController, focus mgl32.Vec3)

	// SelectModel makes the model at index current and resets the camera onto focus.
	//
	// Parameters:
	//   - index: position in the model list
	//   - focus: the new model's focus point
	//   - controller: the camera to reset
	//
	// Returns:
	//   - bool: false when index is out of range (nothing changes)
	SelectModel(index int, focus mgl32.Vec3, controller camera.CameraController) bool

	// SetFieldOfView sets the camera zoom from the FOV slider, clamped to the zoom range.
	//
	// Parameters:
	//   - controller: the camera to update
	//   - fov: requested field of view in degrees
	SetFieldOfView(controller camera.CameraController, fov float32)

	Position() mgl32.Vec3
	SetPosition(position mgl32.Vec3)
	Rotation() mgl32.Vec3
	SetRotation(rotation mgl32.Vec3)
	Scale() mgl32.Vec3
	SetScale(scale mgl32.Vec3)
	BackgroundColor() mgl32.Vec3
	SetBackgroundColor(color mgl32.Vec3)
	Wireframe() bool
	ToggleWireframe() bool
	Rotatable() bool
	SetRotatable(rotatable bool)
	HideCrosshair() bool
	SetHideCrosshair(hide bool)
	CrosshairSize() float32
	CrosshairScale() float32
	Models() []string
	CurrentModel() int
	Shader() Shader
	SelectShader(shader Shader)
}

type inspectorImpl struct {
	position        mgl32.Vec3
	rotation        mgl32.Vec3
	scale           mgl32.Vec3
	backgroundColor mgl32.Vec3

	wireframe     bool
	rotatable     bool
	hideCrosshair bool
	crosshairSize float32

	models       []string
	currentModel int
	shader       Shader
}

var _ Inspector = &inspectorImpl{}

// NewInspector creates inspector state with unit scale, a mid-grey background, the
// crosshair hidden and the Flat shader selected.
//
// Parameters:
//   - options: functional options to configure the inspector
//
// Returns:
//   - Inspector: the newly created inspector
func NewInspector(options ...InspectorOption) Inspector {
	i := &inspectorImpl{
		scale:           mgl32.Vec3{1, 1, 1},
		backgroundColor: mgl32.Vec3{0.5, 0.5, 0.5},
		hideCrosshair:   true,
		shader:          ShaderFlat,
	}
	for _, opt := range options {
		opt(i)
	}
	return i
}

func (i *inspectorImpl) Advance(deltaTime, crosshairTarget float32) {
	if i.rotatable {
		i.rotation[1] = common.WrapDegrees(i.rotation[1] + deltaTime*RotationSpeed)
	}
	i.crosshairSize = common.Approach(i.crosshairSize, crosshairTarget, CrosshairSmoothing)
}

func (i *inspectorImpl) ModelMatrix() mgl32.Mat4 {
	return common.BuildModelMatrix(i.position, i.rotation, i.scale)
}

func (i *inspectorImpl) ResetCamera(controller camera.CameraController, focus mgl32.Vec3) {
	controller.Reset(focus, ResetYaw, ResetPitch, ResetDistance)
}

func (i *inspectorImpl) SelectModel(index int, focus mgl32.Vec3, controller camera.CameraController) bool {
	if index < 0 || index >= len(i.models) {
		return false
	}
	i.currentModel = index
	i.ResetCamera(controller, focus)
	return true
}

func (i *inspectorImpl) SetFieldOfView(controller camera.CameraController, fov float32) {
	controller.SetZoom(fov)
}

func (i *inspectorImpl) Position() mgl32.Vec3 {
	return i.position
}

func (i *inspectorImpl) SetPosition(position mgl32.Vec3) {
	i.position = position
}

func (i *inspectorImpl) Rotation() mgl32.Vec3 {
	return i.rotation
}

func (i *inspectorImpl) SetRotation(rotation mgl32.Vec3) {
	i.rotation = rotation
}

func (i *inspectorImpl) Scale() mgl32.Vec3 {
	return i.scale
}

func (i *inspectorImpl) SetScale(scale mgl32.Vec3) {
	i.scale = scale
}

func (i *inspectorImpl) BackgroundColor() mgl32.Vec3 {
	return i.backgroundColor
}

func (i *inspectorImpl) SetBackgroundColor(color mgl32.Vec3) {
	i.backgroundColor = color
}

func (i *inspectorImpl) Wireframe() bool {
	return i.wireframe
}

func (i *inspectorImpl) ToggleWireframe() bool {
	i.wireframe = !i.wireframe
	return i.wireframe
}

func (i *inspectorImpl) Rotatable() bool {
	return i.rotatable
}

func (i *inspectorImpl) SetRotatable(rotatable bool) {
	i.rotatable = rotatable
}

func (i *inspectorImpl) HideCrosshair() bool {
	return i.hideCrosshair
}

func (i *inspectorImpl) SetHideCrosshair(hide bool) {
	i.hideCrosshair = hide
}

func (i *inspectorImpl) CrosshairSize() float32 {
	return i.crosshairSize
}

// CrosshairScale is the size the overlay should draw at: 0 while hidden.
func (i *inspectorImpl) CrosshairScale() float32 {
	if i.hideCrosshair {
		return 0
	}
	return i.crosshairSize
}

func (i *inspectorImpl) Models() []string {
	return append([]string(nil), i.models...)
}

func (i *inspectorImpl) CurrentModel() int {
	return i.currentModel
}

func (i *inspectorImpl) Shader() Shader {
	return i.shader
}

func (i *inspectorImpl) SelectShader(shader Shader) {
	if shader < 0 || int(shader) >= len(shaderNames) {
		return
	}
	i.shader = shader
}
