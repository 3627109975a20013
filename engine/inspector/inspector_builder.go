package inspector

import "github.com/go-gl/mathgl/mgl32"

// InspectorOption is a functional option for configuring an Inspector.
type InspectorOption func(*inspectorImpl)

// WithModels sets the list of model names the inspector can switch between.
//
// Parameters:
//   - models: display names, in selection order
//
// Returns:
//   - InspectorOption: option function to apply
func WithModels(models ...string) InspectorOption {
	return func(i *inspectorImpl) {
		i.models = append([]string(nil), models...)
	}
}

// WithBackgroundColor sets the clear color.
//
// Parameters:
//   - color: RGB in [0,1]
//
// Returns:
//   - InspectorOption: option function to apply
func WithBackgroundColor(color mgl32.Vec3) InspectorOption {
	return func(i *inspectorImpl) {
		i.backgroundColor = color
	}
}

// WithRotatable starts the model spinning.
//
// Parameters:
//   - rotatable: whether the model animates
//
// Returns:
//   - InspectorOption: option function to apply
func WithRotatable(rotatable bool) InspectorOption {
	return func(i *inspectorImpl) {
		i.rotatable = rotatable
	}
}

// WithWireframe starts in wireframe mode.
//
// Parameters:
//   - wireframe: whether to draw lines only
//
// Returns:
//   - InspectorOption: option function to apply
func WithWireframe(wireframe bool) InspectorOption {
	return func(i *inspectorImpl) {
		i.wireframe = wireframe
	}
}

// WithHideCrosshair sets whether the crosshair overlay is hidden.
//
// Parameters:
//   - hide: hide the crosshair
//
// Returns:
//   - InspectorOption: option function to apply
func WithHideCrosshair(hide bool) InspectorOption {
	return func(i *inspectorImpl) {
		i.hideCrosshair = hide
	}
}

// WithShader sets the initial shader.
//
// Parameters:
//   - shader: shader to select
//
// Returns:
//   - InspectorOption: option function to apply
func WithShader(shader Shader) InspectorOption {
	return func(i *inspectorImpl) {
		i.shader = shader
	}
}
