package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial first-person eye position.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(position mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose.Position = position
	}
}

// WithYaw sets the initial yaw.
//
// Parameters:
//   - yaw: yaw in degrees (-90 looks down -Z)
//
// Returns:
//   - CameraControllerOption: functional option to set the yaw
func WithYaw(yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose.Yaw = yaw
	}
}

// WithPitch sets the initial pitch.
//
// Parameters:
//   - pitch: pitch in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set the pitch
func WithPitch(pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose.Pitch = pitch
	}
}

// WithMovementSpeed sets the keyboard movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraControllerOption: functional option to set movement speed
func WithMovementSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose.MovementSpeed = speed
	}
}

// WithMouseSensitivity sets the mouse delta multiplier.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose.MouseSensitivity = sensitivity
	}
}

// WithZoom sets the initial field of view (raw and smoothed).
//
// Parameters:
//   - zoom: field of view in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom
func WithZoom(zoom float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose.Zoom = zoom
		cc.pose.ZoomSmooth = zoom
	}
}

// WithTargetDistance sets the initial orbit radius (raw and smoothed).
//
// Parameters:
//   - distance: distance from the orbit target
//
// Returns:
//   - CameraControllerOption: functional option to set the orbit radius
func WithTargetDistance(distance float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose.TargetDistance = distance
		cc.pose.TargetDistanceSmooth = distance
	}
}

// WithTarget sets the initial orbit target (raw and smoothed).
//
// Parameters:
//   - target: world-space point to orbit
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(target mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose.Target = target
		cc.pose.TargetSmooth = target
	}
}

// WithLimits replaces the clamps and smoothing policy.
//
// Parameters:
//   - limits: the limits to use
//
// Returns:
//   - CameraControllerOption: functional option to set the limits
func WithLimits(limits Limits) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.limits = limits
	}
}

// WithSmoothing sets the fraction of the remaining distance smoothed fields cover per frame.
//
// Parameters:
//   - factor: smoothing factor in (0,1]
//
// Returns:
//   - CameraControllerOption: functional option to set the smoothing factor
func WithSmoothing(factor float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.limits.Smoothing = factor
	}
}

// WithFrameRateIndependentSmoothing rescales smoothing by delta time so the damping looks
// the same at any frame rate. Off by default, which keeps the fixed per-frame factor.
//
// Parameters:
//   - enabled: whether to rescale smoothing by delta time
//
// Returns:
//   - CameraControllerOption: functional option to toggle delta-time smoothing
func WithFrameRateIndependentSmoothing(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.limits.FrameRateIndependent = enabled
	}
}
