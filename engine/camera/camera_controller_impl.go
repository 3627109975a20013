package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// It wraps a Pose and delegates every operation to the pure pose functions.
type cameraControllerImpl struct {
	mu *sync.Mutex

	pose   Pose
	limits Limits
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a camera at the origin looking down -Z with default
// tunables, then applies options, pulls zoom, distance and theta inside the limits and
// rebuilds the basis. Smoothed fields start at their clamped raw values.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		pose:   NewPose(mgl32.Vec3{0, 0, 0}, DefaultYaw, DefaultPitch),
		limits: DefaultLimits(),
	}

	for _, option := range options {
		option(cc)
	}

	cc.clampToLimits()
	cc.pose.ZoomSmooth = cc.pose.Zoom
	cc.pose.TargetDistanceSmooth = cc.pose.TargetDistance
	cc.pose.ThetaSmooth = cc.pose.Theta
	cc.pose = UpdateVectors(cc.pose)
	cc.pose.OrbitPosition = OrbitEye(cc.pose)
	return cc
}

func (cc *cameraControllerImpl) ViewMatrix(mode Mode) mgl32.Mat4 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return ViewMatrix(cc.pose, mode)
}

func (cc *cameraControllerImpl) EyePosition(mode Mode) mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return EyePosition(cc.pose, mode)
}

func (cc *cameraControllerImpl) ProcessMouseMovement(xoffset, yoffset float32, mode Mode, pan, constrainPitch bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose = ApplyMouseDelta(cc.pose, cc.limits, mode, xoffset, yoffset, pan, constrainPitch)
}

func (cc *cameraControllerImpl) ProcessMouseScroll(yoffset float32, mode Mode) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose = ApplyScroll(cc.pose, cc.limits, mode, yoffset)
}

func (cc *cameraControllerImpl) Update(deltaTime float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose = Advance(cc.pose, cc.limits, deltaTime)
}

func (cc *cameraControllerImpl) Reset(position mgl32.Vec3, yaw, pitch, targetDistance float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose = ResetPose(cc.pose, cc.limits, position, yaw, pitch, targetDistance)
}

func (cc *cameraControllerImpl) Pose() Pose {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose
}

func (cc *cameraControllerImpl) Zoom() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Zoom
}

func (cc *cameraControllerImpl) SetZoom(zoom float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose.Zoom = mgl32.Clamp(zoom, cc.limits.MinZoom, cc.limits.MaxZoom)
}

func (cc *cameraControllerImpl) FieldOfView() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.ZoomSmooth
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.MouseSensitivity
}

func (cc *cameraControllerImpl) SetMouseSensitivity(sensitivity float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose.MouseSensitivity = sensitivity
}

func (cc *cameraControllerImpl) Limits() Limits {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.limits
}

func (cc *cameraControllerImpl) SetLimits(limits Limits) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.limits = limits
	cc.clampToLimits()
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Target
}

func (cc *cameraControllerImpl) TargetSmooth() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.TargetSmooth
}

func (cc *cameraControllerImpl) TargetDistance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.TargetDistance
}

func (cc *cameraControllerImpl) OrbitPosition() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.OrbitPosition
}

// --- firstPersonCameraController implementation ---

func (cc *cameraControllerImpl) ProcessKeyboard(direction Movement, deltaTime float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose = ApplyKeyboard(cc.pose, direction, deltaTime)
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Position
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Yaw
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Pitch
}

func (cc *cameraControllerImpl) MovementSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.MovementSpeed
}

func (cc *cameraControllerImpl) SetMovementSpeed(speed float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose.MovementSpeed = speed
}

// clampToLimits pulls the raw zoom, distance and theta back inside the limits.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clampToLimits() {
	cc.pose.Zoom = mgl32.Clamp(cc.pose.Zoom, cc.limits.MinZoom, cc.limits.MaxZoom)
	cc.pose.TargetDistance = max(cc.pose.TargetDistance, cc.limits.MinDistance)
	cc.pose.Theta = mgl32.Clamp(cc.pose.Theta, cc.limits.MinTheta, cc.limits.MaxTheta)
}
