package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController defines the union interface for the viewer camera.
// The controller owns a single Pose holding two tracks, orbit and first-person, which are
// maintained side by side. It never stores which track is active: every mode-dependent
// method takes a Mode and the caller decides per call which track is authoritative.
type CameraController interface {
	orbitCameraController
	firstPersonCameraController

	// ViewMatrix returns the look-at matrix for the given mode.
	//
	// Parameters:
	//   - mode: ModeOrbit or ModeFirstPerson
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix(mode Mode) mgl32.Mat4

	// EyePosition returns the world-space eye of the given mode's track.
	//
	// Parameters:
	//   - mode: ModeOrbit or ModeFirstPerson
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	EyePosition(mode Mode) mgl32.Vec3

	// ProcessMouseMovement applies a cursor delta to the given mode's track.
	// Offsets are deltas (current minus previous cursor position, y growing upward);
	// suppressing the first delta after cursor capture is the caller's job.
	//
	// Parameters:
	//   - xoffset, yoffset: cursor delta in pixels
	//   - mode: which track the delta drives
	//   - pan: in orbit mode, relocate the target instead of rotating
	//   - constrainPitch: in first-person mode, clamp pitch to the pitch limit
	ProcessMouseMovement(xoffset, yoffset float32, mode Mode, pan, constrainPitch bool)

	// ProcessMouseScroll applies a scroll delta: field of view in first-person mode,
	// orbit radius in orbit mode.
	//
	// Parameters:
	//   - yoffset: scroll delta (positive scrolls in)
	//   - mode: which track the scroll drives
	ProcessMouseScroll(yoffset float32, mode Mode)

	// Update advances the smoothed fields toward their raw values.
	// Call exactly once per frame, after input and before reading orbit matrices.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	Update(deltaTime float32)

	// Reset re-centers both tracks on position.
	// Calling it twice with the same arguments yields the same state.
	//
	// Parameters:
	//   - position: new orbit target
	//   - yaw, pitch: look direction in degrees
	//   - targetDistance: orbit radius
	Reset(position mgl32.Vec3, yaw, pitch, targetDistance float32)

	// Pose returns a copy of the full camera state.
	//
	// Returns:
	//   - Pose: snapshot of the current pose
	Pose() Pose

	// Zoom returns the raw field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Zoom() float32

	// SetZoom sets the raw field of view, clamped to the zoom range.
	//
	// Parameters:
	//   - zoom: field of view in degrees
	SetZoom(zoom float32)

	// FieldOfView returns the smoothed field of view used for projection.
	//
	// Returns:
	//   - float32: field of view in degrees
	FieldOfView() float32

	// MouseSensitivity returns the mouse delta multiplier.
	//
	// Returns:
	//   - float32: degrees (or pan units) per pixel
	MouseSensitivity() float32

	// SetMouseSensitivity sets the mouse delta multiplier.
	//
	// Parameters:
	//   - sensitivity: degrees (or pan units) per pixel
	SetMouseSensitivity(sensitivity float32)

	// Limits returns the active clamps and smoothing policy.
	//
	// Returns:
	//   - Limits: a copy of the limits
	Limits() Limits

	// SetLimits replaces the clamps and smoothing policy and re-clamps the raw state.
	//
	// Parameters:
	//   - limits: the new limits
	SetLimits(limits Limits)
}

// orbitCameraController defines orbit-track accessors.
type orbitCameraController interface {
	// Target returns the raw orbit target.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target
	Target() mgl32.Vec3

	// TargetSmooth returns the smoothed orbit target (the focus point the orbit eye looks at).
	//
	// Returns:
	//   - mgl32.Vec3: world-space smoothed target
	TargetSmooth() mgl32.Vec3

	// TargetDistance returns the raw orbit radius.
	//
	// Returns:
	//   - float32: distance from target
	TargetDistance() float32

	// OrbitPosition returns the orbit eye as of the last Update.
	//
	// Returns:
	//   - mgl32.Vec3: world-space orbit eye
	OrbitPosition() mgl32.Vec3
}

// firstPersonCameraController defines first-person movement and accessors.
type firstPersonCameraController interface {
	// ProcessKeyboard moves the first-person eye along the camera basis.
	//
	// Parameters:
	//   - direction: movement direction
	//   - deltaTime: seconds of movement to apply
	ProcessKeyboard(direction Movement, deltaTime float32)

	// Position returns the first-person eye position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// Yaw returns the first-person yaw in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the first-person pitch in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// MovementSpeed returns the keyboard movement speed.
	//
	// Returns:
	//   - float32: world units per second
	MovementSpeed() float32

	// SetMovementSpeed sets the keyboard movement speed.
	//
	// Parameters:
	//   - speed: world units per second
	SetMovementSpeed(speed float32)
}
