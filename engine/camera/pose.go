package camera

import (
	"math"

	"github.com/Carmen-Shannon/datalens/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects which of the two pose tracks a call reads or drives.
// The camera never stores a mode; callers pass one into every mode-dependent call.
type Mode int

const (
	// ModeOrbit orbits the smoothed target on a sphere.
	ModeOrbit Mode = iota

	// ModeFirstPerson flies freely from Position along the yaw/pitch basis.
	ModeFirstPerson
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFirstPerson:
		return "first-person"
	default:
		return "unknown"
	}
}

// Movement is a first-person keyboard movement direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// Default camera settings.
const (
	DefaultYaw              float32 = -90
	DefaultPitch            float32 = 0
	DefaultMovementSpeed    float32 = 2
	DefaultMouseSensitivity float32 = 0.05
	DefaultZoom             float32 = 45
	DefaultTargetDistance   float32 = 5
	DefaultTheta            float32 = 90
	DefaultPhi              float32 = 0
)

// Pose is the complete camera state: a first-person track driven by Position/Yaw/Pitch
// and an orbit track driven by Target/TargetDistance/Theta/Phi. Each *Smooth field is
// shadow state that follows its raw counterpart once per frame via Advance.
// All angles are in degrees.
type Pose struct {
	Position      mgl32.Vec3
	OrbitPosition mgl32.Vec3

	Forward mgl32.Vec3
	Up      mgl32.Vec3
	Right   mgl32.Vec3
	WorldUp mgl32.Vec3

	Target               mgl32.Vec3
	TargetSmooth         mgl32.Vec3
	TargetDistance       float32
	TargetDistanceSmooth float32

	Yaw   float32
	Pitch float32

	Theta       float32
	Phi         float32
	ThetaSmooth float32
	PhiSmooth   float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
	ZoomSmooth       float32
}

// Limits holds the clamps and smoothing policy applied to a Pose.
type Limits struct {
	// PitchLimit bounds |Pitch| when pitch constraint is requested.
	PitchLimit float32

	// MinZoom and MaxZoom bound the first-person field of view.
	MinZoom float32
	MaxZoom float32

	// MinDistance is the orbit radius floor. Must be positive.
	MinDistance float32

	// MinTheta and MaxTheta keep the orbit eye off the world-up axis.
	MinTheta float32
	MaxTheta float32

	// Smoothing is the fraction of the remaining distance smoothed fields cover per frame.
	Smoothing float32

	// FrameRateIndependent rescales Smoothing by delta time (60 Hz reference).
	FrameRateIndependent bool

	// PanSpeed multiplies the orbit pan step.
	PanSpeed float32
}

// DefaultLimits returns the stock limits: pitch ±89°, zoom [5°,150°], distance floor 0.1,
// theta [1°,179°], per-frame smoothing factor 0.1.
//
// Returns:
//   - Limits: the default limits
func DefaultLimits() Limits {
	return Limits{
		PitchLimit:  89,
		MinZoom:     5,
		MaxZoom:     150,
		MinDistance: 0.1,
		MinTheta:    1,
		MaxTheta:    179,
		Smoothing:   0.1,
		PanSpeed:    1,
	}
}

// NewPose builds a pose at position looking along yaw/pitch, with default tunables and
// an orbit track at the default radius around the origin.
//
// Parameters:
//   - position: first-person eye position
//   - yaw: yaw in degrees (-90 looks down -Z)
//   - pitch: pitch in degrees
//
// Returns:
//   - Pose: the initialized pose with an orthonormal basis
func NewPose(position mgl32.Vec3, yaw, pitch float32) Pose {
	p := Pose{
		Position:             position,
		Forward:              mgl32.Vec3{0, 0, -1},
		WorldUp:              mgl32.Vec3{0, 1, 0},
		TargetDistance:       DefaultTargetDistance,
		TargetDistanceSmooth: DefaultTargetDistance,
		Yaw:                  yaw,
		Pitch:                pitch,
		Theta:                DefaultTheta,
		Phi:                  DefaultPhi,
		ThetaSmooth:          DefaultTheta,
		PhiSmooth:            DefaultPhi,
		MovementSpeed:        DefaultMovementSpeed,
		MouseSensitivity:     DefaultMouseSensitivity,
		Zoom:                 DefaultZoom,
		ZoomSmooth:           DefaultZoom,
	}
	p = UpdateVectors(p)
	p.OrbitPosition = OrbitEye(p)
	return p
}

// ResetPose re-centers both tracks on position. The orbit track snaps (raw and smoothed)
// to position at targetDistance, with theta/phi chosen so the orbit eye sits behind the
// yaw/pitch look direction; the first-person eye is placed at that same point.
//
// Parameters:
//   - p: the pose to reset
//   - limits: clamps applied to the distance and orbit angles
//   - position: new orbit target
//   - yaw, pitch: look direction in degrees
//   - targetDistance: orbit radius, floored at limits.MinDistance
//
// Returns:
//   - Pose: the reset pose
func ResetPose(p Pose, limits Limits, position mgl32.Vec3, yaw, pitch, targetDistance float32) Pose {
	distance := max(targetDistance, limits.MinDistance)

	p.Target = position
	p.TargetSmooth = position
	p.TargetDistance = distance
	p.TargetDistanceSmooth = distance
	p.Yaw = yaw
	p.Pitch = pitch
	p = UpdateVectors(p)

	theta := mgl32.Clamp(90+pitch, limits.MinTheta, limits.MaxTheta)
	yawRad := float64(mgl32.DegToRad(yaw))
	phi := mgl32.RadToDeg(float32(math.Atan2(math.Cos(yawRad), -math.Sin(yawRad))))
	p.Theta, p.ThetaSmooth = theta, theta
	p.Phi, p.PhiSmooth = phi, phi

	p.Position = position.Sub(p.Forward.Mul(distance))
	p.OrbitPosition = OrbitEye(p)
	return p
}

// UpdateVectors recomputes Forward, Right and Up from Yaw and Pitch.
// If Forward is parallel to WorldUp (only reachable with an unconstrained pitch of ±90°)
// the previous Right is kept so the basis stays finite.
//
// Parameters:
//   - p: the pose to update
//
// Returns:
//   - Pose: the pose with an orthonormal basis
func UpdateVectors(p Pose) Pose {
	yaw := float64(mgl32.DegToRad(p.Yaw))
	pitch := float64(mgl32.DegToRad(p.Pitch))

	p.Forward = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()

	right := p.Forward.Cross(p.WorldUp)
	if right.Len() > 1e-6 {
		p.Right = right.Normalize()
	} else if p.Right.Len() == 0 {
		p.Right = mgl32.Vec3{1, 0, 0}
	}
	p.Up = p.Right.Cross(p.Forward).Normalize()
	return p
}

// OrbitEye returns the orbit eye position from the smoothed target, radius and angles.
// Theta is the polar angle from world up; phi rotates about world up, with phi = 0
// placing the eye on the +Z side of the target.
//
// Parameters:
//   - p: the pose to read
//
// Returns:
//   - mgl32.Vec3: the world-space orbit eye
func OrbitEye(p Pose) mgl32.Vec3 {
	theta := float64(mgl32.DegToRad(p.ThetaSmooth))
	phi := float64(mgl32.DegToRad(p.PhiSmooth))
	offset := mgl32.Vec3{
		float32(-math.Sin(theta) * math.Sin(phi)),
		float32(math.Cos(theta)),
		float32(math.Sin(theta) * math.Cos(phi)),
	}
	return p.TargetSmooth.Add(offset.Mul(p.TargetDistanceSmooth))
}

// orbitBasis returns the right and up vectors of the orbit view.
func orbitBasis(p Pose) (right, up mgl32.Vec3) {
	forward := p.TargetSmooth.Sub(OrbitEye(p)).Normalize()
	right = forward.Cross(p.WorldUp).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up
}

// ViewMatrix returns the look-at matrix for the requested track.
//
// Parameters:
//   - p: the pose to read
//   - mode: ModeFirstPerson looks from Position along Forward; ModeOrbit looks from the
//     orbit eye at TargetSmooth
//
// Returns:
//   - mgl32.Mat4: the view matrix
func ViewMatrix(p Pose, mode Mode) mgl32.Mat4 {
	if mode == ModeOrbit {
		return mgl32.LookAtV(OrbitEye(p), p.TargetSmooth, p.WorldUp)
	}
	return mgl32.LookAtV(p.Position, p.Position.Add(p.Forward), p.WorldUp)
}

// EyePosition returns the eye of the requested track.
//
// Parameters:
//   - p: the pose to read
//   - mode: which track
//
// Returns:
//   - mgl32.Vec3: the world-space eye position
func EyePosition(p Pose, mode Mode) mgl32.Vec3 {
	if mode == ModeOrbit {
		return OrbitEye(p)
	}
	return p.Position
}

// ApplyKeyboard moves the first-person eye by MovementSpeed*deltaTime along the basis
// vector matching direction. The orbit track is untouched.
//
// Parameters:
//   - p: the pose to move
//   - direction: movement direction
//   - deltaTime: seconds the key was held this frame
//
// Returns:
//   - Pose: the moved pose
func ApplyKeyboard(p Pose, direction Movement, deltaTime float32) Pose {
	velocity := p.MovementSpeed * deltaTime
	switch direction {
	case Forward:
		p.Position = p.Position.Add(p.Forward.Mul(velocity))
	case Backward:
		p.Position = p.Position.Sub(p.Forward.Mul(velocity))
	case Left:
		p.Position = p.Position.Sub(p.Right.Mul(velocity))
	case Right:
		p.Position = p.Position.Add(p.Right.Mul(velocity))
	case Up:
		p.Position = p.Position.Add(p.Up.Mul(velocity))
	case Down:
		p.Position = p.Position.Sub(p.Up.Mul(velocity))
	}
	return p
}

// ApplyMouseDelta applies a cursor delta scaled by MouseSensitivity.
// First-person: adds to yaw/pitch, optionally clamping pitch, and rebuilds the basis.
// Orbit: adds to theta/phi, theta clamped to the limits.
// Orbit with pan: moves Target along the orbit view's right/up vectors, scaled by
// PanSpeed and the smoothed distance relative to the default distance.
//
// Parameters:
//   - p: the pose to update
//   - limits: clamps and pan speed
//   - mode: which track the delta drives
//   - xoffset, yoffset: cursor delta (current minus previous; y grows upward)
//   - pan: relocate the orbit target instead of rotating (orbit only)
//   - constrainPitch: clamp first-person pitch to ±limits.PitchLimit
//
// Returns:
//   - Pose: the updated pose
func ApplyMouseDelta(p Pose, limits Limits, mode Mode, xoffset, yoffset float32, pan, constrainPitch bool) Pose {
	xoffset *= p.MouseSensitivity
	yoffset *= p.MouseSensitivity

	switch {
	case mode == ModeFirstPerson:
		p.Yaw += xoffset
		p.Pitch += yoffset
		if constrainPitch {
			p.Pitch = mgl32.Clamp(p.Pitch, -limits.PitchLimit, limits.PitchLimit)
		}
		p = UpdateVectors(p)
	case pan:
		right, up := orbitBasis(p)
		scale := limits.PanSpeed * p.TargetDistanceSmooth / DefaultTargetDistance
		p.Target = p.Target.
			Sub(right.Mul(xoffset * scale)).
			Sub(up.Mul(yoffset * scale))
	default:
		p.Phi += xoffset
		p.Theta = mgl32.Clamp(p.Theta+yoffset, limits.MinTheta, limits.MaxTheta)
	}
	return p
}

// ApplyScroll applies a scroll delta. First-person narrows or widens the field of view;
// orbit moves the eye toward or away from the target.
//
// Parameters:
//   - p: the pose to update
//   - limits: zoom range and distance floor
//   - mode: which track the scroll drives
//   - yoffset: scroll delta (positive scrolls in)
//
// Returns:
//   - Pose: the updated pose
func ApplyScroll(p Pose, limits Limits, mode Mode, yoffset float32) Pose {
	if mode == ModeOrbit {
		p.TargetDistance = max(p.TargetDistance-yoffset, limits.MinDistance)
		return p
	}
	p.Zoom = mgl32.Clamp(p.Zoom-yoffset, limits.MinZoom, limits.MaxZoom)
	return p
}

// Advance moves every smoothed field toward its raw value and refreshes OrbitPosition.
//
// Parameters:
//   - p: the pose to advance
//   - limits: smoothing policy
//   - deltaTime: seconds since the previous frame (used only when FrameRateIndependent)
//
// Returns:
//   - Pose: the advanced pose
func Advance(p Pose, limits Limits, deltaTime float32) Pose {
	k := common.SmoothingFactor(limits.Smoothing, deltaTime, limits.FrameRateIndependent)

	p.TargetSmooth = common.ApproachVec3(p.TargetSmooth, p.Target, k)
	p.TargetDistanceSmooth = common.Approach(p.TargetDistanceSmooth, p.TargetDistance, k)
	p.ThetaSmooth = common.Approach(p.ThetaSmooth, p.Theta, k)
	p.PhiSmooth = common.Approach(p.PhiSmooth, p.Phi, k)
	p.ZoomSmooth = common.Approach(p.ZoomSmooth, p.Zoom, k)

	p.OrbitPosition = OrbitEye(p)
	return p
}
