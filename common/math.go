package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SnapEpsilon is the distance below which Approach snaps a value onto its target.
const SnapEpsilon float32 = 1e-5

// Lerp linearly interpolates between a and b by t.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor (0 returns a, 1 returns b)
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Approach moves current a fraction of the way toward target.
// Once the remaining distance falls under SnapEpsilon, or the step is lost to float32
// rounding, the target is returned exactly, so repeated calls with a factor in (0,1)
// never overshoot and always terminate.
//
// Parameters:
//   - current: the smoothed value
//   - target: the raw value being followed
//   - factor: fraction of the remaining distance to cover, expected in (0,1]
//
// Returns:
//   - float32: the advanced value
func Approach(current, target, factor float32) float32 {
	if factor <= 0 {
		return current
	}
	next := current + (target-current)*factor
	if next == current || abs32(target-next) < SnapEpsilon {
		return target
	}
	return next
}

// ApproachVec3 applies Approach component-wise.
//
// Parameters:
//   - current: the smoothed vector
//   - target: the raw vector being followed
//   - factor: fraction of the remaining distance to cover
//
// Returns:
//   - mgl32.Vec3: the advanced vector
func ApproachVec3(current, target mgl32.Vec3, factor float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Approach(current[0], target[0], factor),
		Approach(current[1], target[1], factor),
		Approach(current[2], target[2], factor),
	}
}

// SmoothingFactor returns the per-call interpolation factor for exponential smoothing.
// With frameRateIndependent unset the base factor is applied once per frame as-is.
// Otherwise the factor is rescaled so that deltaTime seconds at any frame rate decay
// the same amount as one frame at 60 Hz with the base factor.
//
// Parameters:
//   - base: fraction of the remaining distance covered per 60 Hz frame
//   - deltaTime: seconds since the previous frame
//   - frameRateIndependent: whether to rescale by deltaTime
//
// Returns:
//   - float32: the factor to pass to Approach
func SmoothingFactor(base, deltaTime float32, frameRateIndependent bool) float32 {
	if !frameRateIndependent {
		return base
	}
	if deltaTime <= 0 {
		return 0
	}
	k := 1 - math.Pow(float64(1-base), float64(deltaTime)*60)
	return mgl32.Clamp(float32(k), 0, 1)
}

// WrapDegrees wraps an angle into [0, 360).
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float32: the equivalent angle in [0, 360)
func WrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	return w
}

// BuildModelMatrix constructs a model matrix from position, Euler rotation in degrees, and scale.
// The transform applied to a vertex is T * Rx * Ry * Rz * S.
//
// Parameters:
//   - position: translation in world space
//   - rotation: rotation angles in degrees around X, Y and Z
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: the model matrix (column-major)
func BuildModelMatrix(position, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(position[0], position[1], position[2])
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotation[0])))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotation[1])))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation[2])))
	return m.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// EyeFromView recovers the world-space eye position encoded in a view matrix.
//
// Parameters:
//   - view: a rigid view matrix (as produced by mgl32.LookAtV)
//
// Returns:
//   - mgl32.Vec3: the eye position
func EyeFromView(view mgl32.Mat4) mgl32.Vec3 {
	return view.Inv().Col(3).Vec3()
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
