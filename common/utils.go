package common

import "github.com/go-gl/mathgl/mgl32"

// Coalesce returns the first value that is not the zero value of T. Config overlays use it
// to fall back to a default when a field was left unset.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value when every candidate is zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Vec3OrDefault converts a decoded sequence such as a YAML [x, y, z] list to a vector.
//
// Parameters:
//   - v: the decoded components
//   - fallback: returned when v does not hold exactly three components
//
// Returns:
//   - mgl32.Vec3: the vector
func Vec3OrDefault(v []float32, fallback mgl32.Vec3) mgl32.Vec3 {
	if len(v) != 3 {
		return fallback
	}
	return mgl32.Vec3{v[0], v[1], v[2]}
}
