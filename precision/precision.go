// Package precision selects the default floating point width of the
// transform types and converts values between the two widths.
//
// The default width is float32. Building with the xform64 tag switches
// every alias in this package to float64:
//
//	go build -tags xform64 ./...
//
// The explicit families, glm.Vec3f and glm.Vec3d, transform.Transform32
// and transform.Transform64 and so on, are available in both builds.
package precision

import "github.com/oliverbestmann/xform/glm"

// ToF32 is implemented by values that have a float32 counterpart of type N.
type ToF32[N any] interface {
	F32() N
}

// ToF64 is implemented by values that have a float64 counterpart of type W.
type ToF64[W any] interface {
	F64() W
}

// Convertible values can be converted to both widths.
type Convertible[N, W any] interface {
	ToF32[N]
	ToF64[W]
}

// F32 narrows a scalar to float32. Narrowing rounds to nearest, it never fails.
func F32[T glm.Float](value T) float32 {
	return float32(value)
}

// F64 widens a scalar to float64. Widening a float32 is exact.
func F64[T glm.Float](value T) float64 {
	return float64(value)
}

// DefaultReal converts a scalar to the default width.
func DefaultReal[T glm.Float](value T) Real {
	return Real(value)
}
