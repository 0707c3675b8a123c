package glm

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types a vector, quaternion or matrix can be
// instantiated with. Every value type in this package comes in exactly two
// widths, float32 and float64.
type Float interface {
	constraints.Float
}

// Rad is an angle in radians.
type Rad float64

// sincos returns sin and cos of r rounded to T. Both widths round the
// same float64 result, so float32 values equal narrowed float64 values.
func sincos[T Float](r Rad) (T, T) {
	s, c := math.Sincos(float64(r))
	return T(s), T(c)
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

func signum[T Float](x T) T {
	if x < 0 {
		return -1
	}

	return 1
}
