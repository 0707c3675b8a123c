package glm

import "math"

// Vec3 is a 3-component vector.
type Vec3[T Float] [3]T

func Vec3Zero[T Float]() Vec3[T] { return Vec3[T]{0, 0, 0} }
func Vec3One[T Float]() Vec3[T]  { return Vec3[T]{1, 1, 1} }

// Vec3X, Vec3Y and Vec3Z return the unit vectors along the world axes.
func Vec3X[T Float]() Vec3[T] { return Vec3[T]{1, 0, 0} }
func Vec3Y[T Float]() Vec3[T] { return Vec3[T]{0, 1, 0} }
func Vec3Z[T Float]() Vec3[T] { return Vec3[T]{0, 0, 1} }

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1]) + (lhs[2] * rhs[2])
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[1]*rhs[2] - rhs[1]*lhs[2],
		lhs[2]*rhs[0] - rhs[2]*lhs[0],
		lhs[0]*rhs[1] - rhs[0]*lhs[1],
	}
}

func (lhs Vec3[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
	}
}

// Normalize returns lhs scaled to unit length. A zero vector
// yields NaN components.
func (lhs Vec3[T]) Normalize() Vec3[T] {
	return lhs.MulScalar(1 / lhs.Length())
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
	}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
	}
}

// Mul multiplies lhs and rhs component by component.
func (lhs Vec3[T]) Mul(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
	}
}

func (lhs Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-lhs[0], -lhs[1], -lhs[2]}
}

// Recip returns 1/x for every component.
func (lhs Vec3[T]) Recip() Vec3[T] {
	return Vec3[T]{1 / lhs[0], 1 / lhs[1], 1 / lhs[2]}
}

func (lhs Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{lhs[0], lhs[1], lhs[2], w}
}

func (lhs Vec3[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

func (lhs Vec3[T]) IsNaN() bool {
	return lhs[0] != lhs[0] || lhs[1] != lhs[1] || lhs[2] != lhs[2]
}

// ApproxEqual reports whether every component of lhs is within
// eps of the corresponding component of rhs.
func (lhs Vec3[T]) ApproxEqual(rhs Vec3[T], eps T) bool {
	for idx := range lhs {
		if abs(lhs[idx]-rhs[idx]) > eps {
			return false
		}
	}

	return true
}
