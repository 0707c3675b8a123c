package glm

import (
	"unsafe"
)

// Mat3 is a column-major 3x3 matrix.
type Mat3[T Float] [9]T

func Mat3FromCols[T Float](x, y, z Vec3[T]) Mat3[T] {
	return Mat3[T]{
		x[0], x[1], x[2],
		y[0], y[1], y[2],
		z[0], z[1], z[2],
	}
}

func Mat3FromQuaternion[T Float](quat Quaternion[T]) Mat3[T] {
	x, y, z := quaternionAxes(quat)
	return Mat3FromCols(x, y, z)
}

func (lhs Mat3[T]) Determinant() T {
	cols := lhs.Columns()
	return cols[2].Dot(cols[0].Cross(cols[1]))
}

func (lhs Mat3[T]) Transpose() Mat3[T] {
	// original
	// 0  1  2
	// 3  4  5
	// 6  7  8

	// transposed
	// 0  3  6
	// 1  4  7
	// 2  5  8

	return Mat3[T]{
		lhs[0], lhs[3], lhs[6],
		lhs[1], lhs[4], lhs[7],
		lhs[2], lhs[5], lhs[8],
	}
}

func (lhs Mat3[T]) Col(i int) Vec3[T] {
	return Vec3[T]{
		lhs[i*3+0],
		lhs[i*3+1],
		lhs[i*3+2],
	}
}

func (lhs Mat3[T]) Columns() [3]Vec3[T] {
	return *(*[3]Vec3[T])(unsafe.Pointer(&lhs))
}

func (lhs Mat3[T]) ApproxEqual(rhs Mat3[T], eps T) bool {
	for idx := range lhs {
		if abs(lhs[idx]-rhs[idx]) > eps {
			return false
		}
	}

	return true
}
