package glm

type Vec4[T Float] [4]T

func (lhs Vec4[T]) Dot(rhs Vec4[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1]) + (lhs[2] * rhs[2]) + (lhs[3] * rhs[3])
}

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], lhs[2]}
}

func (lhs Vec4[T]) ApproxEqual(rhs Vec4[T], eps T) bool {
	for idx := range lhs {
		if abs(lhs[idx]-rhs[idx]) > eps {
			return false
		}
	}

	return true
}
