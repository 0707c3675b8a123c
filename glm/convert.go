package glm

// F32 and F64 convert a value to its float32 and float64 sibling. Converting
// to the width a value already has returns an exact copy, narrowing rounds
// each component to the nearest float32.

func (lhs Vec2[T]) F32() Vec2[float32] {
	return Vec2[float32]{float32(lhs[0]), float32(lhs[1])}
}

func (lhs Vec2[T]) F64() Vec2[float64] {
	return Vec2[float64]{float64(lhs[0]), float64(lhs[1])}
}

func (lhs Vec3[T]) F32() Vec3[float32] {
	return Vec3[float32]{float32(lhs[0]), float32(lhs[1]), float32(lhs[2])}
}

func (lhs Vec3[T]) F64() Vec3[float64] {
	return Vec3[float64]{float64(lhs[0]), float64(lhs[1]), float64(lhs[2])}
}

func (lhs Vec4[T]) F32() Vec4[float32] {
	return Vec4[float32]{float32(lhs[0]), float32(lhs[1]), float32(lhs[2]), float32(lhs[3])}
}

func (lhs Vec4[T]) F64() Vec4[float64] {
	return Vec4[float64]{float64(lhs[0]), float64(lhs[1]), float64(lhs[2]), float64(lhs[3])}
}

func (lhs Quaternion[T]) F32() Quaternion[float32] {
	return Quaternion[float32]{V: lhs.V.F32(), S: float32(lhs.S)}
}

func (lhs Quaternion[T]) F64() Quaternion[float64] {
	return Quaternion[float64]{V: lhs.V.F64(), S: float64(lhs.S)}
}

func (lhs Mat3[T]) F32() (res Mat3[float32]) {
	for idx, value := range lhs {
		res[idx] = float32(value)
	}

	return
}

func (lhs Mat3[T]) F64() (res Mat3[float64]) {
	for idx, value := range lhs {
		res[idx] = float64(value)
	}

	return
}

func (lhs Mat4[T]) F32() (res Mat4[float32]) {
	for idx, value := range lhs {
		res[idx] = float32(value)
	}

	return
}

func (lhs Mat4[T]) F64() (res Mat4[float64]) {
	for idx, value := range lhs {
		res[idx] = float64(value)
	}

	return
}
