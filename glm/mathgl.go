package glm

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from go-gl/mathgl. Both libraries store matrices
// column-major, so matrices map element by element.

func (lhs Vec3[T]) Mgl32() mgl32.Vec3 {
	return mgl32.Vec3(lhs.F32())
}

func (lhs Vec3[T]) Mgl64() mgl64.Vec3 {
	return mgl64.Vec3(lhs.F64())
}

func (lhs Quaternion[T]) Mgl32() mgl32.Quat {
	return mgl32.Quat{W: float32(lhs.S), V: lhs.V.Mgl32()}
}

func (lhs Quaternion[T]) Mgl64() mgl64.Quat {
	return mgl64.Quat{W: float64(lhs.S), V: lhs.V.Mgl64()}
}

func (lhs Mat4[T]) Mgl32() mgl32.Mat4 {
	return mgl32.Mat4(lhs.F32())
}

func (lhs Mat4[T]) Mgl64() mgl64.Mat4 {
	return mgl64.Mat4(lhs.F64())
}

func Vec3FromMgl32[T Float](v mgl32.Vec3) Vec3[T] {
	return Vec3[T]{T(v[0]), T(v[1]), T(v[2])}
}

func Vec3FromMgl64[T Float](v mgl64.Vec3) Vec3[T] {
	return Vec3[T]{T(v[0]), T(v[1]), T(v[2])}
}

func QuaternionFromMgl32[T Float](q mgl32.Quat) Quaternion[T] {
	return Quaternion[T]{V: Vec3FromMgl32[T](q.V), S: T(q.W)}
}

func QuaternionFromMgl64[T Float](q mgl64.Quat) Quaternion[T] {
	return Quaternion[T]{V: Vec3FromMgl64[T](q.V), S: T(q.W)}
}

func Mat4FromMgl32[T Float](m mgl32.Mat4) (res Mat4[T]) {
	for idx, value := range m {
		res[idx] = T(value)
	}

	return
}

func Mat4FromMgl64[T Float](m mgl64.Mat4) (res Mat4[T]) {
	for idx, value := range m {
		res[idx] = T(value)
	}

	return
}
