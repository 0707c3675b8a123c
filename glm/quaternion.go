package glm

// Quaternion is a rotation quaternion with vector part V and scalar part S.
// Rotations are expected to be unit length, none of the operations
// below normalize their input.
type Quaternion[T Float] struct {
	V Vec3[T]
	S T
}

func IdentityQuaternion[T Float]() Quaternion[T] {
	return Quaternion[T]{S: 1}
}

// QuaternionFromAxisAngle returns the rotation of angle around the
// normalized axis.
func QuaternionFromAxisAngle[T Float](axis Vec3[T], angle Rad) Quaternion[T] {
	s, c := sincos[T](angle * 0.5)

	return Quaternion[T]{
		V: axis.MulScalar(s),
		S: c,
	}
}

func QuaternionFromRotationX[T Float](angle Rad) Quaternion[T] {
	return QuaternionFromAxisAngle(Vec3X[T](), angle)
}

func QuaternionFromRotationY[T Float](angle Rad) Quaternion[T] {
	return QuaternionFromAxisAngle(Vec3Y[T](), angle)
}

func QuaternionFromRotationZ[T Float](angle Rad) Quaternion[T] {
	return QuaternionFromAxisAngle(Vec3Z[T](), angle)
}

// QuaternionFromMat3 returns the rotation described by the pure rotation
// matrix m. The result is undefined if m contains scale or shear.
func QuaternionFromMat3[T Float](m Mat3[T]) Quaternion[T] {
	cols := m.Columns()
	return quaternionFromAxes(cols[0], cols[1], cols[2])
}

// quaternionFromAxes picks the largest of the four quaternion components to
// divide by, so the result stays stable for any rotation.
func quaternionFromAxes[T Float](x, y, z Vec3[T]) Quaternion[T] {
	m00, m01, m02 := x.XYZ()
	m10, m11, m12 := y.XYZ()
	m20, m21, m22 := z.XYZ()

	if m22 <= 0 {
		dif10 := m11 - m00
		omm22 := 1 - m22

		if dif10 <= 0 {
			fourXSq := omm22 - dif10
			inv4x := 0.5 / sqrt(fourXSq)
			return Quaternion[T]{
				V: Vec3[T]{fourXSq * inv4x, (m01 + m10) * inv4x, (m02 + m20) * inv4x},
				S: (m12 - m21) * inv4x,
			}
		}

		fourYSq := omm22 + dif10
		inv4y := 0.5 / sqrt(fourYSq)
		return Quaternion[T]{
			V: Vec3[T]{(m01 + m10) * inv4y, fourYSq * inv4y, (m12 + m21) * inv4y},
			S: (m20 - m02) * inv4y,
		}
	}

	sum10 := m11 + m00
	opm22 := 1 + m22

	if sum10 <= 0 {
		fourZSq := opm22 - sum10
		inv4z := 0.5 / sqrt(fourZSq)
		return Quaternion[T]{
			V: Vec3[T]{(m02 + m20) * inv4z, (m12 + m21) * inv4z, fourZSq * inv4z},
			S: (m01 - m10) * inv4z,
		}
	}

	fourWSq := opm22 + sum10
	inv4w := 0.5 / sqrt(fourWSq)
	return Quaternion[T]{
		V: Vec3[T]{(m12 - m21) * inv4w, (m20 - m02) * inv4w, (m01 - m10) * inv4w},
		S: fourWSq * inv4w,
	}
}

// Mul returns the hamilton product lhs ⋅ rhs, the rotation that applies
// rhs first and lhs second.
func (lhs Quaternion[T]) Mul(rhs Quaternion[T]) Quaternion[T] {
	v := rhs.V.MulScalar(lhs.S).
		Add(lhs.V.MulScalar(rhs.S)).
		Add(lhs.V.Cross(rhs.V))

	return Quaternion[T]{
		V: v,
		S: lhs.S*rhs.S - lhs.V.Dot(rhs.V),
	}
}

// Rotate applies the rotation to vector v.
func (lhs Quaternion[T]) Rotate(v Vec3[T]) Vec3[T] {
	t := lhs.V.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(lhs.S)).Add(lhs.V.Cross(t))
}

func (lhs Quaternion[T]) Dot(rhs Quaternion[T]) T {
	return lhs.V.Dot(rhs.V) + lhs.S*rhs.S
}

func (lhs Quaternion[T]) Length() T {
	return sqrt(lhs.Dot(lhs))
}

func (lhs Quaternion[T]) Normalize() Quaternion[T] {
	inv := 1 / lhs.Length()
	return Quaternion[T]{V: lhs.V.MulScalar(inv), S: lhs.S * inv}
}

func (lhs Quaternion[T]) IsNormalized(eps T) bool {
	return abs(lhs.Dot(lhs)-1) <= eps
}

func (lhs Quaternion[T]) ApproxEqual(rhs Quaternion[T], eps T) bool {
	return lhs.V.ApproxEqual(rhs.V, eps) && abs(lhs.S-rhs.S) <= eps
}

// SameOrientation reports whether lhs and rhs describe the same rotation.
// q and -q rotate vectors identically.
func (lhs Quaternion[T]) SameOrientation(rhs Quaternion[T], eps T) bool {
	return abs(abs(lhs.Dot(rhs))-1) <= eps
}
