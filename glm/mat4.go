package glm

// Mat4 is a column-major 4x4 matrix. Affine transforms keep their
// translation in the last column.
type Mat4[T Float] [16]T

// quaternionAxes returns the columns of the rotation matrix of quat.
func quaternionAxes[T Float](quat Quaternion[T]) (x, y, z Vec3[T]) {
	x2 := quat.V[0] + quat.V[0]
	y2 := quat.V[1] + quat.V[1]
	z2 := quat.V[2] + quat.V[2]

	xx2 := x2 * quat.V[0]
	xy2 := x2 * quat.V[1]
	xz2 := x2 * quat.V[2]

	yy2 := y2 * quat.V[1]
	yz2 := y2 * quat.V[2]
	zz2 := z2 * quat.V[2]

	sy2 := y2 * quat.S
	sz2 := z2 * quat.S
	sx2 := x2 * quat.S

	x = Vec3[T]{1 - yy2 - zz2, xy2 + sz2, xz2 - sy2}
	y = Vec3[T]{xy2 - sz2, 1 - xx2 - zz2, yz2 + sx2}
	z = Vec3[T]{xz2 + sy2, yz2 - sx2, 1 - xx2 - yy2}
	return
}

func Mat4FromQuaternion[T Float](quat Quaternion[T]) Mat4[T] {
	x, y, z := quaternionAxes(quat)
	return Mat4FromCols(x.Extend(0), y.Extend(0), z.Extend(0), Vec4[T]{0, 0, 0, 1})
}

// Mat4FromScaleRotationTranslation returns the affine matrix that scales
// first, then rotates and finally translates.
func Mat4FromScaleRotationTranslation[T Float](scale Vec3[T], rotation Quaternion[T], translation Vec3[T]) Mat4[T] {
	x, y, z := quaternionAxes(rotation)

	return Mat4FromCols(
		x.MulScalar(scale[0]).Extend(0),
		y.MulScalar(scale[1]).Extend(0),
		z.MulScalar(scale[2]).Extend(0),
		translation.Extend(1),
	)
}

func Mat4FromCols[T Float](x, y, z, w Vec4[T]) Mat4[T] {
	return Mat4[T]{
		x[0], x[1], x[2], x[3],
		y[0], y[1], y[2], y[3],
		z[0], z[1], z[2], z[3],
		w[0], w[1], w[2], w[3],
	}
}

// Mat4Of builds a matrix from four columns.
func Mat4Of[T Float](cols [4][4]T) Mat4[T] {
	return Mat4FromCols(Vec4[T](cols[0]), Vec4[T](cols[1]), Vec4[T](cols[2]), Vec4[T](cols[3]))
}

func IdentityMat4[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TranslationMat4[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ScaleMat4[T Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func (lhs Mat4[T]) Scale(x, y, z T) Mat4[T] {
	return lhs.Mul(ScaleMat4[T](x, y, z))
}

func (lhs Mat4[T]) Translate(x, y, z T) Mat4[T] {
	return lhs.Mul(TranslationMat4[T](x, y, z))
}

func (lhs Mat4[T]) Rotate(quat Quaternion[T]) Mat4[T] {
	return lhs.Mul(Mat4FromQuaternion(quat))
}

// ToScaleRotationTranslation decomposes an affine matrix into the values
// Mat4FromScaleRotationTranslation was built from. A negative determinant
// is attributed to the x axis. Singular or sheared matrices produce
// meaningless results.
func (lhs Mat4[T]) ToScaleRotationTranslation() (scale Vec3[T], rotation Quaternion[T], translation Vec3[T]) {
	cols := lhs.Columns()

	x := cols[0].Truncate()
	y := cols[1].Truncate()
	z := cols[2].Truncate()

	det := lhs.Mat3().Determinant()

	scale = Vec3[T]{
		x.Length() * signum(det),
		y.Length(),
		z.Length(),
	}

	inv := scale.Recip()

	rotation = quaternionFromAxes(
		x.MulScalar(inv[0]),
		y.MulScalar(inv[1]),
		z.MulScalar(inv[2]),
	)

	translation = cols[3].Truncate()

	return
}

// Mat3 returns the upper left 3x3 part of lhs.
func (lhs Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		lhs[0], lhs[1], lhs[2],
		lhs[4], lhs[5], lhs[6],
		lhs[8], lhs[9], lhs[10],
	}
}

func (lhs Mat4[T]) Col(i int) Vec4[T] {
	return Vec4[T]{
		lhs[i*4+0],
		lhs[i*4+1],
		lhs[i*4+2],
		lhs[i*4+3],
	}
}

func (lhs Mat4[T]) Columns() [4]Vec4[T] {
	return [4]Vec4[T]{lhs.Col(0), lhs.Col(1), lhs.Col(2), lhs.Col(3)}
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		lhs[0]*rhs[0] + lhs[4]*rhs[1] + lhs[8]*rhs[2] + lhs[12]*rhs[3],
		lhs[1]*rhs[0] + lhs[5]*rhs[1] + lhs[9]*rhs[2] + lhs[13]*rhs[3],
		lhs[2]*rhs[0] + lhs[6]*rhs[1] + lhs[10]*rhs[2] + lhs[14]*rhs[3],
		lhs[3]*rhs[0] + lhs[7]*rhs[1] + lhs[11]*rhs[2] + lhs[15]*rhs[3],
		lhs[0]*rhs[4] + lhs[4]*rhs[5] + lhs[8]*rhs[6] + lhs[12]*rhs[7],
		lhs[1]*rhs[4] + lhs[5]*rhs[5] + lhs[9]*rhs[6] + lhs[13]*rhs[7],
		lhs[2]*rhs[4] + lhs[6]*rhs[5] + lhs[10]*rhs[6] + lhs[14]*rhs[7],
		lhs[3]*rhs[4] + lhs[7]*rhs[5] + lhs[11]*rhs[6] + lhs[15]*rhs[7],
		lhs[0]*rhs[8] + lhs[4]*rhs[9] + lhs[8]*rhs[10] + lhs[12]*rhs[11],
		lhs[1]*rhs[8] + lhs[5]*rhs[9] + lhs[9]*rhs[10] + lhs[13]*rhs[11],
		lhs[2]*rhs[8] + lhs[6]*rhs[9] + lhs[10]*rhs[10] + lhs[14]*rhs[11],
		lhs[3]*rhs[8] + lhs[7]*rhs[9] + lhs[11]*rhs[10] + lhs[15]*rhs[11],
		lhs[0]*rhs[12] + lhs[4]*rhs[13] + lhs[8]*rhs[14] + lhs[12]*rhs[15],
		lhs[1]*rhs[12] + lhs[5]*rhs[13] + lhs[9]*rhs[14] + lhs[13]*rhs[15],
		lhs[2]*rhs[12] + lhs[6]*rhs[13] + lhs[10]*rhs[14] + lhs[14]*rhs[15],
		lhs[3]*rhs[12] + lhs[7]*rhs[13] + lhs[11]*rhs[14] + lhs[15]*rhs[15],
	}
}

func (lhs Mat4[T]) Transform(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0]*rhs[0] + lhs[4]*rhs[1] + lhs[8]*rhs[2] + lhs[12]*rhs[3],
		lhs[1]*rhs[0] + lhs[5]*rhs[1] + lhs[9]*rhs[2] + lhs[13]*rhs[3],
		lhs[2]*rhs[0] + lhs[6]*rhs[1] + lhs[10]*rhs[2] + lhs[14]*rhs[3],
		lhs[3]*rhs[0] + lhs[7]*rhs[1] + lhs[11]*rhs[2] + lhs[15]*rhs[3],
	}
}

// TransformPoint transforms rhs as a position, w = 1.
func (lhs Mat4[T]) TransformPoint(rhs Vec3[T]) Vec3[T] {
	return lhs.Transform(rhs.Extend(1)).Truncate()
}

func (lhs Mat4[T]) ApproxEqual(rhs Mat4[T], eps T) bool {
	for idx := range lhs {
		if abs(lhs[idx]-rhs[idx]) > eps {
			return false
		}
	}

	return true
}
