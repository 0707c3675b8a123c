package glm

import "math"

// LookAt returns the view matrix of a camera at eye looking at center.
// It is the inverse of FaceToward for the same arguments.
func LookAt[T Float](eye, center, up Vec3[T]) Mat4[T] {
	f := (center.Sub(eye)).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4Of([4][4]T{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-eye.Dot(s), -eye.Dot(u), eye.Dot(f), 1},
	})
}

// FaceToward returns the world matrix of an object at eye whose local z axis
// points away from center. The local y axis is the part of up orthogonal to
// that direction.
//
// If eye equals center or up is parallel to the viewing direction the
// basis contains NaN values.
func FaceToward[T Float](eye, center, up Vec3[T]) Mat4[T] {
	forward := eye.Sub(center).Normalize()
	right := up.Cross(forward).Normalize()
	up = forward.Cross(right)

	return Mat4FromCols(
		right.Extend(0),
		up.Extend(0),
		forward.Extend(0),
		eye.Extend(1),
	)
}

func DegToRad[T Float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}
