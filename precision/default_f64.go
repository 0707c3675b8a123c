//go:build xform64

package precision

import "github.com/oliverbestmann/xform/glm"

// Bits is the width of Real.
const Bits = 64

type Real = float64

type Vec2 = glm.Vec2d
type Vec3 = glm.Vec3d
type Quat = glm.Quatd
type Mat3 = glm.Mat3d
type Mat4 = glm.Mat4d

// Default converts value to the default width. Both results of a
// Convertible are known statically, the build tag decides which one is
// returned.
func Default[N, W any](value Convertible[N, W]) W {
	return value.F64()
}
