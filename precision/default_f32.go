//go:build !xform64

package precision

import "github.com/oliverbestmann/xform/glm"

// Bits is the width of Real.
const Bits = 32

type Real = float32

type Vec2 = glm.Vec2f
type Vec3 = glm.Vec3f
type Quat = glm.Quatf
type Mat3 = glm.Mat3f
type Mat4 = glm.Mat4f

// Default converts value to the default width. Both results of a
// Convertible are known statically, the build tag decides which one is
// returned.
func Default[N, W any](value Convertible[N, W]) N {
	return value.F32()
}
