package transform

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/xform/glm"
)

// GlobalTransform is the pose of an entity relative to the world origin.
// It supports the same operations as Transform.
//
// The zero value has zero scale, use GlobalIdentity for the default pose.
type GlobalTransform[T glm.Float] Transform[T]

func GlobalIdentity[T glm.Float]() GlobalTransform[T] {
	return GlobalTransform[T](Identity[T]())
}

func GlobalFromXYZ[T glm.Float](x, y, z T) GlobalTransform[T] {
	return GlobalTransform[T](FromXYZ(x, y, z))
}

func GlobalFromTranslation[T glm.Float](translation glm.Vec3[T]) GlobalTransform[T] {
	return GlobalTransform[T](FromTranslation(translation))
}

func GlobalFromRotation[T glm.Float](rotation glm.Quaternion[T]) GlobalTransform[T] {
	return GlobalTransform[T](FromRotation(rotation))
}

func GlobalFromScale[T glm.Float](scale glm.Vec3[T]) GlobalTransform[T] {
	return GlobalTransform[T](FromScale(scale))
}

// GlobalFromMatrix extracts a world pose from an affine matrix, see FromMatrix.
func GlobalFromMatrix[T glm.Float](matrix glm.Mat4[T]) GlobalTransform[T] {
	return GlobalTransform[T](FromMatrix(matrix))
}

// GlobalFrom reinterprets a local pose as a world pose. This is how the
// world pose of a root entity is derived.
func GlobalFrom[T glm.Float](local Transform[T]) GlobalTransform[T] {
	return GlobalTransform[T](local)
}

// Local reinterprets g as a local pose.
func (g GlobalTransform[T]) Local() Transform[T] {
	return Transform[T](g)
}

func (g GlobalTransform[T]) WithTranslation(translation glm.Vec3[T]) GlobalTransform[T] {
	return GlobalTransform[T](g.Local().WithTranslation(translation))
}

func (g GlobalTransform[T]) WithRotation(rotation glm.Quaternion[T]) GlobalTransform[T] {
	return GlobalTransform[T](g.Local().WithRotation(rotation))
}

func (g GlobalTransform[T]) WithScale(scale glm.Vec3[T]) GlobalTransform[T] {
	return GlobalTransform[T](g.Local().WithScale(scale))
}

func (g GlobalTransform[T]) LookingAt(target, up glm.Vec3[T]) GlobalTransform[T] {
	return GlobalTransform[T](g.Local().LookingAt(target, up))
}

func (g GlobalTransform[T]) ComputeMatrix() glm.Mat4[T] {
	return g.Local().ComputeMatrix()
}

func (g GlobalTransform[T]) LocalX() glm.Vec3[T]  { return g.Local().LocalX() }
func (g GlobalTransform[T]) LocalY() glm.Vec3[T]  { return g.Local().LocalY() }
func (g GlobalTransform[T]) LocalZ() glm.Vec3[T]  { return g.Local().LocalZ() }
func (g GlobalTransform[T]) Right() glm.Vec3[T]   { return g.Local().Right() }
func (g GlobalTransform[T]) Left() glm.Vec3[T]    { return g.Local().Left() }
func (g GlobalTransform[T]) Up() glm.Vec3[T]      { return g.Local().Up() }
func (g GlobalTransform[T]) Down() glm.Vec3[T]    { return g.Local().Down() }
func (g GlobalTransform[T]) Forward() glm.Vec3[T] { return g.Local().Forward() }
func (g GlobalTransform[T]) Back() glm.Vec3[T]    { return g.Local().Back() }

func (g *GlobalTransform[T]) Rotate(rotation glm.Quaternion[T]) {
	(*Transform[T])(g).Rotate(rotation)
}

func (g *GlobalTransform[T]) ApplyNonUniformScale(factor glm.Vec3[T]) {
	(*Transform[T])(g).ApplyNonUniformScale(factor)
}

func (g *GlobalTransform[T]) LookAt(target, up glm.Vec3[T]) {
	(*Transform[T])(g).LookAt(target, up)
}

func (g GlobalTransform[T]) Apply(value glm.Vec3[T]) glm.Vec3[T] {
	return g.Local().Apply(value)
}

// Mul places the local pose rhs into the world, treating g as its parent.
func (g GlobalTransform[T]) Mul(rhs Transform[T]) GlobalTransform[T] {
	return GlobalTransform[T](g.Local().Mul(rhs))
}

func (g GlobalTransform[T]) MulGlobal(rhs GlobalTransform[T]) GlobalTransform[T] {
	return GlobalTransform[T](g.Local().Mul(rhs.Local()))
}

func (g GlobalTransform[T]) String() string {
	return fmt.Sprintf("GlobalTransform{Translation: %v, Rotation: %v, Scale: %v}", g.Translation, g.Rotation, g.Scale)
}

func (g GlobalTransform[T]) LogValue() slog.Value {
	return logValue(g.Local())
}
