// Package transform implements the local and world space poses of scene
// graph entities.
//
// A Transform places an entity relative to its parent, or relative to the
// world if it has none. A GlobalTransform always places an entity relative
// to the world. Both share the same algebra but are distinct types, turning
// one into the other requires an explicit conversion.
//
// The world pose of an entity is computed top down over the hierarchy:
//
//	root.global  = GlobalFrom(root.local)
//	child.global = parent.global.Mul(child.local)
//
// Parents must be final before their children are computed. Composition is
// not commutative, visiting the graph in any other order silently yields
// wrong poses.
package transform

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/xform/glm"
)

// Transform is a pose made of translation, rotation and non-uniform scale.
// Rotation must be a unit quaternion, it is never normalized.
//
// The zero value has zero scale, use Identity for the default pose.
type Transform[T glm.Float] struct {
	Translation glm.Vec3[T]
	Rotation    glm.Quaternion[T]
	Scale       glm.Vec3[T]
}

// Identity returns the pose without translation and rotation and a scale of
// one on every axis.
func Identity[T glm.Float]() Transform[T] {
	return Transform[T]{
		Translation: glm.Vec3Zero[T](),
		Rotation:    glm.IdentityQuaternion[T](),
		Scale:       glm.Vec3One[T](),
	}
}

// FromXYZ returns a pose at position (x, y, z).
func FromXYZ[T glm.Float](x, y, z T) Transform[T] {
	return FromTranslation(glm.Vec3[T]{x, y, z})
}

func FromTranslation[T glm.Float](translation glm.Vec3[T]) Transform[T] {
	return Identity[T]().WithTranslation(translation)
}

func FromRotation[T glm.Float](rotation glm.Quaternion[T]) Transform[T] {
	return Identity[T]().WithRotation(rotation)
}

func FromScale[T glm.Float](scale glm.Vec3[T]) Transform[T] {
	return Identity[T]().WithScale(scale)
}

// FromMatrix extracts translation, rotation and scale from an affine matrix.
// The result is meaningless if the matrix is singular or contains shear,
// no error is reported.
func FromMatrix[T glm.Float](matrix glm.Mat4[T]) Transform[T] {
	scale, rotation, translation := matrix.ToScaleRotationTranslation()

	return Transform[T]{
		Translation: translation,
		Rotation:    rotation,
		Scale:       scale,
	}
}

// LocalFrom reinterprets a world pose as a local pose.
func LocalFrom[T glm.Float](global GlobalTransform[T]) Transform[T] {
	return Transform[T](global)
}

func (t Transform[T]) WithTranslation(translation glm.Vec3[T]) Transform[T] {
	t.Translation = translation
	return t
}

func (t Transform[T]) WithRotation(rotation glm.Quaternion[T]) Transform[T] {
	t.Rotation = rotation
	return t
}

func (t Transform[T]) WithScale(scale glm.Vec3[T]) Transform[T] {
	t.Scale = scale
	return t
}

// LookingAt returns t rotated like LookAt does.
func (t Transform[T]) LookingAt(target, up glm.Vec3[T]) Transform[T] {
	t.LookAt(target, up)
	return t
}

// ComputeMatrix returns the affine matrix that scales, rotates and
// translates, in that order.
func (t Transform[T]) ComputeMatrix() glm.Mat4[T] {
	return glm.Mat4FromScaleRotationTranslation(t.Scale, t.Rotation, t.Translation)
}

// LocalX returns the unit vector along the local x axis.
func (t Transform[T]) LocalX() glm.Vec3[T] {
	return t.Rotation.Rotate(glm.Vec3X[T]())
}

func (t Transform[T]) LocalY() glm.Vec3[T] {
	return t.Rotation.Rotate(glm.Vec3Y[T]())
}

func (t Transform[T]) LocalZ() glm.Vec3[T] {
	return t.Rotation.Rotate(glm.Vec3Z[T]())
}

func (t Transform[T]) Right() glm.Vec3[T] { return t.LocalX() }
func (t Transform[T]) Left() glm.Vec3[T]  { return t.LocalX().Neg() }
func (t Transform[T]) Up() glm.Vec3[T]    { return t.LocalY() }
func (t Transform[T]) Down() glm.Vec3[T]  { return t.LocalY().Neg() }

// Forward is the negative local z axis, entities look down -z.
func (t Transform[T]) Forward() glm.Vec3[T] { return t.LocalZ().Neg() }
func (t Transform[T]) Back() glm.Vec3[T]    { return t.LocalZ() }

// Rotate applies rotation on top of the current rotation.
func (t *Transform[T]) Rotate(rotation glm.Quaternion[T]) {
	t.Rotation = rotation.Mul(t.Rotation)
}

// ApplyNonUniformScale multiplies the scale component wise by factor.
func (t *Transform[T]) ApplyNonUniformScale(factor glm.Vec3[T]) {
	t.Scale = t.Scale.Mul(factor)
}

// LookAt rotates t so that its local z axis points away from target, its
// forward direction towards target, and its local y axis is as close to up
// as possible.
//
// If target equals the translation, or up is parallel to the direction of
// target, the rotation becomes NaN.
func (t *Transform[T]) LookAt(target, up glm.Vec3[T]) {
	forward := t.Translation.Sub(target).Normalize()
	right := up.Cross(forward).Normalize()
	up = forward.Cross(right)

	t.Rotation = glm.QuaternionFromMat3(glm.Mat3FromCols(right, up, forward))
}

// Apply transforms the point value: rotate, then scale, then translate.
func (t Transform[T]) Apply(value glm.Vec3[T]) glm.Vec3[T] {
	value = t.Rotation.Rotate(value)
	value = t.Scale.Mul(value)
	return value.Add(t.Translation)
}

// Mul composes t with rhs, the result applies rhs first and t second.
func (t Transform[T]) Mul(rhs Transform[T]) Transform[T] {
	return Transform[T]{
		Translation: t.Apply(rhs.Translation),
		Rotation:    t.Rotation.Mul(rhs.Rotation),
		Scale:       t.Scale.Mul(rhs.Scale),
	}
}

// MulGlobal composes t with a world pose.
func (t Transform[T]) MulGlobal(rhs GlobalTransform[T]) GlobalTransform[T] {
	return GlobalTransform[T](t.Mul(Transform[T](rhs)))
}

// Global reinterprets t as a world pose.
func (t Transform[T]) Global() GlobalTransform[T] {
	return GlobalTransform[T](t)
}

func (t Transform[T]) String() string {
	return fmt.Sprintf("Transform{Translation: %v, Rotation: %v, Scale: %v}", t.Translation, t.Rotation, t.Scale)
}

func (t Transform[T]) LogValue() slog.Value {
	return logValue(t)
}

func logValue[T glm.Float](t Transform[T]) slog.Value {
	return slog.GroupValue(
		slog.Any("translation", t.Translation),
		slog.Any("rotation", t.Rotation),
		slog.Any("scale", t.Scale),
	)
}
