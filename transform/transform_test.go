package transform

import (
	"testing"

	"github.com/oliverbestmann/xform/glm"
	"github.com/oliverbestmann/xform/precision"
)

var (
	_ precision.Convertible[Transform32, Transform64]             = Transform32{}
	_ precision.Convertible[Transform32, Transform64]             = Transform64{}
	_ precision.Convertible[GlobalTransform32, GlobalTransform64] = GlobalTransform32{}
	_ precision.Convertible[GlobalTransform32, GlobalTransform64] = GlobalTransform64{}
)

func sample[T glm.Float]() Transform[T] {
	return Transform[T]{
		Translation: glm.Vec3[T]{1, -2, 3.5},
		Rotation:    glm.QuaternionFromAxisAngle(glm.Vec3[T]{1, 2, 3}.Normalize(), 0.8),
		Scale:       glm.Vec3[T]{2, 0.5, 3},
	}
}

func uniform[T glm.Float](x, y, z T, angle glm.Rad, scale T) Transform[T] {
	return Transform[T]{
		Translation: glm.Vec3[T]{x, y, z},
		Rotation:    glm.QuaternionFromAxisAngle(glm.Vec3[T]{x, z, y}.Normalize(), angle),
		Scale:       glm.Vec3[T]{scale, scale, scale},
	}
}

func approxEqual[T glm.Float](a, b Transform[T], eps T) bool {
	return a.Translation.ApproxEqual(b.Translation, eps) &&
		a.Rotation.SameOrientation(b.Rotation, eps) &&
		a.Scale.ApproxEqual(b.Scale, eps)
}

func TestIdentity(t *testing.T) {
	testIdentity[float32](t)
	testIdentity[float64](t)
}

func testIdentity[T glm.Float](t *testing.T) {
	id := Identity[T]()

	want := Transform[T]{
		Translation: glm.Vec3[T]{0, 0, 0},
		Rotation:    glm.Quaternion[T]{S: 1},
		Scale:       glm.Vec3[T]{1, 1, 1},
	}

	if id != want {
		t.Fatalf("Identity\nhave %v\nwant %v", id, want)
	}

	s := sample[T]()
	if have := id.Mul(s); have != s {
		t.Fatalf("identity * t\nhave %v\nwant %v", have, s)
	}

	if have := s.Mul(id); have != s {
		t.Fatalf("t * identity\nhave %v\nwant %v", have, s)
	}

	if have := GlobalIdentity[T]().Mul(s); have != GlobalFrom(s) {
		t.Fatalf("global identity * t\nhave %v\nwant %v", have, s)
	}
}

func TestConstructors(t *testing.T) {
	q := glm.QuaternionFromRotationZ[float64](1)

	cases := []struct {
		name string
		have Transform64
		want Transform64
	}{
		{"FromXYZ", FromXYZ(1.0, 2.0, 3.0), Identity[float64]().WithTranslation(glm.Vec3d{1, 2, 3})},
		{"FromTranslation", FromTranslation(glm.Vec3d{4, 5, 6}), Transform64{glm.Vec3d{4, 5, 6}, glm.IdentityQuaternion[float64](), glm.Vec3One[float64]()}},
		{"FromRotation", FromRotation(q), Transform64{glm.Vec3Zero[float64](), q, glm.Vec3One[float64]()}},
		{"FromScale", FromScale(glm.Vec3d{1, 0, -1}), Transform64{glm.Vec3Zero[float64](), glm.IdentityQuaternion[float64](), glm.Vec3d{1, 0, -1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.have != tc.want {
				t.Fatalf("%s\nhave %v\nwant %v", tc.name, tc.have, tc.want)
			}
		})
	}
}

func TestAssociativity(t *testing.T) {
	a := uniform[float64](1, 2, 3, 0.4, 2)
	b := uniform[float64](-4, 0.5, 1, 1.3, 0.25)
	c := uniform[float64](0, 7, -2, -2.2, 3)

	lhs := a.Mul(b).Mul(c)
	rhs := a.Mul(b.Mul(c))

	if !approxEqual(lhs, rhs, 1e-12) {
		t.Fatalf("(a * b) * c != a * (b * c)\nhave %v\nwant %v", lhs, rhs)
	}

	lhs32 := a.F32().Mul(b.F32()).Mul(c.F32())
	rhs32 := a.F32().Mul(b.F32().Mul(c.F32()))

	if !approxEqual(lhs32, rhs32, 1e-4) {
		t.Fatalf("(a * b) * c != a * (b * c)\nhave %v\nwant %v", lhs32, rhs32)
	}
}

func TestMulMatchesMatrix(t *testing.T) {
	a := uniform[float64](1, 2, 3, 0.4, 2)
	b := uniform[float64](-4, 0.5, 1, 1.3, 0.25)

	have := a.Mul(b).ComputeMatrix()
	want := a.ComputeMatrix().Mul(b.ComputeMatrix())

	if !have.ApproxEqual(want, 1e-12) {
		t.Fatalf("(a * b).ComputeMatrix\nhave %v\nwant %v", have, want)
	}

	p := glm.Vec3d{3, -1, 8}
	if have, want := a.Apply(p), a.ComputeMatrix().TransformPoint(p); !have.ApproxEqual(want, 1e-12) {
		t.Fatalf("Apply\nhave %v\nwant %v", have, want)
	}

	if have, want := a.Mul(b).Apply(p), a.Apply(b.Apply(p)); !have.ApproxEqual(want, 1e-12) {
		t.Fatalf("(a * b).Apply\nhave %v\nwant %v", have, want)
	}
}

// A rotated non-uniform scale is a shear, which translation, rotation and
// scale cannot express. Composition then leaves the matrix product.
func TestMulNonUniformScale(t *testing.T) {
	a := sample[float64]()
	b := uniform[float64](-4, 0.5, 1, 1.3, 1)

	have := a.Mul(b).ComputeMatrix()
	want := a.ComputeMatrix().Mul(b.ComputeMatrix())

	if have.ApproxEqual(want, 1e-6) {
		t.Fatalf("composition with non-uniform scale matches the matrix product\nhave %v", have)
	}

	// the point transform itself is still exact
	p := glm.Vec3d{3, -1, 8}
	if have, want := a.Mul(b).Apply(p), a.Apply(b.Apply(p)); !have.ApproxEqual(want, 1e-12) {
		t.Fatalf("(a * b).Apply\nhave %v\nwant %v", have, want)
	}
}

func TestApplyOrder(t *testing.T) {
	// rotate, then scale, then translate
	tr := Transform64{
		Translation: glm.Vec3d{10, 0, 0},
		Rotation:    glm.QuaternionFromRotationZ[float64](glm.DegToRad(90.0)),
		Scale:       glm.Vec3d{1, 3, 1},
	}

	have := tr.Apply(glm.Vec3d{1, 0, 0})
	want := glm.Vec3d{10, 3, 0}

	if !have.ApproxEqual(want, 1e-12) {
		t.Fatalf("Apply\nhave %v\nwant %v", have, want)
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	s := sample[float64]()
	have := FromMatrix(s.ComputeMatrix())

	if !approxEqual(have, s, 1e-12) {
		t.Fatalf("FromMatrix(ComputeMatrix)\nhave %v\nwant %v", have, s)
	}

	g := GlobalFromMatrix(s.ComputeMatrix())
	if !approxEqual(g.Local(), s, 1e-12) {
		t.Fatalf("GlobalFromMatrix(ComputeMatrix)\nhave %v\nwant %v", g, s)
	}

	s32 := sample[float32]()
	if have := FromMatrix(s32.ComputeMatrix()); !approxEqual(have, s32, 1e-5) {
		t.Fatalf("FromMatrix(ComputeMatrix)\nhave %v\nwant %v", have, s32)
	}
}

func TestFromMatrixDegenerate(t *testing.T) {
	cases := []struct {
		name   string
		matrix glm.Mat4d
	}{
		{"singular", glm.TranslationMat4[float64](1, 2, 3).Mul(glm.ScaleMat4[float64](0, 1, 1))},
		{"sheared", glm.Mat4FromCols(
			glm.Vec4d{1, 0, 0, 0},
			glm.Vec4d{0.5, 1, 0, 0},
			glm.Vec4d{0, 0, 1, 0},
			glm.Vec4d{1, 2, 3, 1},
		)},
	}

	want := glm.Vec3d{1, 2, 3}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// rotation and scale are meaningless, the translation column is
			// still taken as is
			if have := FromMatrix(tc.matrix).Translation; have != want {
				t.Fatalf("FromMatrix translation\nhave %v\nwant %v", have, want)
			}

			if have := GlobalFromMatrix(tc.matrix).Translation; have != want {
				t.Fatalf("GlobalFromMatrix translation\nhave %v\nwant %v", have, want)
			}
		})
	}
}

func TestPrecisionRoundTrip(t *testing.T) {
	s := sample[float64]()

	if have := s.F64(); have != s {
		t.Fatalf("Transform64.F64\nhave %v\nwant %v", have, s)
	}

	narrow := s.F32()
	if have := narrow.F32(); have != narrow {
		t.Fatalf("Transform32.F32\nhave %v\nwant %v", have, narrow)
	}

	if !approxEqual(narrow.F64(), s, 1e-6) {
		t.Fatalf("Transform64.F32.F64\nhave %v\nwant %v", narrow.F64(), s)
	}

	// widening and narrowing again is lossless
	if have := narrow.F64().F32(); have != narrow {
		t.Fatalf("Transform32.F64.F32\nhave %v\nwant %v", have, narrow)
	}

	g := GlobalFrom(narrow)
	if have := g.F64().F32(); have != g {
		t.Fatalf("GlobalTransform32.F64.F32\nhave %v\nwant %v", have, g)
	}

	var def DefaultGlobal = precision.Default[GlobalTransform32, GlobalTransform64](g)
	if have := def.F32(); have != g {
		t.Fatalf("Default(GlobalTransform32)\nhave %v\nwant %v", have, g)
	}
}

func TestDirections(t *testing.T) {
	id := Identity[float32]()

	cases := []struct {
		name string
		have glm.Vec3f
		want glm.Vec3f
	}{
		{"Forward", id.Forward(), glm.Vec3f{0, 0, -1}},
		{"Back", id.Back(), glm.Vec3f{0, 0, 1}},
		{"Up", id.Up(), glm.Vec3f{0, 1, 0}},
		{"Down", id.Down(), glm.Vec3f{0, -1, 0}},
		{"Right", id.Right(), glm.Vec3f{1, 0, 0}},
		{"Left", id.Left(), glm.Vec3f{-1, 0, 0}},
		{"LocalX", id.LocalX(), glm.Vec3f{1, 0, 0}},
		{"LocalY", id.LocalY(), glm.Vec3f{0, 1, 0}},
		{"LocalZ", id.LocalZ(), glm.Vec3f{0, 0, 1}},
	}

	for _, tc := range cases {
		if tc.have != tc.want {
			t.Fatalf("%s\nhave %v\nwant %v", tc.name, tc.have, tc.want)
		}
	}

	g := GlobalFromRotation(glm.QuaternionFromRotationY[float64](glm.DegToRad(90.0)))
	if have := g.Forward(); !have.ApproxEqual(glm.Vec3d{-1, 0, 0}, 1e-12) {
		t.Fatalf("Forward after 90° around y\nhave %v\nwant [-1 0 0]", have)
	}
}

func TestLookingAt(t *testing.T) {
	tr := FromXYZ[float32](50, 60, 0).LookingAt(glm.Vec3f{0, 0, 0}, glm.Vec3f{0, 1, 0})

	away := glm.Vec3f{50, 60, 0}.Normalize()

	if have := tr.LocalZ(); !have.ApproxEqual(away, 1e-5) {
		t.Fatalf("LocalZ\nhave %v\nwant %v", have, away)
	}

	if have := tr.Rotation.Rotate(glm.Vec3f{0, 0, -1}); !have.ApproxEqual(tr.Forward(), 1e-5) {
		t.Fatalf("rotation * -z\nhave %v\nwant %v", have, tr.Forward())
	}

	if have := tr.Forward(); !have.ApproxEqual(away.Neg(), 1e-5) {
		t.Fatalf("Forward\nhave %v\nwant %v", have, away.Neg())
	}

	if !tr.Rotation.IsNormalized(1e-5) {
		t.Fatalf("rotation is not normalized: %v", tr.Rotation)
	}

	// the pose matches the matrix built by FaceToward
	m := glm.FaceToward(tr.Translation, glm.Vec3f{0, 0, 0}, glm.Vec3f{0, 1, 0})
	if have := tr.ComputeMatrix(); !have.ApproxEqual(m, 1e-5) {
		t.Fatalf("ComputeMatrix\nhave %v\nwant %v", have, m)
	}

	var g GlobalTransform64
	g = GlobalFromXYZ(50.0, 60.0, 0.0)
	g.LookAt(glm.Vec3d{}, glm.Vec3d{0, 1, 0})
	if have := g.LocalZ(); !have.ApproxEqual(away.F64(), 1e-6) {
		t.Fatalf("GlobalTransform.LookAt LocalZ\nhave %v\nwant %v", have, away)
	}
}

func TestLookAtDegenerate(t *testing.T) {
	tr := FromXYZ(1.0, 1.0, 1.0).LookingAt(glm.Vec3d{1, 1, 1}, glm.Vec3d{0, 1, 0})
	if !tr.Rotation.V.IsNaN() {
		t.Fatalf("LookingAt own position\nhave %v\nwant NaN rotation", tr.Rotation)
	}
}

func TestRotate(t *testing.T) {
	tr := FromRotation(glm.QuaternionFromRotationY[float64](0.3))
	tr.Rotate(glm.QuaternionFromRotationY[float64](0.2))

	want := glm.QuaternionFromRotationY[float64](0.5)
	if !tr.Rotation.ApproxEqual(want, 1e-12) {
		t.Fatalf("Rotate\nhave %v\nwant %v", tr.Rotation, want)
	}

	// the new rotation is applied on top, in world space
	tr = FromRotation(glm.QuaternionFromRotationX[float64](glm.DegToRad(90.0)))
	tr.Rotate(glm.QuaternionFromRotationY[float64](glm.DegToRad(90.0)))

	if have := tr.Up(); !have.ApproxEqual(glm.Vec3d{1, 0, 0}, 1e-12) {
		t.Fatalf("Up after Rotate\nhave %v\nwant [1 0 0]", have)
	}
}

func TestApplyNonUniformScale(t *testing.T) {
	g := GlobalFromScale(glm.Vec3f{1, 2, 3})
	g.ApplyNonUniformScale(glm.Vec3f{2, 0.5, -1})

	if g.Scale != (glm.Vec3f{2, 1, -3}) {
		t.Fatalf("ApplyNonUniformScale\nhave %v\nwant [2 1 -3]", g.Scale)
	}
}

func TestWith(t *testing.T) {
	q := glm.QuaternionFromRotationX[float32](1)

	g := GlobalIdentity[float32]().
		WithTranslation(glm.Vec3f{1, 2, 3}).
		WithRotation(q).
		WithScale(glm.Vec3f{4, 5, 6})

	want := GlobalTransform32{
		Translation: glm.Vec3f{1, 2, 3},
		Rotation:    q,
		Scale:       glm.Vec3f{4, 5, 6},
	}

	if g != want {
		t.Fatalf("With*\nhave %v\nwant %v", g, want)
	}

	if LocalFrom(g) != Transform32(want) || g.Local().Global() != want {
		t.Fatalf("Local/Global conversion changed %v", g)
	}
}
