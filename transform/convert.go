package transform

// Conversion between widths converts translation, rotation and scale
// component wise. Converting to the current width is an exact copy.

func (t Transform[T]) F32() Transform[float32] {
	return Transform[float32]{
		Translation: t.Translation.F32(),
		Rotation:    t.Rotation.F32(),
		Scale:       t.Scale.F32(),
	}
}

func (t Transform[T]) F64() Transform[float64] {
	return Transform[float64]{
		Translation: t.Translation.F64(),
		Rotation:    t.Rotation.F64(),
		Scale:       t.Scale.F64(),
	}
}

func (g GlobalTransform[T]) F32() GlobalTransform[float32] {
	return GlobalTransform[float32](g.Local().F32())
}

func (g GlobalTransform[T]) F64() GlobalTransform[float64] {
	return GlobalTransform[float64](g.Local().F64())
}
