package transform

import "github.com/oliverbestmann/xform/precision"

type Transform32 = Transform[float32]
type Transform64 = Transform[float64]

type GlobalTransform32 = GlobalTransform[float32]
type GlobalTransform64 = GlobalTransform[float64]

// Default and DefaultGlobal use the width selected at build time,
// see package precision.
type Default = Transform[precision.Real]
type DefaultGlobal = GlobalTransform[precision.Real]
