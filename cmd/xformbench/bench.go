package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/xform/glm"
	"github.com/oliverbestmann/xform/hierarchy"
	"github.com/oliverbestmann/xform/transform"
	"golang.org/x/mobile/exp/f32"
)

type Options struct {
	// number of nodes in the generated hierarchy
	Nodes int

	// number of children per node
	Fanout int

	// number of propagation passes to run
	Passes int

	Seed uint64
}

func (opts Options) withDefaults() Options {
	if opts.Nodes == 0 {
		opts.Nodes = 10_000
	}

	if opts.Fanout == 0 {
		opts.Fanout = 4
	}

	if opts.Passes == 0 {
		opts.Passes = 240
	}

	return opts
}

type Result[T glm.Float] struct {
	Times PassTimes

	// world pose of the deepest node after the last pass
	Leaf transform.GlobalTransform[T]
}

// Run builds a hierarchy of opts.Nodes nodes, animates the rotation of every
// node with noise and propagates world transforms once per pass.
func Run[T glm.Float](opts Options) (Result[T], error) {
	opts = opts.withDefaults()

	if opts.Nodes < 0 || opts.Fanout < 0 || opts.Passes < 0 {
		return Result[T]{}, errors.New("nodes, fanout and passes must not be negative")
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	graph := hierarchy.New[T](hierarchy.Options{})

	nodes := make([]hierarchy.Node, 0, opts.Nodes)
	for idx := range opts.Nodes {
		parent := hierarchy.Nil
		if idx > 0 {
			parent = nodes[(idx-1)/opts.Fanout]
		}

		local := transform.FromXYZ(
			T(rng.Float64()*2-1),
			T(rng.Float64()*2-1),
			T(rng.Float64()*2-1),
		)

		node, err := graph.Insert(local, parent)
		if err != nil {
			return Result[T]{}, fmt.Errorf("insert node %d: %w", idx, err)
		}

		nodes = append(nodes, node)
	}

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Frequency = 0.5
	noise.SetFractalOctaves(3)

	slog.Info("Hierarchy ready",
		slog.Int("nodes", graph.Len()),
		slog.Int("fanout", opts.Fanout),
		slog.Int("passes", opts.Passes),
	)

	var result Result[T]

	for pass := range opts.Passes {
		elapsed := float32(pass) / 60

		for idx, node := range nodes {
			local, _ := graph.Local(node)

			sample := noise.GetNoise2D(fastnoiselite.FNLfloat(elapsed), fastnoiselite.FNLfloat(idx))
			local.Rotation = animatedRotation[T](float32(sample))

			if err := graph.SetLocal(node, local); err != nil {
				return Result[T]{}, fmt.Errorf("animate node %d: %w", idx, err)
			}
		}

		startTime := time.Now()
		graph.Propagate()
		result.Times.Record(time.Since(startTime))

		if result.Times.PassCount%60 == 0 {
			slog.Info("Propagation",
				slog.Uint64("pass", result.Times.PassCount),
				slog.Duration("average", result.Times.AverageDuration),
				slog.Duration("max", result.Times.MaxDuration),
			)
		}
	}

	if len(nodes) > 0 {
		result.Leaf, _ = graph.Global(nodes[len(nodes)-1])
	}

	return result, nil
}

// animatedRotation turns a noise sample into a rotation around the y axis.
// The angle is computed once in float32 with the table based f32 functions,
// so both widths animate the exact same rotation. The result is normalized
// to remove the table error from the quaternion length.
func animatedRotation[T glm.Float](angle float32) glm.Quaternion[T] {
	s, c := f32.Sin(angle*0.5), f32.Cos(angle*0.5)

	rotation := glm.Quaternion[T]{V: glm.Vec3[T]{0, T(s), 0}, S: T(c)}
	return rotation.Normalize()
}
