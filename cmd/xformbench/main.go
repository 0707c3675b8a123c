// Command xformbench measures transform propagation over a synthetic
// scene hierarchy.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/xform/precision"
	"github.com/pkg/profile"
)

func main() {
	var opts Options

	flag.IntVar(&opts.Nodes, "nodes", 0, "number of nodes, defaults to 10000")
	flag.IntVar(&opts.Fanout, "fanout", 0, "children per node, defaults to 4")
	flag.IntVar(&opts.Passes, "passes", 0, "number of propagation passes, defaults to 240")
	flag.Uint64Var(&opts.Seed, "seed", 1, "seed for the generated hierarchy")

	bits := flag.Int("bits", precision.Bits, "precision of the transforms, 32 or 64")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	verbose := flag.Bool("v", false, "enable debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		Handle(fmt.Errorf("unknown mode %q", *profileMode), "start profiling")
	}

	switch *bits {
	case 32:
		result, err := Run[float32](opts)
		Handle(err, "run with %d bit transforms", *bits)
		report(result.Times, result.Leaf)

	case 64:
		result, err := Run[float64](opts)
		Handle(err, "run with %d bit transforms", *bits)
		report(result.Times, result.Leaf)

	default:
		Handle(fmt.Errorf("unsupported precision %d", *bits), "parse flags")
	}
}

func report(times PassTimes, leaf slog.LogValuer) {
	slog.Info("Done",
		slog.Uint64("passes", times.PassCount),
		slog.Duration("average", times.AverageDuration),
		slog.Duration("max", times.MaxDuration),
		slog.Float64("passesPerSecond", times.PassesPerSecond()),
		slog.Any("leaf", leaf),
	)
}

// Handle panics with a description if err is not nil.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
