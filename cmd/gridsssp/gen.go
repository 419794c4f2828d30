package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsssp/builder"
	"github.com/katalvlaran/gridsssp/gridio"
	"github.com/katalvlaran/gridsssp/lattice"
)

var errGenFlags = errors.New("gen: invalid flags")

type genFlags struct {
	output   string
	dims     string
	source   string
	weight   float64
	min, max float64
	seed     int64
}

func newGenCmd() *cobra.Command {
	f := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a lattice problem with axis-neighbour edges",
		Long: `Writes a problem file whose edges connect every coordinate to each
in-bounds axis neighbour (4 in 2D, 6 in 3D). Weights are either constant
(--weight) or drawn uniformly from [--min, --max) and rounded to two
decimals. Three components in --dims select 3D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.output, "output", "", "problem file to write")
	fl.StringVar(&f.dims, "dims", "", "X,Y or X,Y,Z")
	fl.StringVar(&f.source, "source", "", "source coordinate (default: origin)")
	fl.Float64Var(&f.weight, "weight", builder.DefaultEdgeWeight, "constant edge weight")
	fl.Float64Var(&f.min, "min", 1, "lower bound of random weights")
	fl.Float64Var(&f.max, "max", 10, "upper bound of random weights")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("dims")
	cmd.MarkFlagsMutuallyExclusive("weight", "min")
	cmd.MarkFlagsMutuallyExclusive("weight", "max")

	return cmd
}

func runGen(cmd *cobra.Command, f *genFlags) error {
	mode := lattice.Mode2D
	if strings.Count(f.dims, ",") == 2 {
		mode = lattice.Mode3D
	}
	d, err := lattice.ParseCoord(f.dims, mode)
	if err != nil {
		return err
	}
	if mode == lattice.Mode2D {
		d.Z = 1
	}
	space, err := lattice.NewSpace(d.X, d.Y, d.Z, mode)
	if err != nil {
		return err
	}

	var src lattice.Coord
	if f.source != "" {
		if src, err = lattice.ParseCoord(f.source, mode); err != nil {
			return err
		}
		if !space.Contains(src) {
			return fmt.Errorf("%w: source %s outside %s", errGenFlags, space.Format(src), space)
		}
	}

	opts := []builder.BuilderOption{builder.WithSeed(f.seed)}
	fl := cmd.Flags()
	switch {
	case fl.Changed("min") || fl.Changed("max"):
		if f.min < 0 || f.max < f.min {
			return fmt.Errorf("%w: need 0 ≤ min ≤ max, got %g, %g", errGenFlags, f.min, f.max)
		}
		opts = append(opts, builder.WithUniformWeight(f.min, f.max))
	default:
		if f.weight < 0 {
			return fmt.Errorf("%w: weight %g is negative", errGenFlags, f.weight)
		}
		opts = append(opts, builder.WithConstantWeight(f.weight))
	}

	edges, err := builder.Lattice(space, opts...)
	if err != nil {
		return err
	}
	p := &gridio.Problem{Space: space, Source: src, Edges: edges}
	if err = writeFile(f.output, func(o *os.File) error { return gridio.WriteProblem(o, p) }); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s problem with %d edges written to %s\n", space, len(edges), f.output)

	return nil
}
