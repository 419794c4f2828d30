package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridsssp/config"
	"github.com/katalvlaran/gridsssp/gridio"
	"github.com/katalvlaran/gridsssp/sssp"
)

type solveFlags struct {
	input, output   string
	flag3d          int
	algo            string
	nthreads        int
	maxPasses       int
	logFile         string
	dotFile         string
	configFile      string
	legacySelfLoops bool
	noCycleCheck    bool
	weightCheck     bool
	logLevel        string
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute shortest distances from the source of an input file",
		Long: `Reads a lattice problem (dimensions, source, edge records), solves it
with the selected algorithm and writes one "x y [z] distance" line per
reachable coordinate. Bellman-Ford also writes its relaxation count to
the --log file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.input, "input", "", "problem file")
	fl.StringVar(&f.output, "output", "", "distance file")
	fl.IntVar(&f.flag3d, "flag3d", 0, "1 for three-component coordinates, 0 for two")
	fl.StringVar(&f.algo, "algo", "dijkstra", "dijkstra or bellmanford")
	fl.IntVar(&f.nthreads, "nthreads", 0, "Bellman-Ford workers (0: one per CPU)")
	fl.IntVar(&f.maxPasses, "max-passes", 0, "Bellman-Ford pass cap (0: V-1)")
	fl.StringVar(&f.logFile, "log", "logs.txt", "relaxation count file for Bellman-Ford (empty: none)")
	fl.StringVar(&f.dotFile, "dot", "", "also write a Graphviz rendering of the shortest-path tree")
	fl.StringVar(&f.configFile, "config", "", "YAML or TOML settings file; flags override it")
	fl.BoolVar(&f.legacySelfLoops, "legacy-self-loops", false, "record a self-loop per edge in Dijkstra's adjacency")
	fl.BoolVar(&f.noCycleCheck, "no-cycle-check", false, "do not report negative cycles")
	fl.BoolVar(&f.weightCheck, "weight-check", false, "reject negative weights before running Dijkstra")
	fl.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// settings merges the config file (if any) with explicitly set flags.
func (f *solveFlags) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		var err error
		if cfg, err = config.Load(f.configFile); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("flag3d") || f.configFile == "" {
		cfg.Mode = "2d"
		if f.flag3d != 0 {
			cfg.Mode = "3d"
		}
	}
	if fl.Changed("algo") || f.configFile == "" {
		cfg.Algorithm = f.algo
	}
	if fl.Changed("nthreads") {
		cfg.Workers = f.nthreads
	}
	if fl.Changed("max-passes") {
		cfg.MaxPasses = f.maxPasses
	}
	if fl.Changed("legacy-self-loops") {
		cfg.LegacySelfLoops = f.legacySelfLoops
	}
	if fl.Changed("no-cycle-check") {
		cfg.CycleCheck = !f.noCycleCheck
	}
	if fl.Changed("weight-check") {
		cfg.WeightCheck = f.weightCheck
	}
	if fl.Changed("log-level") || f.configFile == "" {
		cfg.LogLevel = f.logLevel
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, f *solveFlags) error {
	cfg, err := f.settings(cmd)
	if err != nil {
		return err
	}
	mode, _ := cfg.LatticeMode()
	algo, _ := cfg.Algo()
	level, _ := cfg.Level()
	logger := newLogger(cmd.ErrOrStderr(), level)

	in, err := os.Open(f.input)
	if err != nil {
		return err
	}
	defer in.Close()
	p, err := gridio.ReadProblem(in, mode)
	if err != nil {
		return fmt.Errorf("%s: %w", f.input, err)
	}
	logger.Info("problem loaded",
		slog.String("file", f.input),
		slog.String("space", p.Space.String()),
		slog.Int("edges", len(p.Edges)),
	)

	opts := append(cfg.SolveOptions(),
		sssp.Source(p.Source),
		sssp.WithContext(cmd.Context()),
		sssp.WithLogger(logger),
	)
	res, err := sssp.Solve(p.Space, p.Edges, algo, opts...)
	if err != nil {
		return err
	}
	logger.Info("solved",
		slog.String("algorithm", algo.String()),
		slog.Int("reachable", res.Len()),
		slog.Int64("relaxations", res.Relaxations),
		slog.Int("passes", res.Passes),
	)

	if err = writeFile(f.output, func(o *os.File) error { return gridio.WriteDistances(o, res) }); err != nil {
		return err
	}
	if algo == sssp.AlgoBellmanFord && f.logFile != "" {
		err = writeFile(f.logFile, func(o *os.File) error { return gridio.WriteRelaxations(o, res.Relaxations) })
		if err != nil {
			return err
		}
	}
	if f.dotFile != "" {
		if err = writeFile(f.dotFile, func(o *os.File) error { return gridio.WriteDOT(o, res, p.Edges) }); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "SSSP results written to %s\n", f.output)

	return nil
}

// writeFile creates path, runs fn on it and reports the first error of
// fn or Close.
func writeFile(path string, fn func(*os.File) error) (err error) {
	o, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := o.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(o)
}
