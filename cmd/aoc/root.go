package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/advent/pkg/config"
	"github.com/dmitrymomot/advent/pkg/environment"
)

// app holds the flag values and the state prepared before a subcommand runs.
type app struct {
	stdout io.Writer
	stderr io.Writer

	envFile  string
	inputDir string
	format   string
	parallel bool
	verbose  bool

	cfg Config
	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code 2020 puzzles",
		Long: `aoc reads puzzle inputs named dayNN.txt from the input directory,
solves both parts of each day and prints a report.

Settings come from the environment (AOC_*), optionally loaded from a .env
file, and the flags below override them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load environment variables from this file")
	flags.StringVar(&a.inputDir, "input-dir", "", "directory holding dayNN.txt inputs (AOC_INPUT_DIR)")
	flags.StringVarP(&a.format, "format", "f", "", "report format: text, json or yaml (AOC_OUTPUT_FORMAT)")
	flags.BoolVar(&a.parallel, "parallel", false, "solve days concurrently (AOC_PARALLEL)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newRunCmd(a), newListCmd(a))
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.Runner.InputDir = a.inputDir
	}
	if flags.Changed("format") {
		cfg.Runner.Format = a.format
	}
	if flags.Changed("parallel") {
		cfg.Runner.Parallel = a.parallel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	env := environment.Parse(cfg.Env)
	log, err := newLogger(cfg, env, a.verbose, a.stderr)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	cmd.SetContext(environment.WithContext(cmd.Context(), env))
	return nil
}
