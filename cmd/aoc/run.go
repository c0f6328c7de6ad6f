package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/advent/pkg/days"
	"github.com/dmitrymomot/advent/pkg/logger"
	"github.com/dmitrymomot/advent/pkg/runner"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or every day when none is given",
		Example: `  aoc run
  aoc run 1 4 --format json
  AOC_PARALLEL=true aoc run --input-dir ./inputs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.puzzleOptions(a.log)
			puzzles, err := selectPuzzles(opts, args)
			if err != nil {
				return err
			}

			r, err := runner.New(a.cfg.Runner, a.log)
			if err != nil {
				return err
			}

			ctx := runner.WithRunID(cmd.Context(), uuid.NewString())
			a.log.DebugContext(ctx, "solving puzzles",
				logger.Count("puzzles", len(puzzles)),
				logger.Path(a.cfg.Runner.InputDir),
			)

			reports, err := r.RunAll(ctx, puzzles)
			if err != nil {
				return err
			}
			return runner.Render(a.stdout, a.cfg.Runner.Format, reports)
		},
	}
}

// selectPuzzles maps day arguments to puzzles, keeping their order. No
// arguments selects every day.
func selectPuzzles(opts days.Options, args []string) ([]runner.Puzzle, error) {
	if len(args) == 0 {
		return days.All(opts), nil
	}

	puzzles := make([]runner.Puzzle, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", days.ErrUnknownDay, arg)
		}
		p, err := days.Lookup(opts, day)
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}
