package days

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/advent/pkg/logger"
	"github.com/dmitrymomot/advent/pkg/runner"
	"github.com/dmitrymomot/advent/pkg/validator"
)

// DefaultExpenseTarget is the sum the day 1 entries must reach.
const DefaultExpenseTarget = 2020

var (
	ErrUnknownDay     = errors.New("unknown puzzle day")
	ErrInvalidOptions = errors.New("invalid puzzle options")
)

// Options tune the puzzles. The zero value is usable.
type Options struct {
	// ExpenseTarget defaults to DefaultExpenseTarget when zero.
	ExpenseTarget int
	// Logger receives per-record diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Validate rejects negative expense targets.
func (o Options) Validate() error {
	if err := validator.Apply(validator.MinNum("expense_target", o.ExpenseTarget, 0)); err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.ExpenseTarget == 0 {
		o.ExpenseTarget = DefaultExpenseTarget
	}
	if o.Logger == nil {
		o.Logger = logger.Discard()
	}
	return o
}

// All returns every implemented puzzle ordered by day.
func All(opts Options) []runner.Puzzle {
	opts = opts.withDefaults()
	return []runner.Puzzle{
		reportRepair{target: opts.ExpenseTarget},
		passwordPhilosophy{},
		tobogganTrajectory{},
		passportProcessing{log: opts.Logger.With(logger.Component("passport"))},
	}
}

// Lookup returns the puzzle of the given day.
func Lookup(opts Options, day int) (runner.Puzzle, error) {
	for _, p := range All(opts) {
		if p.Day() == day {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
}
