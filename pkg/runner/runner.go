package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/advent/pkg/durfmt"
	"github.com/dmitrymomot/advent/pkg/input"
	"github.com/dmitrymomot/advent/pkg/logger"
)

// Runner solves puzzles against the input files of Config.InputDir.
type Runner struct {
	cfg Config
	log *slog.Logger
}

// New validates cfg and returns a Runner. A nil logger discards output.
func New(cfg Config, log *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Runner{
		cfg: cfg,
		log: log.With(logger.Component("runner")),
	}, nil
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() Config {
	return r.cfg
}

// Run reads the input of p and solves its parts in order.
func (r *Runner) Run(ctx context.Context, p Puzzle) (Report, error) {
	ctx, runID := ensureRunID(ctx)
	log := r.log.With(logger.Day(p.Day()))

	parts := p.Parts()
	if len(parts) == 0 {
		return Report{}, fmt.Errorf("%w: day %d", ErrNoParts, p.Day())
	}

	path := input.Path(r.cfg.InputDir, p.Day())
	data, err := input.ReadFile(path)
	if err != nil {
		log.ErrorContext(ctx, "failed to read puzzle input", logger.Path(path), logger.Error(err))
		return Report{}, fmt.Errorf("day %d: %w", p.Day(), err)
	}
	log.DebugContext(ctx, "puzzle input loaded", logger.Path(path), logger.Count("bytes", len(data)))

	report := Report{
		RunID: runID,
		Day:   p.Day(),
		Title: p.Title(),
		Input: path,
		Parts: make([]PartReport, 0, len(parts)),
	}

	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		start := time.Now()
		answer, err := part.Solve(ctx, data)
		elapsed := time.Since(start)
		if err != nil {
			log.ErrorContext(ctx, "puzzle part failed", logger.Part(part.Name), logger.Error(err))
			return Report{}, fmt.Errorf("%w: day %d part %s: %w", ErrPartFailed, p.Day(), part.Name, err)
		}

		log.InfoContext(ctx, "puzzle part solved",
			logger.Part(part.Name),
			logger.Duration(elapsed),
			slog.String("answer", answer.String()),
		)

		report.Parts = append(report.Parts, PartReport{
			Name:    part.Name,
			Answer:  answer,
			Elapsed: elapsed,
			Took:    durfmt.Format(elapsed),
		})
	}

	return report, nil
}

// RunAll runs every puzzle under one run id. Reports follow the order of
// puzzles. The first failure is returned and, in parallel mode, cancels the
// puzzles still running.
func (r *Runner) RunAll(ctx context.Context, puzzles []Puzzle) ([]Report, error) {
	ctx, _ = ensureRunID(ctx)
	reports := make([]Report, len(puzzles))

	start := time.Now()
	defer func() {
		r.log.InfoContext(ctx, "run finished",
			logger.Count("puzzles", len(puzzles)),
			logger.Duration(time.Since(start)),
		)
	}()

	if !r.cfg.Parallel {
		for i, p := range puzzles {
			report, err := r.Run(ctx, p)
			if err != nil {
				return nil, err
			}
			reports[i] = report
		}
		return reports, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range puzzles {
		i, p := i, p
		g.Go(func() error {
			report, err := r.Run(gctx, p)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
