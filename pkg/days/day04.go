package days

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/advent/pkg/input"
	"github.com/dmitrymomot/advent/pkg/logger"
	"github.com/dmitrymomot/advent/pkg/passport"
	"github.com/dmitrymomot/advent/pkg/runner"
)

type passportProcessing struct {
	log *slog.Logger
}

func (passportProcessing) Day() int {
	return 4
}

func (passportProcessing) Title() string {
	return "Passport Processing"
}

func (d passportProcessing) Parts() []runner.Part {
	return []runner.Part{
		{Name: "Part 1", Solve: d.complete},
		{Name: "Part 2", Solve: d.valid},
	}
}

// complete counts the records that carry every mandatory key.
func (d passportProcessing) complete(ctx context.Context, in string) (runner.Answer, error) {
	return runner.Int(len(d.parse(ctx, in))), nil
}

// valid counts the complete records whose fields also pass validation.
func (d passportProcessing) valid(ctx context.Context, in string) (runner.Answer, error) {
	n := 0
	for _, p := range d.parse(ctx, in) {
		if err := p.Validate(); err != nil {
			d.log.DebugContext(ctx, "passport rejected", logger.Error(err))
			continue
		}
		n++
	}
	return runner.Int(n), nil
}

// parse builds a Passport from every block. Blocks that fail to build are
// logged and skipped.
func (d passportProcessing) parse(ctx context.Context, in string) []passport.Passport {
	blocks := input.Blocks(in)
	out := make([]passport.Passport, 0, len(blocks))
	for i, block := range blocks {
		p, err := passport.Parse(block)
		if err != nil {
			d.log.DebugContext(ctx, "passport skipped",
				logger.Count("record", i+1),
				logger.Error(err),
			)
			continue
		}
		out = append(out, p)
	}
	return out
}
