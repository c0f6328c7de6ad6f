package days

import (
	"context"

	"github.com/dmitrymomot/advent/pkg/expense"
	"github.com/dmitrymomot/advent/pkg/input"
	"github.com/dmitrymomot/advent/pkg/runner"
)

type reportRepair struct {
	target int
}

func (reportRepair) Day() int {
	return 1
}

func (reportRepair) Title() string {
	return "Report Repair"
}

func (d reportRepair) Parts() []runner.Part {
	return []runner.Part{
		{Name: "Part 1", Solve: d.pair},
		{Name: "Part 2", Solve: d.triplet},
	}
}

func (d reportRepair) pair(_ context.Context, in string) (runner.Answer, error) {
	entries, err := input.Ints(in)
	if err != nil {
		return runner.Answer{}, err
	}
	p, ok := expense.FindPair(entries, d.target)
	if !ok {
		return runner.NotFound("Did not find a matching pair"), nil
	}
	return runner.Explained(p.Product(), p.String()), nil
}

func (d reportRepair) triplet(_ context.Context, in string) (runner.Answer, error) {
	entries, err := input.Ints(in)
	if err != nil {
		return runner.Answer{}, err
	}
	t, ok := expense.FindTriplet(entries, d.target)
	if !ok {
		return runner.NotFound("Did not find a matching triplet"), nil
	}
	return runner.Explained(t.Product(), t.String()), nil
}
