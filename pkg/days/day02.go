package days

import (
	"context"

	"github.com/dmitrymomot/advent/pkg/input"
	"github.com/dmitrymomot/advent/pkg/password"
	"github.com/dmitrymomot/advent/pkg/runner"
)

type passwordPhilosophy struct{}

func (passwordPhilosophy) Day() int {
	return 2
}

func (passwordPhilosophy) Title() string {
	return "Password Philosophy"
}

func (passwordPhilosophy) Parts() []runner.Part {
	return []runner.Part{
		{Name: "Part 1", Solve: countEntries(password.Entry.SledRental)},
		{Name: "Part 2", Solve: countEntries(password.Entry.Toboggan)},
	}
}

func countEntries(policy func(password.Entry) bool) runner.SolveFunc {
	return func(_ context.Context, in string) (runner.Answer, error) {
		entries, err := password.ParseEntries(input.Lines(in))
		if err != nil {
			return runner.Answer{}, err
		}
		return runner.Int(password.Count(entries, policy)), nil
	}
}
