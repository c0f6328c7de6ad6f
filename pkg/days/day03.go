package days

import (
	"context"

	"github.com/dmitrymomot/advent/pkg/input"
	"github.com/dmitrymomot/advent/pkg/runner"
	"github.com/dmitrymomot/advent/pkg/toboggan"
)

var (
	start = toboggan.Position{Row: 0, Col: 0}

	firstSlope = toboggan.Slope{Right: 3, Down: 1}

	allSlopes = []toboggan.Slope{
		{Right: 1, Down: 1},
		{Right: 3, Down: 1},
		{Right: 5, Down: 1},
		{Right: 7, Down: 1},
		{Right: 1, Down: 2},
	}
)

type tobogganTrajectory struct{}

func (tobogganTrajectory) Day() int {
	return 3
}

func (tobogganTrajectory) Title() string {
	return "Toboggan Trajectory"
}

func (tobogganTrajectory) Parts() []runner.Part {
	return []runner.Part{
		{Name: "Part 1", Solve: trees},
		{Name: "Part 2", Solve: treeProduct},
	}
}

func trees(_ context.Context, in string) (runner.Answer, error) {
	m, err := toboggan.Parse(input.Lines(in))
	if err != nil {
		return runner.Answer{}, err
	}
	n, err := m.Trees(start, firstSlope)
	if err != nil {
		return runner.Answer{}, err
	}
	return runner.Int(n), nil
}

func treeProduct(_ context.Context, in string) (runner.Answer, error) {
	m, err := toboggan.Parse(input.Lines(in))
	if err != nil {
		return runner.Answer{}, err
	}
	n, err := m.TreeProduct(start, allSlopes...)
	if err != nil {
		return runner.Answer{}, err
	}
	return runner.Int(n), nil
}
