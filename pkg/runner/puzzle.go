package runner

import (
	"context"
	"strconv"
)

// Puzzle is a single day of puzzles.
type Puzzle interface {
	Day() int
	Title() string
	Parts() []Part
}

// SolveFunc computes the answer of one part from the raw puzzle input.
type SolveFunc func(ctx context.Context, input string) (Answer, error)

// Part is one named half of a puzzle.
type Part struct {
	Name  string
	Solve SolveFunc
}

// Answer is the outcome of a part. Found is false when the input has no
// solution; Text then explains why.
type Answer struct {
	Value int64  `json:"value"          yaml:"value"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Found bool   `json:"found"          yaml:"found"`
}

// Int returns a found answer holding n.
func Int(n int) Answer {
	return Answer{Value: int64(n), Found: true}
}

// Explained returns a found answer holding n with a human readable rendering.
func Explained(n int, text string) Answer {
	return Answer{Value: int64(n), Text: text, Found: true}
}

// NotFound returns an answer for an input without a solution.
func NotFound(reason string) Answer {
	return Answer{Text: reason}
}

func (a Answer) String() string {
	if a.Text != "" {
		return a.Text
	}
	return strconv.FormatInt(a.Value, 10)
}
