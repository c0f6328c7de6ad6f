package runner

import "time"

// PartReport holds the answer of one part and how long it took.
type PartReport struct {
	Name    string        `json:"name"    yaml:"name"`
	Answer  Answer        `json:"answer"  yaml:"answer"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
	Took    string        `json:"took"    yaml:"took"`
}

// Report is the result of running one puzzle.
type Report struct {
	RunID string       `json:"run_id" yaml:"run_id"`
	Day   int          `json:"day"    yaml:"day"`
	Title string       `json:"title"  yaml:"title"`
	Input string       `json:"input"  yaml:"input"`
	Parts []PartReport `json:"parts"  yaml:"parts"`
}
