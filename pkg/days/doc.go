// Package days wires the puzzle packages into runner.Puzzle values.
//
// Each day parses its raw input with pkg/input, delegates to the matching
// domain package and reports one answer per part:
//
//   - Day 1, Report Repair: pkg/expense
//   - Day 2, Password Philosophy: pkg/password
//   - Day 3, Toboggan Trajectory: pkg/toboggan
//   - Day 4, Passport Processing: pkg/passport
//
// Use All to get every puzzle in day order or Lookup for a single day.
package days
