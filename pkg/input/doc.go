// Package input loads puzzle input files and splits their contents into the
// shapes the solvers consume: lines, integers and blank-line separated blocks.
//
// Inputs live in a single directory and are named after the puzzle day, for
// example inputs/day04.txt. Path builds that name, ReadFile loads it and maps
// file system failures onto the package sentinel errors.
//
// # Usage
//
//	raw, err := input.ReadFile(input.Path("inputs", 4))
//	if err != nil {
//		return err
//	}
//	for _, block := range input.Blocks(raw) {
//		// one record per block
//	}
package input
