// Package runner executes daily puzzles against their input files and
// renders the results.
//
// A Puzzle exposes its day number, a title and an ordered list of parts.
// The Runner reads `<InputDir>/dayNN.txt` once per puzzle, solves every part
// in order, measures how long each one took and returns a Report.
//
//	r, err := runner.New(cfg, log)
//	if err != nil {
//	    return err
//	}
//	reports, err := r.RunAll(ctx, puzzles)
//	if err != nil {
//	    return err
//	}
//	return runner.Render(os.Stdout, cfg.Format, reports)
//
// Every run carries a run id in its context. Loggers built with LogRunID
// attach it to every record, and each Report repeats it.
//
// With Config.Parallel set, RunAll solves puzzles concurrently. Reports are
// always returned in the order the puzzles were given, and the first failure
// cancels the remaining work.
package runner
