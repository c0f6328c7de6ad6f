package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/advent/pkg/config"
	"github.com/dmitrymomot/advent/pkg/days"
	"github.com/dmitrymomot/advent/pkg/input"
	"github.com/dmitrymomot/advent/pkg/runner"
)

var aocVars = []string{
	"AOC_ENV",
	"AOC_LOG_LEVEL",
	"AOC_LOG_FORMAT",
	"AOC_INPUT_DIR",
	"AOC_OUTPUT_FORMAT",
	"AOC_PARALLEL",
	"AOC_EXPENSE_TARGET",
}

// cleanEnv unsets every AOC_* variable for the duration of the test and drops
// cached configuration.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range aocVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	config.ResetCache()
	t.Cleanup(config.ResetCache)
}

func writeInputs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	inputs := map[int]string{
		1: "1721\n979\n366\n299\n675\n1456\n",
		2: "1-3 a: abcde\n1-3 b: cdefg\n2-9 c: ccccccccc\n",
		3: "..##.......\n#...#...#..\n.#....#..#.\n..#.#...#.#\n.#...##..#.\n..#.##.....\n.#.#.#....#\n.#........#\n#.##...#...\n#...##....#\n.#..#...#.#\n",
		4: "ecl:gry pid:860033327 eyr:2020 hcl:#fffffd\nbyr:1937 iyr:2017 cid:147 hgt:183cm\n\niyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884\nhcl:#cfa07d byr:1929\n",
	}
	for day, content := range inputs {
		require.NoError(t, os.WriteFile(input.Path(dir, day), []byte(content), 0o600))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	cleanEnv(t)

	out, _, err := execute(t, "list", "--input-dir", "puzzles")
	require.NoError(t, err)

	lines := input.Lines(out)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Report Repair")
	assert.Contains(t, lines[0], filepath.Join("puzzles", "day01.txt"))
	assert.Contains(t, lines[3], "Passport Processing")
}

func TestRun(t *testing.T) {
	t.Run("all days as json", func(t *testing.T) {
		cleanEnv(t)
		dir := writeInputs(t)

		out, _, err := execute(t, "run", "--input-dir", dir, "--format", "json", "--parallel")
		require.NoError(t, err)

		var reports []runner.Report
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 4)

		want := [][]int64{{514579, 241861950}, {2, 1}, {7, 336}, {1, 1}}
		for i, rep := range reports {
			assert.Equal(t, i+1, rep.Day)
			assert.Equal(t, want[i][0], rep.Parts[0].Answer.Value)
			assert.Equal(t, want[i][1], rep.Parts[1].Answer.Value)
			assert.Equal(t, reports[0].RunID, rep.RunID)
		}
	})

	t.Run("selected days keep argument order", func(t *testing.T) {
		cleanEnv(t)
		dir := writeInputs(t)

		out, _, err := execute(t, "run", "3", "1", "--input-dir", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Day 3: Toboggan Trajectory\n  Part 1: 7 (took ")
		assert.Contains(t, out, "  Part 1: 1721 * 299 = 514579 (took ")
		assert.Less(t, bytes.Index([]byte(out), []byte("Day 3")), bytes.Index([]byte(out), []byte("Day 1")))
	})

	t.Run("environment configures the run", func(t *testing.T) {
		cleanEnv(t)
		dir := writeInputs(t)
		t.Setenv("AOC_INPUT_DIR", dir)
		t.Setenv("AOC_OUTPUT_FORMAT", "yaml")
		t.Setenv("AOC_EXPENSE_TARGET", "1345")

		out, _, err := execute(t, "run", "1")
		require.NoError(t, err)

		var reports []runner.Report
		require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, runner.Explained(358314, "979 * 366 = 358314"), reports[0].Parts[0].Answer)
		assert.False(t, reports[0].Parts[1].Answer.Found)
	})

	t.Run("flags override the environment", func(t *testing.T) {
		cleanEnv(t)
		dir := writeInputs(t)
		t.Setenv("AOC_INPUT_DIR", filepath.Join(dir, "missing"))
		t.Setenv("AOC_OUTPUT_FORMAT", "yaml")

		out, _, err := execute(t, "run", "2", "--input-dir", dir, "-f", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "Day 2: Password Philosophy\n")
	})

	t.Run("env file", func(t *testing.T) {
		cleanEnv(t)
		dir := writeInputs(t)
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("AOC_INPUT_DIR="+dir+"\nAOC_OUTPUT_FORMAT=json\n"), 0o600))

		out, _, err := execute(t, "run", "4", "--env-file", envFile)
		require.NoError(t, err)

		var reports []runner.Report
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, "Passport Processing", reports[0].Title)
	})

	t.Run("logs go to stderr", func(t *testing.T) {
		cleanEnv(t)
		dir := writeInputs(t)
		t.Setenv("AOC_ENV", "production")

		out, logs, err := execute(t, "run", "3", "--input-dir", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Day 3")
		assert.NotContains(t, out, "puzzle part solved")

		assert.Contains(t, logs, `"msg":"puzzle part solved"`)
		assert.Contains(t, logs, `"env":"production"`)
		assert.Contains(t, logs, `"service":"aoc"`)
		assert.Contains(t, logs, `"run_id":`)
	})

	t.Run("unknown day", func(t *testing.T) {
		cleanEnv(t)
		_, _, err := execute(t, "run", "12", "--input-dir", t.TempDir())
		assert.ErrorIs(t, err, days.ErrUnknownDay)
	})

	t.Run("day is not a number", func(t *testing.T) {
		cleanEnv(t)
		_, _, err := execute(t, "run", "one", "--input-dir", t.TempDir())
		assert.ErrorIs(t, err, days.ErrUnknownDay)
	})

	t.Run("missing input", func(t *testing.T) {
		cleanEnv(t)
		_, _, err := execute(t, "run", "1", "--input-dir", t.TempDir())
		assert.ErrorIs(t, err, input.ErrFileNotFound)
	})

	t.Run("invalid format", func(t *testing.T) {
		cleanEnv(t)
		_, _, err := execute(t, "run", "--format", "xml")
		assert.ErrorIs(t, err, runner.ErrInvalidConfig)
	})

	t.Run("invalid log level", func(t *testing.T) {
		cleanEnv(t)
		t.Setenv("AOC_LOG_LEVEL", "loud")
		_, _, err := execute(t, "list")
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("negative expense target", func(t *testing.T) {
		cleanEnv(t)
		t.Setenv("AOC_EXPENSE_TARGET", "-5")
		_, _, err := execute(t, "list")
		assert.ErrorIs(t, err, days.ErrInvalidOptions)
	})
}
