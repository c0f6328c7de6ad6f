package runner_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/advent/pkg/runner"
)

func sampleReports() []runner.Report {
	return []runner.Report{
		{
			RunID: "run-1",
			Day:   1,
			Title: "Report Repair",
			Input: "inputs/day01.txt",
			Parts: []runner.PartReport{
				{Name: "Part 1", Answer: runner.Explained(514579, "1721 * 299 = 514579"), Elapsed: 1500 * time.Microsecond, Took: "1ms 500µs"},
				{Name: "Part 2", Answer: runner.NotFound("Did not find a matching triplet"), Elapsed: 250 * time.Microsecond, Took: "250µs"},
			},
		},
		{
			RunID: "run-1",
			Day:   3,
			Title: "Toboggan Trajectory",
			Input: "inputs/day03.txt",
			Parts: []runner.PartReport{
				{Name: "Part 1", Answer: runner.Int(7), Elapsed: 2 * time.Second, Took: "2s 0µs"},
			},
		},
	}
}

func TestRender(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runner.Render(&buf, runner.FormatText, sampleReports()))

		want := "Day 1: Report Repair\n" +
			"  Part 1: 1721 * 299 = 514579 (took 1ms 500µs)\n" +
			"  Part 2: Did not find a matching triplet (took 250µs)\n" +
			"\n" +
			"Day 3: Toboggan Trajectory\n" +
			"  Part 1: 7 (took 2s 0µs)\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runner.Render(&buf, runner.FormatJSON, sampleReports()))

		var got []runner.Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, sampleReports(), got)
		assert.Contains(t, buf.String(), `"run_id": "run-1"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runner.Render(&buf, runner.FormatYAML, sampleReports()))

		var got []runner.Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, sampleReports(), got)
		assert.Contains(t, buf.String(), "title: Report Repair")
	})

	t.Run("empty text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runner.Render(&buf, runner.FormatText, nil))
		assert.Empty(t, buf.String())
	})

	t.Run("unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		err := runner.Render(&buf, "xml", sampleReports())
		assert.ErrorIs(t, err, runner.ErrUnsupportedFormat)
		assert.Empty(t, buf.String())
	})
}

func TestAnswer_String(t *testing.T) {
	assert.Equal(t, "42", runner.Int(42).String())
	assert.Equal(t, "6 * 7 = 42", runner.Explained(42, "6 * 7 = 42").String())
	assert.Equal(t, "no solution", runner.NotFound("no solution").String())
	assert.False(t, runner.NotFound("no solution").Found)
}
