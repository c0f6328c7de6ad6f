// Package toboggan counts the trees hit while sledding down a map that
// repeats endlessly to the right.
package toboggan

import (
	"errors"
	"fmt"
)

const (
	Open = '.'
	Tree = '#'
)

var (
	ErrEmptyMap      = errors.New("empty map")
	ErrRaggedMap     = errors.New("map rows differ in width")
	ErrInvalidSlope  = errors.New("slope must move down")
	ErrStartOutOfMap = errors.New("start position is outside the map")
)

// Position is a zero-based cell on the map.
type Position struct {
	Row, Col int
}

// Slope is the move made on every step.
type Slope struct {
	Right, Down int
}

// Map is one horizontal tile of the slope.
type Map struct {
	trees [][]bool
	width int
}

// Parse builds a Map from equally wide rows where '#' marks a tree and any
// other character is open ground.
func Parse(lines []string) (*Map, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMap
	}

	width := len([]rune(lines[0]))
	trees := make([][]bool, len(lines))
	for i, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, i+1, len(row), width)
		}
		trees[i] = make([]bool, width)
		for j, c := range row {
			trees[i][j] = c == Tree
		}
	}

	return &Map{trees: trees, width: width}, nil
}

func (m *Map) Height() int {
	return len(m.trees)
}

func (m *Map) Width() int {
	return m.width
}

// TreeAt reports whether the cell holds a tree, wrapping the column.
func (m *Map) TreeAt(p Position) bool {
	if p.Row < 0 || p.Row >= len(m.trees) {
		return false
	}
	return m.trees[p.Row][wrap(p.Col, m.width)]
}

// Trees counts the trees landed on when moving from start by slope until the
// last row is reached. The start cell itself is not counted, and a step that
// would leave the bottom of the map ends the ride.
func (m *Map) Trees(start Position, slope Slope) (int, error) {
	if slope.Down < 1 {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidSlope, slope)
	}
	if start.Row < 0 || start.Row >= m.Height() {
		return 0, fmt.Errorf("%w: %+v", ErrStartOutOfMap, start)
	}

	count := 0
	pos := start
	for pos.Row < m.Height()-1 {
		pos.Row += slope.Down
		pos.Col += slope.Right
		if pos.Row >= m.Height() {
			break
		}
		if m.TreeAt(pos) {
			count++
		}
	}

	return count, nil
}

// TreeProduct multiplies the tree counts of every slope.
func (m *Map) TreeProduct(start Position, slopes ...Slope) (int, error) {
	product := 1
	for _, s := range slopes {
		n, err := m.Trees(start, s)
		if err != nil {
			return 0, err
		}
		product *= n
	}
	return product, nil
}

func wrap(col, width int) int {
	col %= width
	if col < 0 {
		col += width
	}
	return col
}
