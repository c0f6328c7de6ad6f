package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Path returns the conventional input file path for a puzzle day.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// ReadFile returns the whole file as a string.
func ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return string(data), nil
}

// Lines splits s on newlines, strips carriage returns and drops the empty
// line produced by a trailing newline.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Ints parses one integer per line. Surrounding whitespace is ignored.
func Ints(s string) ([]int, error) {
	lines := Lines(s)
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil {
			return nil, fmt.Errorf("%w on line %d: %q", ErrInvalidNumber, i+1, l)
		}
		out = append(out, n)
	}
	return out, nil
}

// Blocks groups consecutive non-blank lines. Blank or whitespace-only lines
// separate blocks; the lines of a block are joined with "\n".
func Blocks(s string) []string {
	var (
		blocks  []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, l := range Lines(s) {
		if strings.TrimSpace(l) == "" {
			flush()
			continue
		}
		current = append(current, l)
	}
	flush()

	return blocks
}
