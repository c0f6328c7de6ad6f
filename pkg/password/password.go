// Package password checks corporate password database entries against the
// two policy interpretations used by the sled rental shop and the toboggan
// rental shop.
//
// An entry line looks like "1-3 a: abcde": two numbers, a letter and the
// password. The sled rental policy reads the numbers as the minimum and
// maximum occurrences of the letter. The toboggan policy reads them as
// 1-based positions of which exactly one must hold the letter.
package password

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/dmitrymomot/advent/pkg/validator"
)

var ErrMalformedEntry = errors.New("malformed password entry")

var entryPattern = regexp.MustCompile(`^(\d+)-(\d+) ([A-Za-z]): (.*)$`)

// Policy is the "<n1>-<n2> <letter>" prefix of an entry.
type Policy struct {
	Lo, Hi int
	Letter rune
}

// Entry is a policy together with the password it applies to.
type Entry struct {
	Policy   Policy
	Password string
}

// ParseEntry parses a single database line.
func ParseEntry(line string) (Entry, error) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}

	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q: %v", ErrMalformedEntry, line, err)
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q: %v", ErrMalformedEntry, line, err)
	}

	return Entry{
		Policy:   Policy{Lo: lo, Hi: hi, Letter: rune(m[3][0])},
		Password: m[4],
	}, nil
}

// ParseEntries parses every line, stopping at the first malformed one.
func ParseEntries(lines []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		e, err := ParseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// SledRentalRule requires the letter to occur between Lo and Hi times inclusive.
func (e Entry) SledRentalRule() validator.Rule {
	return validator.CharCountBetween("password", e.Password, e.Policy.Letter, e.Policy.Lo, e.Policy.Hi)
}

// TobogganRule requires exactly one of the positions Lo and Hi to hold the letter.
func (e Entry) TobogganRule() validator.Rule {
	return validator.CharAtExactlyOne("password", e.Password, e.Policy.Letter, e.Policy.Lo, e.Policy.Hi)
}

func (e Entry) SledRental() bool {
	return validator.Valid(e.SledRentalRule())
}

func (e Entry) Toboggan() bool {
	return validator.Valid(e.TobogganRule())
}

// Count returns how many entries satisfy policy.
func Count(entries []Entry, policy func(Entry) bool) int {
	n := 0
	for _, e := range entries {
		if policy(e) {
			n++
		}
	}
	return n
}
