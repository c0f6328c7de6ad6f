package validator

import (
	"fmt"
	"strings"
)

// CharCountBetween validates that char occurs in value at least min and at most max times.
func CharCountBetween(field, value string, char rune, min int, max int) Rule {
	return Rule{
		Check: func() bool {
			n := strings.Count(value, string(char))
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain %q between %d and %d times", char, min, max),
			Key:     "validation.char_count",
			Values: map[string]any{
				"field": field,
				"char":  string(char),
				"min":   min,
				"max":   max,
			},
		},
	}
}

// CharAtExactlyOne validates that exactly one of the given 1-based rune
// positions of value holds char. Positions outside the string never match.
func CharAtExactlyOne(field, value string, char rune, positions ...int) Rule {
	return Rule{
		Check: func() bool {
			runes := []rune(value)
			hits := 0
			for _, pos := range positions {
				if pos >= 1 && pos <= len(runes) && runes[pos-1] == char {
					hits++
				}
			}
			return hits == 1
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain %q at exactly one of positions %v", char, positions),
			Key:     "validation.char_position",
			Values: map[string]any{
				"field":     field,
				"char":      string(char),
				"positions": positions,
			},
		},
	}
}
