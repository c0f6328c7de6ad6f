package validator

import (
	"fmt"
	"regexp"
)

// ContainsPattern validates that a string contains a specific pattern anywhere.
func ContainsPattern(field, value string, pattern string, description string) Rule {
	return ContainsRegexp(field, value, regexp.MustCompile(pattern), description)
}

// ContainsRegexp is ContainsPattern with a precompiled expression.
// A match anywhere in value satisfies the rule.
func ContainsRegexp(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain %s", description),
			Key:     "validation.contains_pattern",
			Values: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}
