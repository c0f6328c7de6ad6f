package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Key:     "validation.min",
			Values: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// NumBetween validates that a numeric value lies in the inclusive range [min, max].
func NumBetween[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
			Key:     "validation.between",
			Values: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
