// Package validator provides small, composable validation rules used by the
// puzzle packages to describe record and policy checks declaratively.
//
// A Rule pairs a boolean Check function with the ValidationError reported when
// the check fails. Rules are evaluated with Apply, which runs every rule (there
// is no short-circuit) and aggregates the failures into a ValidationErrors
// slice that satisfies the error interface.
//
// # Architecture
//
// Each source file groups a family of rules:
//   - numeric_rules.go  – inclusive bounds for any Numeric type
//   - pattern_rules.go  – regular expression checks (anchored or substring)
//   - choice_rules.go   – membership in a fixed set of values
//   - password_rules.go – character-count and character-position policies
//
// Every exported rule constructor simply returns a Rule value; the package has
// no global mutable state and is safe for concurrent use.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.NumBetween("byr", birthYear, 1920, 2002),
//	    validator.InListString("ecl", eyeColor, []string{"amb", "blu"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // report field-level failures
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed via errors.Is, so callers can
// detect validation problems without inspecting individual fields.
package validator
