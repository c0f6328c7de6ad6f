package passport

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dmitrymomot/advent/pkg/validator"
)

const (
	minBirthYear      = 1920
	maxBirthYear      = 2002
	minIssueYear      = 2010
	maxIssueYear      = 2020
	minExpirationYear = 2020
	maxExpirationYear = 2030

	minHeightCM = 150
	maxHeightCM = 193
	minHeightIn = 59
	maxHeightIn = 76
)

var (
	eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

	// Unanchored: these match anywhere in the value.
	heightPattern     = regexp.MustCompile(`(\d{2,3})(in|cm)`)
	hairColorPattern  = regexp.MustCompile(`#[0-9a-f]{6}`)
	passportIDPattern = regexp.MustCompile(`\d{9}`)
)

// Rules returns the per-field checks applied by Validate.
func (p Passport) Rules() []validator.Rule {
	return []validator.Rule{
		validator.NumBetween(KeyBirthYear, p.byr, minBirthYear, maxBirthYear),
		validator.NumBetween(KeyIssueYear, p.iyr, minIssueYear, maxIssueYear),
		validator.NumBetween(KeyExpirationYear, p.eyr, minExpirationYear, maxExpirationYear),
		ValidHeight(KeyHeight, p.hgt),
		validator.ContainsRegexp(KeyHairColor, p.hcl, hairColorPattern, "a # followed by six lowercase hex digits"),
		validator.InListString(KeyEyeColor, p.ecl, eyeColors),
		validator.ContainsRegexp(KeyPassportID, p.pid, passportIDPattern, "a nine digit number"),
	}
}

// Validate runs every rule and returns validator.ValidationErrors naming each
// failing field, or nil.
func (p Passport) Validate() error {
	return validator.Apply(p.Rules()...)
}

// IsValid reports whether every field passes its format and range check.
func (p Passport) IsValid() bool {
	return p.Validate() == nil
}

// ValidHeight checks a height such as "183cm" or "60in": 150-193 for cm and
// 59-76 for in. The first two or three digit number followed by a unit is
// used.
func ValidHeight(field, value string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			m := heightPattern.FindStringSubmatch(value)
			if m == nil {
				return false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return false
			}
			switch m[2] {
			case "cm":
				return n >= minHeightCM && n <= maxHeightCM
			case "in":
				return n >= minHeightIn && n <= maxHeightIn
			default:
				return false
			}
		},
		Error: validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be %d-%dcm or %d-%din", minHeightCM, maxHeightCM, minHeightIn, maxHeightIn),
			Key:     "validation.height",
			Values: map[string]any{
				"field": field,
			},
		},
	}
}
