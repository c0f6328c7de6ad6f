package passport

import "strconv"

// Record keys.
const (
	KeyBirthYear      = "byr"
	KeyIssueYear      = "iyr"
	KeyExpirationYear = "eyr"
	KeyHeight         = "hgt"
	KeyHairColor      = "hcl"
	KeyEyeColor       = "ecl"
	KeyPassportID     = "pid"
	KeyCountryID      = "cid"
)

// mandatoryKeys is scanned in order; the first absent key is the one reported.
var mandatoryKeys = [...]string{
	KeyBirthYear,
	KeyExpirationYear,
	KeyIssueYear,
	KeyPassportID,
	KeyEyeColor,
	KeyHairColor,
	KeyHeight,
}

// MandatoryKeys returns the keys required for construction, in the order
// they are checked.
func MandatoryKeys() []string {
	return append([]string(nil), mandatoryKeys[:]...)
}

// Passport is a structurally complete record. The zero value is not a valid
// record; build one with New or Parse.
type Passport struct {
	byr uint16
	eyr uint16
	iyr uint16
	pid string
	ecl string
	hcl string
	hgt string

	cid    uint8
	hasCID bool
}

// Parse tokenizes block and builds a Passport from the resulting fields.
func Parse(block string) (Passport, error) {
	fields, err := Tokenize(block)
	if err != nil {
		return Passport{}, err
	}
	return New(fields)
}

// New builds a Passport from loose key/value fields.
//
// Presence of every mandatory key is checked before any conversion. The
// numeric fields are then parsed in declared order and the first failure is
// returned. An unparseable optional country id is treated as absent.
func New(fields map[string]string) (Passport, error) {
	for _, key := range mandatoryKeys {
		if _, ok := fields[key]; !ok {
			return Passport{}, &MissingKeyError{Key: key}
		}
	}

	byr, err := parseYear(fields, KeyBirthYear)
	if err != nil {
		return Passport{}, err
	}
	eyr, err := parseYear(fields, KeyExpirationYear)
	if err != nil {
		return Passport{}, err
	}
	iyr, err := parseYear(fields, KeyIssueYear)
	if err != nil {
		return Passport{}, err
	}

	p := Passport{
		byr: byr,
		eyr: eyr,
		iyr: iyr,
		pid: fields[KeyPassportID],
		ecl: fields[KeyEyeColor],
		hcl: fields[KeyHairColor],
		hgt: fields[KeyHeight],
	}
	p.cid, p.hasCID = optionalCountryID(fields)

	return p, nil
}

func parseYear(fields map[string]string, key string) (uint16, error) {
	raw := fields[key]
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, &InvalidNumberError{Key: key, Raw: raw, Err: err}
	}
	return uint16(n), nil
}

// optionalCountryID swallows conversion failures: a bad cid is the same as
// no cid.
func optionalCountryID(fields map[string]string) (uint8, bool) {
	raw, ok := fields[KeyCountryID]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

func (p Passport) BirthYear() uint16 {
	return p.byr
}

func (p Passport) IssueYear() uint16 {
	return p.iyr
}

func (p Passport) ExpirationYear() uint16 {
	return p.eyr
}

func (p Passport) ID() string {
	return p.pid
}

func (p Passport) EyeColor() string {
	return p.ecl
}

func (p Passport) HairColor() string {
	return p.hcl
}

func (p Passport) Height() string {
	return p.hgt
}

// CountryID returns the optional country id and whether it was present and
// numeric.
func (p Passport) CountryID() (uint8, bool) {
	return p.cid, p.hasCID
}
