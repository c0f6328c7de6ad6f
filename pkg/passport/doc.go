// Package passport parses and validates passport-style records.
//
// A record is a block of whitespace separated key:value tokens, for example
//
//	ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
//	byr:1937 iyr:2017 cid:147 hgt:183cm
//
// Processing happens in two phases. Tokenize turns the block into a loose
// map of strings. New checks that every mandatory key is present and converts
// the numeric fields, returning an immutable Passport or a structural error
// (MissingKeyError, InvalidNumberError). Parse chains both steps.
//
// Structural success says nothing about the field contents. Validate and
// IsValid apply the per-field format and range rules, expressed as
// validator.Rule values, to an already constructed Passport. Semantic
// invalidity is a normal outcome, not an error of construction.
//
// The hair colour (hcl) and passport id (pid) checks match their pattern
// anywhere in the value rather than against the whole value: "#123abcz" and a
// ten digit pid are both accepted.
package passport
