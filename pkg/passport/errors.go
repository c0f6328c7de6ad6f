package passport

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKey     = errors.New("missing mandatory key")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrMalformedToken = errors.New("malformed token")
)

// MissingKeyError names the first mandatory key, in declared order, absent
// from a record.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("passport: %s %q", ErrMissingKey, e.Key)
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// InvalidNumberError reports a mandatory numeric field that does not parse.
type InvalidNumberError struct {
	Key string
	Raw string
	Err error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("passport: %s for %q: %q", ErrInvalidNumber, e.Key, e.Raw)
}

func (e *InvalidNumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}

// MalformedTokenError reports a token without a key:value separator.
type MalformedTokenError struct {
	Token string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("passport: %s %q", ErrMalformedToken, e.Token)
}

func (e *MalformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}
