package validator

import "errors"

// ErrValidationFailed is matched by any non-empty ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")
