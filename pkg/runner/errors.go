package runner

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid runner configuration")
	ErrNoParts           = errors.New("puzzle has no parts")
	ErrPartFailed        = errors.New("puzzle part failed")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
