package input

import "errors"

var (
	ErrFileNotFound     = errors.New("input file not found")
	ErrFailedToReadFile = errors.New("failed to read input file")
	ErrIsDirectory      = errors.New("input path is a directory")
	ErrInvalidNumber    = errors.New("invalid number")
)
