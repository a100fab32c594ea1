package domain

import "errors"

// Domain errors
var (
	ErrFileRequired     = errors.New("file is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrSingleFileOnly   = errors.New("operation accepts exactly one file")
)
