package snippet

import "errors"

var (
	// ErrWordCountOutOfRange indicates the contribution is outside the 50-100 word bounds.
	ErrWordCountOutOfRange = errors.New("contribution must be between 50 and 100 words")
	// ErrProjectNotFound indicates the owning project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
)
