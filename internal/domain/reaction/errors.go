package reaction

import "errors"

var (
	// ErrInvalidReaction indicates an unknown reaction type.
	ErrInvalidReaction = errors.New("invalid reaction type")
	// ErrProjectNotFound indicates the story doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrStoryNotCompleted indicates the story is still being written.
	ErrStoryNotCompleted = errors.New("reactions are only allowed on completed stories")
)
