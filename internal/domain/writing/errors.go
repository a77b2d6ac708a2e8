package writing

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectLocked indicates another user holds the writer lock.
	ErrProjectLocked = errors.New("someone else is currently writing")
	// ErrProjectCompleted indicates the story has already been finished.
	ErrProjectCompleted = errors.New("project is already completed")
	// ErrProjectFull indicates the snippet cap has been reached.
	ErrProjectFull = errors.New("project has reached its maximum number of snippets")
)
