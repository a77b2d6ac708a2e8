package profile

import "errors"

var (
	// ErrProfileNotFound indicates the user has no profile row.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidInput indicates invalid profile input.
	ErrInvalidInput = errors.New("invalid profile input")
	// ErrUnknownCode indicates an unrecognized redemption code.
	ErrUnknownCode = errors.New("unknown redemption code")
	// ErrAlreadyRedeemed indicates the code's reward is already unlocked.
	ErrAlreadyRedeemed = errors.New("code already redeemed")
)
