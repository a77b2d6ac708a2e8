package auth

import "time"

// User is an account row. Profile data lives in the profile domain;
// this carries only what sign-in needs.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
