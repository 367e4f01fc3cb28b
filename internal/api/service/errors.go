package service

import "errors"

var (
	ErrUsernameTaken = errors.New("Username already taken")
	ErrEmailTaken    = errors.New("Email already registered")

	// ErrInvalidCredentials covers a bad password at login as well as any
	// token that fails verification or names a user that no longer exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound = errors.New("User not found")
	ErrPlayNotFound = errors.New("Play not found")
	ErrForbidden    = errors.New("Not your play")
)
