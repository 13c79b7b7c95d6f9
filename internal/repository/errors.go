package repository

import "errors"

var (
	// ErrDuplicateKey is returned when a username or email is already taken.
	ErrDuplicateKey = errors.New("username or email already exists")

	// ErrNotFound is returned when a user or note does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
