package domain

import "errors"

var (
	// ErrUserExists is returned when registering a username that is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown username and a failed
	// password check so login never reveals which half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when a record does not exist for the given id.
	ErrNotFound = errors.New("record not found")
	// ErrNoRecords signals an empty result set on list operations.
	ErrNoRecords = errors.New("no records found")
	// ErrIDMismatch is returned when the body id does not match the path id.
	ErrIDMismatch = errors.New("id mismatch")
)
