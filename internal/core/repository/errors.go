package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when the storage layer rejects a user
	// insert on the username UNIQUE constraint. Uniqueness is enforced by the
	// store rather than checked in application code, so two concurrent
	// inserts cannot race past a check.
	ErrDuplicateUsername = errors.New("username already exists")
)
