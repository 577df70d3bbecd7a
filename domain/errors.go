package domain

import "errors"

var (
	// ErrNotFound is returned when a group, user or post lookup does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when an operation needs an actor and has none.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden is returned when the actor may not touch the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned when a unique username or slug is already taken.
	ErrConflict = errors.New("already exists")
)
