package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that the user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that the username is already taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrLeadNotFound indicates that the lead was not found or is deleted
	ErrLeadNotFound = errors.New("lead not found")

	// ErrTaskNotFound indicates that the task was not found or is deleted
	ErrTaskNotFound = errors.New("task not found")
)
