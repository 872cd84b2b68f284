package core

import "errors"

var ErrInvalidArgs = errors.New("invalid arguments")

// Auth errors
var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Task errors
var (
	ErrEmptyTask    = errors.New("empty task")
	ErrTaskNotFound = errors.New("not found")
)

// Export errors
var (
	ErrInvalidFilter     = errors.New("invalid export filter")
	ErrExportUnavailable = errors.New("export engine unavailable")
)
