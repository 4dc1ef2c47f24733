package schema

import "errors"

var (
	// ErrInvalidRequest indicates a malformed request payload.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmptyCommand indicates an exec request with a blank line.
	ErrEmptyCommand = errors.New("empty command")
	// ErrUnknownTheme indicates a theme outside the supported set.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrNotFound indicates an unknown command, file, directory, or record.
	ErrNotFound = errors.New("not found")
	// ErrNotReady indicates a content collection has not loaded yet.
	ErrNotReady = errors.New("not ready")
	// ErrPermissionDenied indicates a privileged command was refused.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidContent indicates a portfolio document failed validation.
	ErrInvalidContent = errors.New("invalid content")
)
