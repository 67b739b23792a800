package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownField is returned when an edit targets a key no section declares.
var ErrUnknownField = errors.New("unknown field")

// ErrFileField is returned when a file field is edited with a plain value, or
// when an attachment targets a field that does not hold files.
var ErrFileField = errors.New("field kind mismatch for file attachment")

// ErrBlobNotFound is returned when a blob store has no data for an ID.
var ErrBlobNotFound = errors.New("blob not found")

// ErrFileNotFound is returned when a detach names a file the field does not hold.
var ErrFileNotFound = errors.New("file not attached")

// ErrFileTooLarge is returned when an upload exceeds the configured limit.
var ErrFileTooLarge = errors.New("file too large")

// ErrInvalidMove is returned when a navigation request names no known action.
var ErrInvalidMove = errors.New("invalid move")
