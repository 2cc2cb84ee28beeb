package model

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrValidation is returned when a request is well-formed but violates a
	// domain rule (empty challenge reason, re-submitting a completed
	// participation, answering a question from another quiz).
	ErrValidation = errors.New("validation failed")
)
