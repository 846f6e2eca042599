package domain

import "errors"

var (
	// ErrTaskNotFound covers both a missing task and an owner mismatch, so a
	// caller cannot probe for other users' task IDs.
	ErrTaskNotFound = errors.New("task not found or access denied")

	ErrInvalidCategory = errors.New("category must be one of: daily, weekly, weekend, monthly")
	ErrInvalidStatus   = errors.New("invalid task status")

	// ErrAlreadyCompleted is returned when a complete/skip races another
	// transition and the conditional update touches no row.
	ErrAlreadyCompleted = errors.New("task already completed")
)
