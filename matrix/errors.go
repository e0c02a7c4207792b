package matrix

import "errors"

var (
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	ErrBadShape        = errors.New("matrix: non-positive dimension not allowed")
	// ErrInvariantViolation is raised when a count would drop below zero.
	// Correct samplers never trigger it.
	ErrInvariantViolation = errors.New("matrix: count decremented below zero")
)
