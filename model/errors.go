package model

import "errors"

var (
	// ErrInvalidInput is wrapped by every validation failure. Validation
	// happens before any sampling, so a failed call leaves the model as it
	// was.
	ErrInvalidInput = errors.New("guidedlda: invalid input")
	ErrNotFitted    = errors.New("guidedlda: model is not fitted")
)
