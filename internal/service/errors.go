package service

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Input field names used in FieldError.
const (
	FieldPlate          = "placa"
	FieldIdentityNumber = "cedula"
)

// FieldError reports which input failed validation and why. It matches
// ErrInvalidInput with errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}
