package perio

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNoReadings      = errors.New("exam needs at least one tooth reading")
	ErrInvalidDepth    = errors.New("probing depth cannot be negative")
)
