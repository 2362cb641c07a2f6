package appointment

import "errors"

var (
	ErrNotFound        = errors.New("appointment not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidStatus   = errors.New("invalid appointment status")
)
