package laborder

import "errors"

var (
	ErrNotFound        = errors.New("lab order not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrItemRequired    = errors.New("order item is required")
)
