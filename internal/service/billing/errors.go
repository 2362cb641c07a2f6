package billing

import "errors"

var (
	ErrNotFound        = errors.New("invoice not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrNoLineItems     = errors.New("invoice needs at least one line item")
	ErrNegativeAmount  = errors.New("line item amount cannot be negative")
)
