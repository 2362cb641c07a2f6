package imaging

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidMode     = errors.New("unknown capture mode")
)
