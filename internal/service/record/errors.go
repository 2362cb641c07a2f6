package record

import "errors"

var (
	ErrNotFound        = errors.New("medical record not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrTypeRequired    = errors.New("record type is required")
)
