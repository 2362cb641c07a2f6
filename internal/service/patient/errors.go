package patient

import "errors"

var (
	ErrNotFound      = errors.New("patient not found")
	ErrNameRequired  = errors.New("patient name is required")
	ErrInvalidPhone  = errors.New("phone number is not valid")
	ErrInvalidStatus = errors.New("invalid patient status")
	ErrInvalidRisk   = errors.New("invalid risk level")
)
