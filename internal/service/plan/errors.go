package plan

import "errors"

var (
	ErrNotFound        = errors.New("treatment plan not found")
	ErrItemNotFound    = errors.New("plan item not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrTitleRequired   = errors.New("plan title is required")
	ErrNoItems         = errors.New("plan needs at least one item")
)
