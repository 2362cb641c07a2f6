package inventory

import "errors"

var (
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrNameRequired    = errors.New("item name is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
