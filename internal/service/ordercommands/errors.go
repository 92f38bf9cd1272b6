package ordercommands

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidQuantity       = errors.New("invalid quantity")
)
