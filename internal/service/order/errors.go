package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidQuantity       = errors.New("invalid quantity")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
)
