package statustracker

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidStatus  = errors.New("invalid status")

	// ErrNoStatusRecords - у заказа нет ни одной записи в журнале.
	// Ожидаемое состояние, а не отказ хранилища.
	ErrNoStatusRecords = errors.New("no status records for order")
)
