package order

import "time"

type OrderDB struct {
	ID        string
	UserID    int64
	ProductID int64
	Quantity  int32
	CreatedAt time.Time
}

type OrderModifyDB struct {
	ID        *string
	UserID    *int64
	ProductID *int64
	Quantity  *int32
	CreatedAt *time.Time
}
