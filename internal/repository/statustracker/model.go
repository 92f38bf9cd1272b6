package statustracker

import "time"

type StatusTrackerRecordDB struct {
	ID         string
	OrderID    string
	Status     string
	OccurredAt time.Time
}
