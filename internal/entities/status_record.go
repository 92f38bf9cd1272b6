package entities

import "time"

// StatusTrackerRecord - одна запись append-only журнала статусов заказа.
// После создания запись не изменяется и не удаляется.
type StatusTrackerRecord struct {
	ID         string
	OrderID    string
	Status     Status
	OccurredAt time.Time
}

// Before задает детерминированный полный порядок записей: по OccurredAt,
// при равных временах - по ID записи. Используется и историей, и
// выводом текущего статуса (при ничьей побеждает большая запись).
func (r *StatusTrackerRecord) Before(other *StatusTrackerRecord) bool {
	if !r.OccurredAt.Equal(other.OccurredAt) {
		return r.OccurredAt.Before(other.OccurredAt)
	}
	return r.ID < other.ID
}
