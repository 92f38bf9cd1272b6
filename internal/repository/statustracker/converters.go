package statustracker

import (
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

func ToDomain(r *StatusTrackerRecordDB) *entities.StatusTrackerRecord {
	if r == nil {
		return nil
	}

	return &entities.StatusTrackerRecord{
		ID:         r.ID,
		OrderID:    r.OrderID,
		Status:     entities.Status(r.Status),
		OccurredAt: r.OccurredAt,
	}
}

func FromDomain(record *entities.StatusTrackerRecord) *StatusTrackerRecordDB {
	if record == nil {
		return nil
	}

	return &StatusTrackerRecordDB{
		ID:         record.ID,
		OrderID:    record.OrderID,
		Status:     record.Status.String(),
		OccurredAt: record.OccurredAt,
	}
}

func ToDomainList(recordsDB []StatusTrackerRecordDB) []entities.StatusTrackerRecord {
	if len(recordsDB) == 0 {
		return []entities.StatusTrackerRecord{}
	}

	result := make([]entities.StatusTrackerRecord, len(recordsDB))
	for i, recordDB := range recordsDB {
		result[i] = *ToDomain(&recordDB)
	}
	return result
}
