package statustracker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

// Tracker выводит текущий статус заказа из append-only журнала записей.
// Текущим считается статус записи с максимальным OccurredAt, при равных
// временах побеждает запись с большим ID - см. entities.StatusTrackerRecord.Before.
type Tracker struct {
	repository Repository
}

func New(repository Repository) *Tracker {
	return &Tracker{
		repository: repository,
	}
}

// Append создает новую неизменяемую запись. Если occurredAt не задан,
// берется текущее время. Существующие записи никогда не перезаписываются.
func (t *Tracker) Append(ctx context.Context, orderID string, status entities.Status, occurredAt *time.Time) (*entities.StatusTrackerRecord, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	at := time.Now().UTC()
	if occurredAt != nil {
		at = occurredAt.UTC()
	}

	record := entities.StatusTrackerRecord{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		Status:     status,
		OccurredAt: at,
	}

	created, err := t.repository.Append(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("append status record: %w", err)
	}
	return created, nil
}

func (t *Tracker) CurrentStatus(ctx context.Context, orderID string) (entities.Status, error) {
	if strings.TrimSpace(orderID) == "" {
		return "", ErrInvalidOrderID
	}

	records, err := t.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("get status records: %w", err)
	}
	if len(records) == 0 {
		return "", ErrNoStatusRecords
	}

	latest := records[0]
	for i := 1; i < len(records); i++ {
		if latest.Before(&records[i]) {
			latest = records[i]
		}
	}
	return latest.Status, nil
}

// CurrentStatuses - батч-вариант CurrentStatus: одна выборка по всем id,
// максимум на группу за один проход. В результате только заказы,
// у которых есть хотя бы одна запись.
func (t *Tracker) CurrentStatuses(ctx context.Context, orderIDs []string) (map[string]entities.Status, error) {
	if len(orderIDs) == 0 {
		return map[string]entities.Status{}, nil
	}

	seen := make(map[string]struct{}, len(orderIDs))
	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	records, err := t.repository.GetByOrderIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get status records: %w", err)
	}

	return reduceLatest(records), nil
}

// History возвращает полный журнал заказа по возрастанию OccurredAt,
// при равных временах - по ID записи. Пустой журнал - пустой слайс, не ошибка.
func (t *Tracker) History(ctx context.Context, orderID string) ([]entities.StatusTrackerRecord, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	records, err := t.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get status records: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Before(&records[j])
	})
	return records, nil
}

// HistoryByStatus возвращает id заказов, чей текущий статус равен заданному.
// Фильтровать сырые записи нельзя: запись с искомым статусом может быть
// уже не последней, поэтому сначала выводится текущий статус каждого заказа.
func (t *Tracker) HistoryByStatus(ctx context.Context, status entities.Status) ([]string, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	records, err := t.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get status records: %w", err)
	}

	current := reduceLatest(records)

	orderIDs := make([]string, 0, len(current))
	for orderID, currentStatus := range current {
		if currentStatus == status {
			orderIDs = append(orderIDs, orderID)
		}
	}
	sort.Strings(orderIDs)
	return orderIDs, nil
}

// StaleOrders возвращает записи заказов, которые находятся в одном из заданных
// статусов дольше, чем до olderThan. Сравнивается OccurredAt текущей записи.
func (t *Tracker) StaleOrders(ctx context.Context, statuses []entities.Status, olderThan time.Time) ([]entities.StatusTrackerRecord, error) {
	for _, status := range statuses {
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
		}
	}

	records, err := t.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get status records: %w", err)
	}

	latest := make(map[string]*entities.StatusTrackerRecord, len(records))
	for i := range records {
		record := &records[i]
		known, ok := latest[record.OrderID]
		if !ok || known.Before(record) {
			latest[record.OrderID] = record
		}
	}

	stale := make([]entities.StatusTrackerRecord, 0)
	for _, record := range latest {
		if !record.OccurredAt.Before(olderThan) {
			continue
		}
		for _, status := range statuses {
			if record.Status == status {
				stale = append(stale, *record)
				break
			}
		}
	}

	sort.Slice(stale, func(i, j int) bool {
		return stale[i].Before(&stale[j])
	})
	return stale, nil
}

func reduceLatest(records []entities.StatusTrackerRecord) map[string]entities.Status {
	latest := make(map[string]*entities.StatusTrackerRecord, len(records))
	for i := range records {
		record := &records[i]
		known, ok := latest[record.OrderID]
		if !ok || known.Before(record) {
			latest[record.OrderID] = record
		}
	}

	result := make(map[string]entities.Status, len(latest))
	for orderID, record := range latest {
		result[orderID] = record.Status
	}
	return result
}
