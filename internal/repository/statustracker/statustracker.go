package statustracker

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository - append-only хранилище журнала статусов.
// UPDATE и DELETE по таблице не выполняются.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, record entities.StatusTrackerRecord) (*entities.StatusTrackerRecord, error) {
	recordModel := FromDomain(&record)
	query := `INSERT INTO status_tracker_records (id, order_id, status, occurred_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, status, occurred_at`

	var recordDB StatusTrackerRecordDB
	err := r.querier.QueryRow(
		ctx,
		query,
		recordModel.ID,
		recordModel.OrderID,
		recordModel.Status,
		recordModel.OccurredAt,
	).Scan(
		&recordDB.ID,
		&recordDB.OrderID,
		&recordDB.Status,
		&recordDB.OccurredAt,
	)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("status record id collision: %w", err)
		}
		return nil, fmt.Errorf("unexpected statustracker repository append error: %w", err)
	}

	return ToDomain(&recordDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) ([]entities.StatusTrackerRecord, error) {
	query := `
	SELECT id, order_id, status, occurred_at
	FROM status_tracker_records
	WHERE order_id = $1
	ORDER BY occurred_at, id`

	return r.queryList(ctx, query, orderID)
}

func (r *Repository) GetByOrderIDs(ctx context.Context, orderIDs []string) ([]entities.StatusTrackerRecord, error) {
	query := `
	SELECT id, order_id, status, occurred_at
	FROM status_tracker_records
	WHERE order_id = ANY($1)
	ORDER BY occurred_at, id`

	return r.queryList(ctx, query, orderIDs)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.StatusTrackerRecord, error) {
	query := `
	SELECT id, order_id, status, occurred_at
	FROM status_tracker_records
	ORDER BY occurred_at, id`

	return r.queryList(ctx, query)
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.StatusTrackerRecord, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected statustracker repository list error: %w", err)
	}
	defer rows.Close()

	recordModels := make([]StatusTrackerRecordDB, 0, 16)
	for rows.Next() {
		var recordDB StatusTrackerRecordDB
		err := rows.Scan(
			&recordDB.ID,
			&recordDB.OrderID,
			&recordDB.Status,
			&recordDB.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected statustracker repository scan error: %w", err)
		}
		recordModels = append(recordModels, recordDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected statustracker repository rows error: %w", err)
	}

	return ToDomainList(recordModels), nil
}
