package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

var ErrReviewNotFound = errors.New("review not found")

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository - read-only источник отзывов. User и Product отдаются
// заглушками, их разворачивает резолвер следующим проходом.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Review, error) {
	query := `SELECT id, user_id, product_id, rating, content, created_at
		FROM reviews
		WHERE id = $1`

	reviewEntity, err := scanReview(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}

		return nil, fmt.Errorf("unexpected review repository getbyid error: %w", err)
	}

	return reviewEntity, nil
}

func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.Review, error) {
	query := `SELECT id, user_id, product_id, rating, content, created_at
		FROM reviews
		WHERE id = ANY($1)`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository getbyids error: %w", err)
	}
	defer rows.Close()

	reviews := make([]*entities.Review, 0, len(ids))
	for rows.Next() {
		reviewEntity, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected review repository scan error: %w", err)
		}
		reviews = append(reviews, reviewEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected review repository rows error: %w", err)
	}

	return reviews, nil
}

func scanReview(row pgx.Row) (*entities.Review, error) {
	var reviewEntity entities.Review
	var userID, productID int64

	err := row.Scan(
		&reviewEntity.ID,
		&userID,
		&productID,
		&reviewEntity.Rating,
		&reviewEntity.Content,
		&reviewEntity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	reviewEntity.User = entities.UserStub(userID)
	reviewEntity.Product = entities.ProductStub(productID)
	return &reviewEntity, nil
}
