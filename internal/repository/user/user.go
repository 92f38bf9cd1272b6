package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

var ErrUserNotFound = errors.New("user not found")

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository - read-only источник referenceable-пользователей.
// Запись идет через user-service, здесь только выборки для резолвера.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT id, username, email, created_at
		FROM users
		WHERE id = $1`

	var userEntity entities.User
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userEntity.ID,
			&userEntity.Username,
			&userEntity.Email,
			&userEntity.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return &userEntity, nil
}

func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.User, error) {
	query := `SELECT id, username, email, created_at
		FROM users
		WHERE id = ANY($1)`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getbyids error: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0, len(ids))
	for rows.Next() {
		var userEntity entities.User
		err := rows.Scan(
			&userEntity.ID,
			&userEntity.Username,
			&userEntity.Email,
			&userEntity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository scan error: %w", err)
		}
		users = append(users, &userEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository rows error: %w", err)
	}

	return users, nil
}
