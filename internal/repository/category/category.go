package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

var ErrCategoryNotFound = errors.New("category not found")

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository - read-only источник категорий. Уникальный ключ ссылки
// у категории - имя, не числовой id.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Category, error) {
	query := `SELECT name, description
		FROM categories
		WHERE name = $1`

	var categoryEntity entities.Category
	err := r.querier.QueryRow(ctx, query, name).
		Scan(
			&categoryEntity.Name,
			&categoryEntity.Description,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}

		return nil, fmt.Errorf("unexpected category repository getbyname error: %w", err)
	}

	return &categoryEntity, nil
}

func (r *Repository) GetByNames(ctx context.Context, names []string) ([]*entities.Category, error) {
	query := `SELECT name, description
		FROM categories
		WHERE name = ANY($1)`

	rows, err := r.querier.Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("unexpected category repository getbynames error: %w", err)
	}
	defer rows.Close()

	categories := make([]*entities.Category, 0, len(names))
	for rows.Next() {
		var categoryEntity entities.Category
		err := rows.Scan(
			&categoryEntity.Name,
			&categoryEntity.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected category repository scan error: %w", err)
		}
		categories = append(categories, &categoryEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected category repository rows error: %w", err)
	}

	return categories, nil
}
