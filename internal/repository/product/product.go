package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

var ErrProductNotFound = errors.New("product not found")

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository - read-only источник referenceable-товаров. Категория
// возвращается заглушкой: резолвер разворачивает один уровень ссылок
// за проход, следующий уровень - отдельный проход.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `SELECT id, name, price, category_name, created_at
		FROM products
		WHERE id = $1`

	productEntity, err := scanProduct(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	return productEntity, nil
}

func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.Product, error) {
	query := `SELECT id, name, price, category_name, created_at
		FROM products
		WHERE id = ANY($1)`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
	}
	defer rows.Close()

	products := make([]*entities.Product, 0, len(ids))
	for rows.Next() {
		productEntity, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository scan error: %w", err)
		}
		products = append(products, productEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository rows error: %w", err)
	}

	return products, nil
}

func scanProduct(row pgx.Row) (*entities.Product, error) {
	var productEntity entities.Product
	var categoryName *string

	err := row.Scan(
		&productEntity.ID,
		&productEntity.Name,
		&productEntity.Price,
		&categoryName,
		&productEntity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryName != nil {
		productEntity.Category = entities.CategoryStub(*categoryName)
	}
	return &productEntity, nil
}
