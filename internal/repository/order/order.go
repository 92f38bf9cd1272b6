package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/repository"
	orderservice "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)
	query := `INSERT INTO orders (id, user_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, product_id, quantity, created_at`

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.UserID,
		orderModel.ProductID,
		orderModel.Quantity,
		orderModel.CreatedAt,
	).Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.ProductID,
		&orderDB.Quantity,
		&orderDB.CreatedAt,
	)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, orderservice.ErrOrderAlreadyExists
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT id, user_id, product_id, quantity, created_at
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderDB.ID,
			&orderDB.UserID,
			&orderDB.ProductID,
			&orderDB.Quantity,
			&orderDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `
	SELECT id, user_id, product_id, quantity, created_at
	FROM orders
	ORDER BY created_at, id`

	return r.queryList(ctx, query)
}

func (r *Repository) GetAllByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	query := `
	SELECT id, user_id, product_id, quantity, created_at
	FROM orders
	WHERE user_id = $1
	ORDER BY created_at, id`

	return r.queryList(ctx, query, userID)
}

func (r *Repository) GetAllByProduct(ctx context.Context, productID int64) ([]entities.Order, error) {
	query := `
	SELECT id, user_id, product_id, quantity, created_at
	FROM orders
	WHERE product_id = $1
	ORDER BY created_at, id`

	return r.queryList(ctx, query, productID)
}

// Update применяет только заданные поля патча. Одиночный UPDATE по id,
// конкурентные апдейты одного заказа сериализует само хранилище.
func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModify)

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.UserID != nil {
		builder = builder.Set("user_id", orderModifyModel.UserID)
	}
	if orderModifyModel.ProductID != nil {
		builder = builder.Set("product_id", orderModifyModel.ProductID)
	}
	if orderModifyModel.Quantity != nil {
		builder = builder.Set("quantity", orderModifyModel.Quantity)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING id, user_id, product_id, quantity, created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderDB.ID,
			&orderDB.UserID,
			&orderDB.ProductID,
			&orderDB.Quantity,
			&orderDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM orders WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return orderservice.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.UserID,
			&orderDB.ProductID,
			&orderDB.Quantity,
			&orderDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return ToDomainList(orderModels), nil
}
