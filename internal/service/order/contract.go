//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/resolver"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	GetAllByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	GetAllByProduct(ctx context.Context, productID int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type StatusTracker interface {
	Append(ctx context.Context, orderID string, status entities.Status, occurredAt *time.Time) (*entities.StatusTrackerRecord, error)
	CurrentStatuses(ctx context.Context, orderIDs []string) (map[string]entities.Status, error)
}

type Resolver interface {
	Resolve(ctx context.Context, targets ...reference.Referencing) ([]resolver.Diagnostic, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
