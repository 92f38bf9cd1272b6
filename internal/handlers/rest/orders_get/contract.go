//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_get_test
package orders_get

import (
	"context"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetAll(ctx context.Context) ([]entities.Order, error)
	GetAllByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	GetAllByProduct(ctx context.Context, productID int64) ([]entities.Order, error)
}
