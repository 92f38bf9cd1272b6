//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_delete_test
package order_delete

import (
	"context"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/ordercommands"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Delete(ctx context.Context, orderID string) (*ordercommands.Receipt, error)
}
