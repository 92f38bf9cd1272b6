//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_put_test
package order_put

import (
	"context"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
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
	Update(ctx context.Context, orderModify entities.OrderModify) (*ordercommands.Receipt, error)
}
