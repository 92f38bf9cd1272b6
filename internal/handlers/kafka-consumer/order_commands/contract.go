//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_commands_test
package order_commands

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

// OrderService - синхронная сторона, к которой воркер применяет команды.
type OrderService interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	ChangeStatus(ctx context.Context, orderID string, status entities.Status) (*entities.Order, error)
	DeleteByID(ctx context.Context, orderID string) error
}

type (
	ExecuteFn      func(ctx context.Context, command ordercommands.Command) error
	HandlerFactory interface {
		GetHandler(commandType ordercommands.CommandType) (ExecuteFn, error)
	}
)
