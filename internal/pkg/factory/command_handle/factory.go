package command_handle

import (
	"context"
	"errors"
	"fmt"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	ordercmdhandler "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/kafka-consumer/order_commands"
	orderservice "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/order"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/ordercommands"
)

type CommandHandlerFactory struct {
	orderService ordercmdhandler.OrderService
}

func NewCommandHandlerFactory(orderService ordercmdhandler.OrderService) *CommandHandlerFactory {
	return &CommandHandlerFactory{
		orderService: orderService,
	}
}

func (f *CommandHandlerFactory) GetHandler(commandType ordercommands.CommandType) (ordercmdhandler.ExecuteFn, error) {
	switch commandType {
	case ordercommands.CommandCreateOrder:
		return f.createHandler, nil
	case ordercommands.CommandUpdateOrder:
		return f.updateHandler, nil
	case ordercommands.CommandChangeStatus:
		return f.changeStatusHandler, nil
	case ordercommands.CommandDeleteOrder:
		return f.deleteHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ordercmdhandler.ErrUndefinedCommand, commandType)
	}
}

func (f *CommandHandlerFactory) createHandler(ctx context.Context, command ordercommands.Command) error {
	orderModify := entities.OrderModify{
		ID:        &command.OrderID,
		UserID:    command.UserID,
		ProductID: command.ProductID,
		Quantity:  command.Quantity,
	}

	_, err := f.orderService.Create(ctx, orderModify)
	if err != nil {
		// повторная доставка create с тем же id - команда уже применена
		if errors.Is(err, orderservice.ErrOrderAlreadyExists) {
			return nil
		}
		return fmt.Errorf("create order %s: %w", command.OrderID, err)
	}
	return nil
}

func (f *CommandHandlerFactory) updateHandler(ctx context.Context, command ordercommands.Command) error {
	orderModify := entities.OrderModify{
		ID:        &command.OrderID,
		UserID:    command.UserID,
		ProductID: command.ProductID,
		Quantity:  command.Quantity,
	}

	_, err := f.orderService.Update(ctx, orderModify)
	if err != nil {
		return fmt.Errorf("update order %s: %w", command.OrderID, err)
	}
	return nil
}

func (f *CommandHandlerFactory) changeStatusHandler(ctx context.Context, command ordercommands.Command) error {
	if command.Status == nil {
		return fmt.Errorf("change status for order %s: missing status", command.OrderID)
	}

	_, err := f.orderService.ChangeStatus(ctx, command.OrderID, *command.Status)
	if err != nil {
		return fmt.Errorf("change status for order %s: %w", command.OrderID, err)
	}
	return nil
}

func (f *CommandHandlerFactory) deleteHandler(ctx context.Context, command ordercommands.Command) error {
	err := f.orderService.DeleteByID(ctx, command.OrderID)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", command.OrderID, err)
	}
	return nil
}
