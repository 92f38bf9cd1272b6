package ordercommands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

// Service - командная (write) сторона заказов в распределенном деплое.
// Каждая операция публикует команду в брокер и возвращает Receipt:
// команда принята, но еще не применена. Мутированный объект этим путем
// не возвращается никогда.
type Service struct {
	publisher Publisher
}

func New(publisher Publisher) *Service {
	return &Service{
		publisher: publisher,
	}
}

func (s *Service) Create(ctx context.Context, orderModify entities.OrderModify) (*Receipt, error) {
	if orderModify.UserID == nil ||
		orderModify.ProductID == nil ||
		orderModify.Quantity == nil {
		return nil, ErrMissingRequiredFields
	}
	if *orderModify.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// id заказа выдается на публикации, чтобы Receipt было к чему привязать
	orderID := uuid.NewString()
	command := Command{
		Type:      CommandCreateOrder,
		OrderID:   orderID,
		UserID:    orderModify.UserID,
		ProductID: orderModify.ProductID,
		Quantity:  orderModify.Quantity,
	}
	return s.publish(ctx, command)
}

func (s *Service) Update(ctx context.Context, orderModify entities.OrderModify) (*Receipt, error) {
	if orderModify.ID == nil || !isValidOrderID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}
	if orderModify.UserID == nil &&
		orderModify.ProductID == nil &&
		orderModify.Quantity == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if orderModify.Quantity != nil && *orderModify.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	command := Command{
		Type:      CommandUpdateOrder,
		OrderID:   *orderModify.ID,
		UserID:    orderModify.UserID,
		ProductID: orderModify.ProductID,
		Quantity:  orderModify.Quantity,
	}
	return s.publish(ctx, command)
}

func (s *Service) ChangeStatus(ctx context.Context, orderID string, status entities.Status) (*Receipt, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	command := Command{
		Type:    CommandChangeStatus,
		OrderID: orderID,
		Status:  &status,
	}
	return s.publish(ctx, command)
}

func (s *Service) Delete(ctx context.Context, orderID string) (*Receipt, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	command := Command{
		Type:    CommandDeleteOrder,
		OrderID: orderID,
	}
	return s.publish(ctx, command)
}

func (s *Service) publish(ctx context.Context, command Command) (*Receipt, error) {
	command.ID = uuid.NewString()
	command.IssuedAt = time.Now().UTC()

	if err := s.publisher.Publish(ctx, command); err != nil {
		return nil, fmt.Errorf("publish %s command: %w", command.Type, err)
	}

	return &Receipt{
		CommandID:  command.ID,
		Type:       command.Type,
		OrderID:    command.OrderID,
		AcceptedAt: command.IssuedAt,
	}, nil
}

func isValidOrderID(id string) bool {
	return strings.TrimSpace(id) != ""
}
