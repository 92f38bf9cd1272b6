package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
)

// Service - синхронная (query) сторона заказов. Читает агрегаты из
// хранилища, досчитывает статус одним батч-запросом к журналу и
// резолвит ссылки одним вызовом на весь результат.
type Service struct {
	repository    Repository
	statusTracker StatusTracker
	resolver      Resolver
	txManager     TxManager
}

func New(repository Repository, statusTracker StatusTracker, resolver Resolver, txManager TxManager) *Service {
	return &Service{
		repository:    repository,
		statusTracker: statusTracker,
		resolver:      resolver,
		txManager:     txManager,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if err := s.hydrate(ctx, []*entities.Order{orderEntity}); err != nil {
		return nil, err
	}
	return orderEntity, nil
}

func (s *Service) GetAll(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	if err := s.hydrateList(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetAllByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	orders, err := s.repository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get orders by user: %w", err)
	}
	if err := s.hydrateList(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetAllByProduct(ctx context.Context, productID int64) ([]entities.Order, error) {
	orders, err := s.repository.GetAllByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get orders by product: %w", err)
	}
	if err := s.hydrateList(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.UserID == nil ||
		orderModify.ProductID == nil ||
		orderModify.Quantity == nil {
		return nil, ErrMissingRequiredFields
	}
	if *orderModify.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	id := uuid.NewString()
	if orderModify.ID != nil {
		if !isValidOrderID(*orderModify.ID) {
			return nil, ErrInvalidOrderID
		}
		id = *orderModify.ID
	}

	createdAt := time.Now().UTC()
	if orderModify.CreatedAt != nil {
		createdAt = orderModify.CreatedAt.UTC()
	}

	orderEntity := entities.Order{
		ID:        id,
		User:      entities.UserStub(*orderModify.UserID),
		Product:   entities.ProductStub(*orderModify.ProductID),
		Quantity:  *orderModify.Quantity,
		CreatedAt: createdAt,
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if _, err := s.statusTracker.Append(ctx, created.ID, entities.StatusCreated, nil); err != nil {
			return fmt.Errorf("append created status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created.Status = entities.StatusCreated
	if _, err := s.resolver.Resolve(ctx, created); err != nil {
		return nil, fmt.Errorf("resolve references: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
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

	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	// статус выводится заново: патч его не задает
	if err := s.hydrate(ctx, []*entities.Order{updated}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) ChangeStatus(ctx context.Context, orderID string, status entities.Status) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if _, err := s.statusTracker.Append(ctx, orderEntity.ID, status, nil); err != nil {
		return nil, fmt.Errorf("append status: %w", err)
	}

	orderEntity.Status = status
	if _, err := s.resolver.Resolve(ctx, orderEntity); err != nil {
		return nil, fmt.Errorf("resolve references: %w", err)
	}
	return orderEntity, nil
}

// DeleteByID удаляет агрегат и дописывает терминальную deleted-запись.
// Журнал статусов при удалении заказа сохраняется.
func (s *Service) DeleteByID(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Delete(ctx, orderID); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}

		if _, err := s.statusTracker.Append(ctx, orderID, entities.StatusDeleted, nil); err != nil {
			return fmt.Errorf("append deleted status: %w", err)
		}
		return nil
	})
}

func (s *Service) hydrateList(ctx context.Context, orders []entities.Order) error {
	if len(orders) == 0 {
		return nil
	}
	pointers := make([]*entities.Order, len(orders))
	for i := range orders {
		pointers[i] = &orders[i]
	}
	return s.hydrate(ctx, pointers)
}

// hydrate досчитывает статус и резолвит ссылки на весь набор: один
// батч-запрос к журналу и один вызов резолвера, независимо от размера.
func (s *Service) hydrate(ctx context.Context, orders []*entities.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]string, len(orders))
	for i, orderEntity := range orders {
		orderIDs[i] = orderEntity.ID
	}

	statuses, err := s.statusTracker.CurrentStatuses(ctx, orderIDs)
	if err != nil {
		return fmt.Errorf("derive current statuses: %w", err)
	}
	for _, orderEntity := range orders {
		if status, ok := statuses[orderEntity.ID]; ok {
			orderEntity.Status = status
		}
	}

	targets := make([]reference.Referencing, len(orders))
	for i := range orders {
		targets[i] = orders[i]
	}
	if _, err := s.resolver.Resolve(ctx, targets...); err != nil {
		return fmt.Errorf("resolve references: %w", err)
	}
	return nil
}
