package order

import (
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

// ToDomain возвращает заказ с заглушками вместо user/product -
// их резолвит сервисный слой, репозиторий знает только внешние ключи.
func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:        o.ID,
		User:      entities.UserStub(o.UserID),
		Product:   entities.ProductStub(o.ProductID),
		Quantity:  o.Quantity,
		CreatedAt: o.CreatedAt,
	}
}

func FromDomain(orderEntity *entities.Order) *OrderDB {
	if orderEntity == nil {
		return nil
	}

	orderDB := &OrderDB{
		ID:        orderEntity.ID,
		Quantity:  orderEntity.Quantity,
		CreatedAt: orderEntity.CreatedAt,
	}
	if orderEntity.User != nil {
		orderDB.UserID = orderEntity.User.ID
	}
	if orderEntity.Product != nil {
		orderDB.ProductID = orderEntity.Product.ID
	}
	return orderDB
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.UserID != nil {
		orderDB.UserID = orderModify.UserID
	}
	if orderModify.ProductID != nil {
		orderDB.ProductID = orderModify.ProductID
	}
	if orderModify.Quantity != nil {
		orderDB.Quantity = orderModify.Quantity
	}
	if orderModify.CreatedAt != nil {
		orderDB.CreatedAt = orderModify.CreatedAt
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
