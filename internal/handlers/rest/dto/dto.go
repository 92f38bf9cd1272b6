package dto

import (
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/ordercommands"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Product struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Category *Category `json:"category,omitempty"`
}

type Order struct {
	ID        string    `json:"id"`
	User      *User     `json:"user,omitempty"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int32     `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CommandReceipt - ответ командных ручек: команда принята,
// применение асинхронное, следующий запрос на чтение может еще
// не увидеть эффекта.
type CommandReceipt struct {
	CommandID  string    `json:"command_id"`
	Command    string    `json:"command"`
	OrderID    string    `json:"order_id"`
	AcceptedAt time.Time `json:"accepted_at"`
}

type OrderCreateRequest struct {
	UserID    *int64 `json:"user_id"`
	ProductID *int64 `json:"product_id"`
	Quantity  *int32 `json:"quantity"`
}

type OrderUpdateRequest struct {
	UserID    *int64 `json:"user_id"`
	ProductID *int64 `json:"product_id"`
	Quantity  *int32 `json:"quantity"`
}

type OrderStatusChangeRequest struct {
	Status *string `json:"status"`
}

type PingResponse struct {
	Message *string `json:"message"`
}

func FromOrder(orderEntity *entities.Order) Order {
	if orderEntity == nil {
		return Order{}
	}

	orderDTO := Order{
		ID:        orderEntity.ID,
		Quantity:  orderEntity.Quantity,
		Status:    orderEntity.Status.String(),
		CreatedAt: orderEntity.CreatedAt,
	}
	if orderEntity.User != nil {
		orderDTO.User = &User{
			ID:       orderEntity.User.ID,
			Username: orderEntity.User.Username,
			Email:    orderEntity.User.Email,
		}
	}
	if orderEntity.Product != nil {
		productDTO := &Product{
			ID:    orderEntity.Product.ID,
			Name:  orderEntity.Product.Name,
			Price: orderEntity.Product.Price,
		}
		if orderEntity.Product.Category != nil {
			productDTO.Category = &Category{
				Name:        orderEntity.Product.Category.Name,
				Description: orderEntity.Product.Category.Description,
			}
		}
		orderDTO.Product = productDTO
	}
	return orderDTO
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, len(orders))
	for i := range orders {
		result[i] = FromOrder(&orders[i])
	}
	return result
}

func FromReceipt(receipt *ordercommands.Receipt) CommandReceipt {
	if receipt == nil {
		return CommandReceipt{}
	}
	return CommandReceipt{
		CommandID:  receipt.CommandID,
		Command:    receipt.Type.String(),
		OrderID:    receipt.OrderID,
		AcceptedAt: receipt.AcceptedAt,
	}
}
