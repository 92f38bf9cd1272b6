package ordercommands

import (
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

type CommandType string

const (
	CommandCreateOrder  CommandType = "order.create"
	CommandUpdateOrder  CommandType = "order.update"
	CommandChangeStatus CommandType = "order.change_status"
	CommandDeleteOrder  CommandType = "order.delete"
)

func (t CommandType) String() string {
	return string(t)
}

// Command - полезная нагрузка командного канала. ID команды сквозной:
// логируется и на публикации, и на применении. Канал at-least-once и
// дедупликации по ID не делает - повторная доставка применит команду
// повторно.
type Command struct {
	ID       string      `json:"id"`
	Type     CommandType `json:"type"`
	OrderID  string      `json:"order_id"`
	IssuedAt time.Time   `json:"issued_at"`

	// поля модификации, заполняются по типу команды
	UserID    *int64           `json:"user_id,omitempty"`
	ProductID *int64           `json:"product_id,omitempty"`
	Quantity  *int32           `json:"quantity,omitempty"`
	Status    *entities.Status `json:"status,omitempty"`
}

// Receipt подтверждает только прием команды, не ее применение.
// Применение происходит асинхронно на стороне воркера, query-канал
// может какое-то время не отражать эффект.
type Receipt struct {
	CommandID  string
	Type       CommandType
	OrderID    string
	AcceptedAt time.Time
}
