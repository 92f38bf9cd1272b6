package entities

import (
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
)

type Order struct {
	ID        string
	User      *User
	Product   *Product
	Quantity  int32
	CreatedAt time.Time

	// Status выводится из журнала status-tracker-записей при чтении,
	// в таблице заказов колонки статуса нет.
	Status Status
}

var _ reference.Referencing = (*Order)(nil)

func (o *Order) ReferenceFields() []reference.Field {
	var fields []reference.Field
	if o.User != nil && o.User.IsStub() {
		fields = append(fields, reference.Field{
			Name: "user",
			Kind: reference.KindUser,
			Key:  o.User.ReferenceKey(),
			Set: func(resolved any) {
				o.User, _ = resolved.(*User)
			},
		})
	}
	if o.Product != nil && o.Product.IsStub() {
		fields = append(fields, reference.Field{
			Name: "product",
			Kind: reference.KindProduct,
			Key:  o.Product.ReferenceKey(),
			Set: func(resolved any) {
				o.Product, _ = resolved.(*Product)
			},
		})
	}
	return fields
}

type OrderModify struct {
	ID        *string
	UserID    *int64
	ProductID *int64
	Quantity  *int32
	CreatedAt *time.Time
}
