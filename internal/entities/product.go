package entities

import (
	"strconv"
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
)

type Product struct {
	ID        int64
	Name      string
	Price     float64
	Category  *Category
	CreatedAt time.Time
}

var (
	_ reference.Referenceable = (*Product)(nil)
	_ reference.Referencing   = (*Product)(nil)
)

func ProductStub(id int64) *Product {
	return &Product{ID: id}
}

func (p *Product) ReferenceKind() reference.Kind {
	return reference.KindProduct
}

func (p *Product) ReferenceKey() reference.Key {
	return reference.Key(strconv.FormatInt(p.ID, 10))
}

func (p *Product) IsStub() bool {
	return p.Name == "" && p.Price == 0
}

func (p *Product) ReferenceFields() []reference.Field {
	var fields []reference.Field
	if p.Category != nil && p.Category.IsStub() {
		fields = append(fields, reference.Field{
			Name: "category",
			Kind: reference.KindCategory,
			Key:  p.Category.ReferenceKey(),
			Set: func(resolved any) {
				p.Category, _ = resolved.(*Category)
			},
		})
	}
	return fields
}
