package entities

import (
	"strconv"
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
)

type Review struct {
	ID        int64
	User      *User
	Product   *Product
	Rating    int32
	Content   string
	CreatedAt time.Time
}

var (
	_ reference.Referenceable = (*Review)(nil)
	_ reference.Referencing   = (*Review)(nil)
)

func ReviewStub(id int64) *Review {
	return &Review{ID: id}
}

func (r *Review) ReferenceKind() reference.Kind {
	return reference.KindReview
}

func (r *Review) ReferenceKey() reference.Key {
	return reference.Key(strconv.FormatInt(r.ID, 10))
}

func (r *Review) IsStub() bool {
	return r.Rating == 0 && r.Content == ""
}

func (r *Review) ReferenceFields() []reference.Field {
	var fields []reference.Field
	if r.User != nil && r.User.IsStub() {
		fields = append(fields, reference.Field{
			Name: "user",
			Kind: reference.KindUser,
			Key:  r.User.ReferenceKey(),
			Set: func(resolved any) {
				r.User, _ = resolved.(*User)
			},
		})
	}
	if r.Product != nil && r.Product.IsStub() {
		fields = append(fields, reference.Field{
			Name: "product",
			Kind: reference.KindProduct,
			Key:  r.Product.ReferenceKey(),
			Set: func(resolved any) {
				r.Product, _ = resolved.(*Product)
			},
		})
	}
	return fields
}
