package entities

import "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"

// Category - единственная сущность, на которую ссылаются по имени,
// а не по id.
type Category struct {
	Name        string
	Description string
}

var _ reference.Referenceable = (*Category)(nil)

func CategoryStub(name string) *Category {
	return &Category{Name: name}
}

func (c *Category) ReferenceKind() reference.Kind {
	return reference.KindCategory
}

func (c *Category) ReferenceKey() reference.Key {
	return reference.Key(c.Name)
}

func (c *Category) IsStub() bool {
	return c.Description == ""
}
