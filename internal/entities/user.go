package entities

import (
	"strconv"
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/reference"
)

type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}

var _ reference.Referenceable = (*User)(nil)

// UserStub - заглушка, содержащая только ключ. Вход резолвера.
func UserStub(id int64) *User {
	return &User{ID: id}
}

func (u *User) ReferenceKind() reference.Kind {
	return reference.KindUser
}

func (u *User) ReferenceKey() reference.Key {
	return reference.Key(strconv.FormatInt(u.ID, 10))
}

func (u *User) IsStub() bool {
	return u.Username == "" && u.Email == ""
}
