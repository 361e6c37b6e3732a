package user

import (
	"github.com/google/uuid"
)

// User is either a client or a provider. The provider flag decides who
// may receive bookings; it never changes after registration. Timestamps
// live on the row; reads go through views, so the entity carries only
// what registration writes.
type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	isProvider   bool
}

func NewUser(name Name, email Email, passwordHash string, isProvider bool) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		isProvider:   isProvider,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsProvider() bool     { return u.isProvider }
