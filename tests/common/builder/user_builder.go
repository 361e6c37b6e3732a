//go:build unit || e2e

package builder

import (
	"time"

	"booking-api/internal/domain/user"
	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Password   string
	IsProvider bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:         uuid.New(),
		Name:       "Test Client",
		Email:      "client@example.com",
		Password:   "password123",
		IsProvider: false,
	}
}

func NewProviderBuilder() *UserBuilder {
	return &UserBuilder{
		ID:         uuid.New(),
		Name:       "Test Provider",
		Email:      "provider@example.com",
		Password:   "password123",
		IsProvider: true,
	}
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(b.Name)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}

	if _, err := user.NewPassword(b.Password); err != nil {
		return nil, err
	}

	return user.NewUser(name, email, "hashed_password", b.IsProvider), nil
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:         b.ID,
		Name:       b.Name,
		Email:      b.Email,
		IsProvider: b.IsProvider,
		CreatedAt:  time.Now(),
	}
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.Password = password
	return b
}

func (b *UserBuilder) WithIsProvider(isProvider bool) *UserBuilder {
	b.IsProvider = isProvider
	return b
}
