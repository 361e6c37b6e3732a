package repository

import (
	"context"

	"booking-api/internal/domain/user"
	"booking-api/internal/infra"
	"booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_provider)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.ID(), u.Name().Value(), u.Email().Value(), u.PasswordHash(), u.IsProvider()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}
