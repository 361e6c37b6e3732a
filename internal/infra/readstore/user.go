package readstore

import (
	"context"
	"errors"

	"booking-api/internal/infra"
	"booking-api/internal/infra/db"
	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var view queries.UserView
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, is_provider, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&view.ID, &view.Name, &view.Email, &view.IsProvider, &view.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	var (
		view queries.UserView
		hash string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, is_provider, created_at, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(&view.ID, &view.Name, &view.Email, &view.IsProvider, &view.CreatedAt, &hash)
	if err != nil {
		if isNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
