package commands

import (
	"context"

	"booking-api/internal/domain/user"
	"booking-api/internal/infra"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/pkg/password"
	"booking-api/internal/usecase/queries"
	"booking-api/internal/usecase/shared"
)

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	IsProvider bool
}

type UserCommands interface {
	Register(ctx context.Context, input RegisterInput) (*queries.UserView, error)
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	users queries.UserReadStore
}

func NewUserCommands(uow shared.UnitOfWork, users queries.UserReadStore) UserCommands {
	return &userCommandsImpl{uow: uow, users: users}
}

func (c *userCommandsImpl) Register(ctx context.Context, input RegisterInput) (*queries.UserView, error) {
	name, err := user.NewName(input.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	pw, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(name, email, hash, input.IsProvider)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrEmailTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.users.FindByID(ctx, u.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}
