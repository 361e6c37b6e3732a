package commands

import (
	"context"

	"booking-api/internal/infra"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/pkg/jwt"
	"booking-api/internal/pkg/password"
	"booking-api/internal/usecase/queries"
)

type LoginResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(users queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, jwtService: jwtService}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	view, hash, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the address is registered.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := c.jwtService.GenerateToken(view.ID, view.IsProvider)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{Token: token, User: view}, nil
}
