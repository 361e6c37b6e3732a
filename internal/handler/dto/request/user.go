package request

import (
	"booking-api/internal/usecase/commands"
)

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	IsProvider bool   `json:"is_provider"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		IsProvider: r.IsProvider,
	}
}
