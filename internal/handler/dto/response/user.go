package response

import (
	"time"

	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsProvider bool      `json:"is_provider"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromUserView(view *queries.UserView) (*UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to build user response")
	}
	return &resp, nil
}
