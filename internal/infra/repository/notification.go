package repository

import (
	"context"
	"time"

	"booking-api/internal/infra"
	"booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, content string, createdAt time.Time) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO notifications (user_id, content, created_at)
		VALUES ($1, $2, $3)
	`, userID, content, createdAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}

	return nil
}
