package repository

import (
	"context"
	"time"

	"booking-api/internal/infra"
	"booking-api/internal/infra/db"
)

// MailJobRepository is the enqueue half of the durable mail queue.
// Jobs written here in the caller's transaction become visible to the
// worker only after commit, which keeps enqueue atomic with the
// cancellation write.
type MailJobRepository struct{}

func NewMailJobRepository() *MailJobRepository {
	return &MailJobRepository{}
}

func (r *MailJobRepository) Enqueue(ctx context.Context, dbtx db.DBTX, topic string, payload []byte, runAt time.Time) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO mail_jobs (topic, payload, run_at)
		VALUES ($1, $2, $3)
	`, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue mail job", err)
	}

	return nil
}
