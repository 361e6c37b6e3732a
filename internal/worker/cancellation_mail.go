package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"time"

	"booking-api/internal/mail"
	"booking-api/internal/notify"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// claimLease pushes run_at forward while a job is in flight so a
	// crashed worker's jobs become visible again after the lease.
	claimLease = 5 * time.Minute

	retryBase = 30 * time.Second
	retryCap  = time.Hour
)

// job is one claimed row from mail_jobs.
type job struct {
	ID      uuid.UUID
	Topic   string
	Payload []byte
	Attempt int
}

// CancellationMailWorker drains the durable mail queue and delivers
// cancellation emails to providers. Delivery is at-least-once: a job is
// marked sent only after the transport accepts it.
type CancellationMailWorker struct {
	pool   *pgxpool.Pool
	sender mail.Sender
	clock  clock.Clock
	logger *slog.Logger
	cfg    config.WorkerConfig
}

func NewCancellationMailWorker(
	pool *pgxpool.Pool,
	sender mail.Sender,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.WorkerConfig,
) *CancellationMailWorker {
	return &CancellationMailWorker{
		pool:   pool,
		sender: sender,
		clock:  clk,
		logger: logger,
		cfg:    cfg,
	}
}

// Run polls until the context is canceled.
func (w *CancellationMailWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.logger.Info("cancellation mail worker started",
		"poll_interval", w.cfg.PollInterval, "batch_size", w.cfg.BatchSize)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cancellation mail worker stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				w.logger.Error("mail batch failed", "error", err.Error())
			}
		}
	}
}

// RunOnce claims one batch and processes it. Claiming happens in its
// own short transaction so competing workers skip each other's rows.
func (w *CancellationMailWorker) RunOnce(ctx context.Context) error {
	jobs, err := w.claimBatch(ctx)
	if err != nil {
		return err
	}

	for _, j := range jobs {
		w.process(ctx, j)
	}

	return nil
}

func (w *CancellationMailWorker) claimBatch(ctx context.Context) ([]job, error) {
	now := w.clock.Now()

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to begin claim transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		SELECT id, topic, payload, attempt
		FROM mail_jobs
		WHERE status = 'pending' AND run_at <= $1
		ORDER BY run_at
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`, now, w.cfg.BatchSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to select pending mail jobs")
	}

	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (job, error) {
		var j job
		err := row.Scan(&j.ID, &j.Topic, &j.Payload, &j.Attempt)
		return j, err
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan mail jobs")
	}

	if len(jobs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID.String()
	}
	if _, err := tx.Exec(ctx, `
		UPDATE mail_jobs
		SET run_at = $1, updated_at = $2
		WHERE id = ANY($3::uuid[])
	`, now.Add(claimLease), now, ids); err != nil {
		return nil, errs.Wrap(err, "failed to lease mail jobs")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Wrap(err, "failed to commit claim transaction")
	}

	return jobs, nil
}

func (w *CancellationMailWorker) process(ctx context.Context, j job) {
	if err := w.handle(ctx, j); err != nil {
		w.fail(ctx, j, err)
		return
	}

	now := w.clock.Now()
	if _, err := w.pool.Exec(ctx, `
		UPDATE mail_jobs
		SET status = 'sent', updated_at = $1
		WHERE id = $2
	`, now, j.ID); err != nil {
		// Send succeeded but the mark did not; the job will be retried
		// and the provider may receive a duplicate.
		w.logger.Error("failed to mark mail job sent", "job_id", j.ID, "error", err.Error())
	}
}

// handle decodes and delivers a single job.
func (w *CancellationMailWorker) handle(ctx context.Context, j job) error {
	if j.Topic != notify.TopicAppointmentCanceled {
		return errs.New("unknown mail job topic: " + j.Topic)
	}

	var payload notify.CancellationJob
	if err := json.Unmarshal(j.Payload, &payload); err != nil {
		return errs.Wrap(err, "failed to decode cancellation payload")
	}

	msg := notify.RenderCancellationMail(payload)
	if err := w.sender.Send(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send cancellation mail")
	}

	w.logger.Info("cancellation mail delivered",
		"job_id", j.ID, "appointment_id", payload.AppointmentID, "to", payload.ProviderEmail)
	return nil
}

func (w *CancellationMailWorker) fail(ctx context.Context, j job, cause error) {
	now := w.clock.Now()
	attempt := j.Attempt + 1

	if attempt >= w.cfg.MaxAttempts {
		w.logger.Error("mail job dead after max attempts",
			"job_id", j.ID, "attempt", attempt, "error", cause.Error())
		if _, err := w.pool.Exec(ctx, `
			UPDATE mail_jobs
			SET status = 'dead', attempt = $1, last_error = $2, updated_at = $3
			WHERE id = $4
		`, attempt, cause.Error(), now, j.ID); err != nil {
			w.logger.Error("failed to mark mail job dead", "job_id", j.ID, "error", err.Error())
		}
		return
	}

	next := now.Add(nextRetryDelay(attempt))
	w.logger.Warn("mail job failed, scheduling retry",
		"job_id", j.ID, "attempt", attempt, "next_run_at", next, "error", cause.Error())
	if _, err := w.pool.Exec(ctx, `
		UPDATE mail_jobs
		SET attempt = $1, last_error = $2, run_at = $3, updated_at = $4
		WHERE id = $5
	`, attempt, cause.Error(), next, now, j.ID); err != nil {
		w.logger.Error("failed to reschedule mail job", "job_id", j.ID, "error", err.Error())
	}
}

// nextRetryDelay doubles per attempt, capped, with jitter so retries
// from one burst of cancellations do not land together.
func nextRetryDelay(attempt int) time.Duration {
	delay := retryCap
	// retryBase<<7 already exceeds the cap; guarding the shift keeps
	// large attempt counts from overflowing.
	if attempt >= 1 && attempt <= 7 {
		if d := retryBase << (attempt - 1); d < retryCap {
			delay = d
		}
	}
	jitter := time.Duration(rand.Int63n(int64(delay) / 4))
	return delay + jitter
}
