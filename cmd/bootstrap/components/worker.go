package components

import (
	"log/slog"

	"booking-api/internal/mail"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/config"
	"booking-api/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		clock.NewRealClock,
		NewMailSender,
		NewCancellationMailWorker,
	),
)

func NewMailSender(cfg config.Config, logger *slog.Logger) mail.Sender {
	return mail.NewSender(cfg.Mail, logger)
}

func NewCancellationMailWorker(
	pool *pgxpool.Pool,
	sender mail.Sender,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *worker.CancellationMailWorker {
	return worker.NewCancellationMailWorker(pool, sender, clk, logger, cfg.Worker)
}
