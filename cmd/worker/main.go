package main

import (
	"context"
	"log/slog"
	"os"

	"booking-api/cmd/bootstrap"
	"booking-api/internal/worker"

	"go.uber.org/fx"
)

func startWorker(lc fx.Lifecycle, w *worker.CancellationMailWorker, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				w.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				logger.Warn("worker did not stop before shutdown deadline")
			}
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.WorkerModule,
		fx.Invoke(
			startWorker,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("worker failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("worker failed to stop cleanly", "error", err)
	}

	slog.Info("worker stopped")
}
