package workers

import (
	"context"
	"log/slog"
	"time"

	"meet-lab/contract"
)

// TelemetryWorker periodically logs a snapshot of the registry: how many
// rooms are active, how many sessions are connected, and the per-room
// member counts. Observability only, it never mutates anything.
type TelemetryWorker struct {
	log       *slog.Logger
	interval  time.Duration
	registry  contract.IRegistry
	directory contract.SessionDirectory
}

func NewTelemetryWorker(
	log *slog.Logger,
	interval time.Duration,
	registry contract.IRegistry,
	directory contract.SessionDirectory,
) *TelemetryWorker {
	return &TelemetryWorker{
		log:       log,
		interval:  interval,
		registry:  registry,
		directory: directory,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return ctx.Err()
		case <-ticker.C:
			counts := w.registry.Counts()
			w.log.Info("Registry snapshot",
				"rooms", len(counts),
				"sessions", w.directory.Len(),
				"members", counts,
			)
		}
	}
}
