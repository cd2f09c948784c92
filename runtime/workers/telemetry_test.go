package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"meet-lab/domain"
	"meet-lab/runtime"
)

func TestTelemetryWorker_Stops_On_Context_Cancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	directory := runtime.NewDirectory()
	req.NoError(directory.Register(domain.NewSession("alice")))
	registry := runtime.NewRegistry(directory)
	req.NoError(registry.JoinRoom("alice", "daily"))

	worker := NewTelemetryWorker(log, 10*time.Millisecond, registry, directory)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := worker.Run(ctx)

	req.ErrorIs(err, context.DeadlineExceeded)
}
