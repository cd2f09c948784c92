package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"meet-lab/gateway"
	"meet-lab/runtime"
	"meet-lab/runtime/workers"
	"meet-lab/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer executes before the process
// exits and main stays trivially testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Registry & collaborators
	// The registry is built once here and handed to everything that needs
	// it; nothing else holds room state.
	directory := runtime.NewDirectory()
	registry := runtime.NewRegistry(directory)
	lobby := services.NewLobbyService(registry)

	addr := fmt.Sprintf("%s:%d", config.Host, config.GatewayPort)
	gw := gateway.NewServer(log, addr, lobby, directory, config.SendBufferSize)
	telemetry := workers.NewTelemetryWorker(log, config.TelemetryInterval, registry, directory)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Run everything under supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(gw, telemetry)

	log.Info("Starting meeting server", "addr", addr)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}
