package main

import "time"

type Config struct {
	Host              string        `env:"HOST,default=0.0.0.0"`
	GatewayPort       int           `env:"GATEWAY_PORT,default=8765"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	SendBufferSize    int           `env:"SEND_BUFFER_SIZE,default=256"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
}
