package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"yahoo-fantasy-assistant/internal/config"
	"yahoo-fantasy-assistant/internal/logging"
	"yahoo-fantasy-assistant/internal/server"
)

const appVersion = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "yahoo-fantasy-assistant",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
