package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotelsite/config"
	"hotelsite/di"
	"hotelsite/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker, cleanup := di.InitializeNotifier()
	defer cleanup()

	worker.Run(ctx)
}
