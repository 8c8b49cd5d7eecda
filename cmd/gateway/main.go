package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/url-shortener-client/internal/app"
	"github.com/MikhailRaia/url-shortener-client/internal/config"
	"github.com/MikhailRaia/url-shortener-client/internal/logger"
)

func main() {
	cfg := config.NewConfig()

	logger.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(cfg)
	if err := application.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error running gateway")
	}
}
