package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/MikhailRaia/url-shortener-client/internal/client"
	"github.com/MikhailRaia/url-shortener-client/internal/config"
	"github.com/MikhailRaia/url-shortener-client/internal/handler"
	"github.com/MikhailRaia/url-shortener-client/internal/middleware"
	"github.com/MikhailRaia/url-shortener-client/internal/proto"
	"github.com/MikhailRaia/url-shortener-client/internal/submission"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config     *config.Config
	controller *submission.Controller
	handler    http.Handler
	grpcServer *grpc.Server
}

func NewApp(cfg *config.Config) *App {
	shortener := client.New(cfg.ServiceURL, client.WithTimeout(cfg.RequestTimeout))

	controller := submission.NewController(shortener, middleware.RequestOrigin{Fixed: cfg.PageOrigin, Fallback: cfg.ServiceURL})

	httpHandler := handler.NewHandler(controller, shortener)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(middleware.GRPCOriginInterceptor))
	proto.RegisterSubmissionServiceServer(grpcServer, handler.NewSubmissionGRPCServer(controller))

	return &App{
		config:     cfg,
		controller: controller,
		handler:    httpHandler.RegisterRoutes(),
		grpcServer: grpcServer,
	}
}

// Run serves HTTP, and gRPC when configured, until ctx is done.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.ServerAddress,
		Handler: a.handler,
	}

	errCh := make(chan error, 2)

	if a.config.GRPCAddress != "" {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("listen grpc: %w", err)
		}

		go func() {
			log.Info().Str("address", a.config.GRPCAddress).Msg("Starting gRPC server")
			if err := a.grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	go func() {
		log.Info().
			Str("address", a.config.ServerAddress).
			Str("service", a.config.ServiceURL).
			Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.grpcServer.GracefulStop()
	if err := server.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("http shutdown: %w", err)
	}

	return runErr
}
