package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KretovDmitry/bankaccount/internal/application/services"
	"github.com/KretovDmitry/bankaccount/internal/config"
	"github.com/KretovDmitry/bankaccount/internal/domain/repositories"
	"github.com/KretovDmitry/bankaccount/internal/infrastructure/db/memory"
	"github.com/KretovDmitry/bankaccount/internal/infrastructure/db/postgres"
	rest "github.com/KretovDmitry/bankaccount/internal/interface/api/rest/chi"
	"github.com/KretovDmitry/bankaccount/pkg/logger"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/v2/context"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Server run context.
	serverCtx, serverStopCtx := context.WithCancel(context.Background())
	defer serverStopCtx()

	// Load application configurations.
	cfg := config.MustLoad()

	// Create root logger tagged with server version.
	logger := logger.New(cfg).With(serverCtx, "version", Version)
	defer func() { _ = logger.Sync() }()

	var (
		repo repositories.OperationRepository
		opts []services.Option
	)

	if cfg.DSN == "" {
		logger.Info("no DSN configured, operations are kept in memory")
		repo = memory.NewOperationRepository()
	} else {
		db, err := postgres.Connect(serverCtx, cfg, logger)
		if err != nil {
			return err
		}

		// Close connection.
		defer func() {
			if err = db.Close(); err != nil {
				logger.Error(err)
			}
		}()

		if err = postgres.Migrate(serverCtx, db); err != nil {
			return err
		}

		// Create default transaction manager for database/sql package.
		trManager := manager.Must(
			trmsql.NewDefaultFactory(db),
			manager.WithCtxManager(trmcontext.DefaultManager),
		)

		repo, err = postgres.NewOperationRepository(db, trmsql.DefaultCtxGetter, logger)
		if err != nil {
			return fmt.Errorf("failed to init operation repository: %w", err)
		}

		opts = append(opts, services.WithTransactor(trManager))
	}

	// Init account service.
	account, err := services.NewAccount(repo, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to init account service: %w", err)
	}

	// Create root router and account routes.
	router := rest.InitChi(logger)
	rest.NewAccountController(account, logger, rest.ChiServerOptions{
		BaseURL:    "/api/account",
		BaseRouter: router,
	})

	// Build HTTP server.
	hs := &http.Server{
		Addr:              cfg.HTTPServer.Address,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:       cfg.HTTPServer.IdleTimeout,
		Handler:           router,
	}

	// Graceful shutdown.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT,
			syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)

		s := <-sig

		logger.With(serverCtx, "signal", s.String()).
			Infof("Shutting down server with %s timeout",
				cfg.HTTPServer.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		if err := hs.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("graceful shutdown failed: %s", err)
		}
		serverStopCtx()
	}()

	// Start the HTTP server with graceful shutdown.
	logger.Infof("Server %v is running at %v", Version, cfg.HTTPServer.Address)
	if err = hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("run server failed: %w", err)
	}

	// Wait for server context to be stopped or force exit if timeout exceeded.
	select {
	case <-serverCtx.Done():
	case <-time.After(cfg.HTTPServer.ShutdownTimeout):
		return errors.New("graceful shutdown timed out.. forcing exit")
	}

	return nil
}
