package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wise-ads/internal/adapter/gemini"
	"wise-ads/internal/adapter/googleads"
	"wise-ads/internal/adapter/googleauth"
	httpadapter "wise-ads/internal/adapter/http"
	"wise-ads/internal/adapter/postgres"
	"wise-ads/internal/adapter/token"
	"wise-ads/internal/adapter/usecase"
	"wise-ads/internal/config"
	"wise-ads/internal/db"
)

// main loads configuration, optionally runs database migrations, wires the
// repositories, the Google Ads client and the use cases together, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts the server down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	ownershipRepo := postgres.NewOwnershipRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	adsClient := googleads.NewClient(cfg.Ads, logger)
	issuer := token.NewIssuer(cfg.Auth)
	verifier := googleauth.NewVerifier(cfg.Auth.GoogleClientID)
	generator := gemini.NewGenerator(cfg.Gemini, logger)

	customerID := cfg.Ads.CustomerID
	handler := httpadapter.NewHandler(httpadapter.Deps{
		Campaigns:  usecase.NewCampaignService(ownershipRepo, adsClient, customerID, logger),
		AdGroups:   usecase.NewAdGroupService(ownershipRepo, adsClient, customerID, logger),
		Ads:        usecase.NewAdService(ownershipRepo, adsClient, customerID, logger),
		Keywords:   usecase.NewKeywordService(ownershipRepo, adsClient, customerID, logger),
		Auth:       usecase.NewAuthService(userRepo, issuer, verifier, logger),
		Admin:      usecase.NewAdminService(userRepo, ownershipRepo, adsClient, logger),
		Onboarding: usecase.NewOnboardingService(generator, logger),
		Tokens:     issuer,
	}, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
