package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipebox/web/internal/config"
	"github.com/recipebox/web/internal/handlers"
	"github.com/recipebox/web/internal/middleware"
	"github.com/recipebox/web/internal/services"
	"github.com/recipebox/web/internal/storage"
	"github.com/recipebox/web/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	slog.SetDefault(cfg.NewLogger())

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := telemetry.Init(ctx, telemetry.Config{
		Endpoint:       cfg.OtelEndpoint,
		ServiceName:    cfg.OtelServiceName,
		ServiceVersion: cfg.OtelServiceVersion,
	})
	if err != nil {
		return fmt.Errorf("initialize OpenTelemetry: %w", err)
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			slog.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	// Durable favorites storage
	kv, closeStore, err := storage.Open(ctx, storage.Options{
		Backend:                  cfg.StorageBackend,
		DataDir:                  cfg.DataDir,
		MongoURI:                 cfg.MongoURI,
		MongoDB:                  cfg.MongoDB,
		FirestoreProjectID:       cfg.FirestoreProjectID,
		FirestoreCredentialsJSON: cfg.FirestoreCredentialsJSON,
		S3Bucket:                 cfg.S3Bucket,
		S3Prefix:                 cfg.S3Prefix,
	})
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageBackend, err)
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()
	slog.Info("SETUP: Storage ready", "backend", cfg.StorageBackend)

	profiles, err := middleware.NewProfileIssuer(cfg.ProfileSecret, cfg.ProfileTTL, cfg.ProfileSecureCookie)
	if err != nil {
		return fmt.Errorf("create profile issuer: %w", err)
	}

	// Initialize services
	recipeClient := services.NewRecipeClient(cfg.RecipeAPIBaseURL, &http.Client{Timeout: cfg.RecipeFetchTimeout})
	views := services.NewViewService(
		services.NewRecipeLoader(recipeClient),
		services.NewFavoriteService(kv),
	)

	srv := &http.Server{
		Addr: cfg.ServerAddress,
		Handler: handlers.NewRouter(handlers.RouterConfig{
			Views:          views,
			Profiles:       profiles,
			AllowedOrigins: cfg.AllowedOrigins,
			AccessLog:      true,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Recipebox server starting", "addr", cfg.ServerAddress)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
