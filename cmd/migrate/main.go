package main

import (
	"context"
	"log/slog"
	"os"

	"proximity/config"
	"proximity/internal/domain/lifecycle"
	logs "proximity/internal/infra/log"
	"proximity/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(migrate),
	)
	if err := app.Err(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Warn("Failed to close database", slog.Any("error", err))
	}
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	logger.Info("Applying proximity schema")
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("Schema is up to date")

	return nil
}
