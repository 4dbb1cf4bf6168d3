package main

import (
	"context"
	"log/slog"

	"proximity/config"
	"proximity/internal/delivery"
	"proximity/internal/delivery/monitor"
	"proximity/internal/domain/service"
	"proximity/internal/infra/cache"
	logs "proximity/internal/infra/log"
	"proximity/internal/infra/mqtt"
	"proximity/internal/infra/notification"
	"proximity/internal/infra/outbox"
	"proximity/internal/infra/persistence/postgres"
	"proximity/internal/infra/pubsub"
	"proximity/internal/infra/quota"
	"proximity/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		mqtt.NewClient,
		newOutbox,
		newPositionCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewZoneRepository,
			postgres.NewVendorConfigRepository,
			postgres.NewSessionRepository,
			postgres.NewEventLogRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewNotificationService,
			quota.NewUsageClient,
			mqtt.NewPositionSource,
			mqtt.NewConfirmationSource,
			mqtt.NewForegroundRelay,
		),
		pubsub.Module,
	)
}

// newOutbox opens the local offline queue and closes it on shutdown
func newOutbox(ctx context.Context, lc fx.Lifecycle, cfg *config.Config) (service.EventOutbox, error) {
	queue, err := outbox.Open(ctx, cfg.Monitor.OutboxPath)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return queue.Close()
		},
	})

	return queue, nil
}

// newPositionCache returns the redis-backed cache, or nil when redis is not configured
func newPositionCache(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.PositionCache, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, last known position is not cached")

		return nil, nil
	}

	client, err := cache.NewClient(cache.ClientParams{Lc: lc, Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}

	return cache.NewPositionCache(client, cfg), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewZoneService,
			impl.NewVendorConfigService,
			impl.NewProximitySessionService,
			impl.NewEventLogService,
			impl.NewDeviceService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			monitor.New,
			fx.Annotate(
				monitor.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer runs the health server. A failing server shuts the app down so the
// monitor is stopped through its lifecycle hook.
func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
