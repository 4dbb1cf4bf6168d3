package main

import (
	"context"
	"log/slog"
	"os"

	"proximity/config"
	"proximity/internal/delivery"
	"proximity/internal/delivery/api"
	"proximity/internal/delivery/api/middleware"
	"proximity/internal/delivery/api/router/handler"
	"proximity/internal/infra/auth"
	logs "proximity/internal/infra/log"
	"proximity/internal/infra/notification"
	"proximity/internal/infra/persistence/postgres"
	"proximity/internal/infra/pubsub"
	"proximity/internal/infra/quota"
	"proximity/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			auth.NewJWTService,
			notification.NewNotificationService,
			quota.NewUsageClient,
		),
		pubsub.Module,
	)
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

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewZoneHandler,
			handler.NewConfigHandler,
			handler.NewSessionHandler,
			handler.NewEventHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
