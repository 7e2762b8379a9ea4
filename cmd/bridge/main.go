package main

import (
	"context"
	"log/slog"
	"os"

	"simbridge/config"
	"simbridge/internal/delivery"
	"simbridge/internal/delivery/http"
	"simbridge/internal/delivery/http/router/handler"
	"simbridge/internal/delivery/middleware"
	"simbridge/internal/infra/hub"
	logs "simbridge/internal/infra/log"
	"simbridge/internal/infra/persistence/sqlite"
	"simbridge/internal/modemsession"
	"simbridge/internal/registry"
	"simbridge/internal/usecase/impl"

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
		sqlite.New,
		registry.New,
		hub.NewClient,
		modemsession.NewManager,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewActivationRepository,
			sqlite.NewSMSRepository,
			sqlite.NewNumberUsageRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewActivationService,
			impl.NewForwardService,
			impl.NewReportingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHubHandler,
			handler.NewDashboardHandler,
			handler.NewModemHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
