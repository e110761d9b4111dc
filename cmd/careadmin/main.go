package main

import (
	"context"
	"log/slog"
	"os"

	"careadmin/config"
	"careadmin/internal/delivery"
	"careadmin/internal/delivery/api"
	"careadmin/internal/delivery/api/middleware"
	"careadmin/internal/delivery/api/router/handler"
	"careadmin/internal/infra/auth"
	logs "careadmin/internal/infra/log"
	"careadmin/internal/infra/persistence"
	"careadmin/internal/infra/pubsub"
	"careadmin/internal/usecase"
	"careadmin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	CatalogUC usecase.CatalogUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			seedCatalogs,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewJWTService,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewCatalogService,
		impl.NewCaredPersonService,
		impl.NewAllergyService,
		impl.NewMedicationService,
		impl.NewMedicalConditionService,
		impl.NewVitalSignService,
		impl.NewActivityService,
		impl.NewActivityParticipationService,
		impl.NewCaregiverAssignmentService,
		impl.NewShiftObservationService,
		impl.NewReminderService,
		impl.NewAlertService,
		impl.NewDeviceService,
		impl.NewPackageService,
		impl.NewAuditService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
	)
}

func injectHandler() fx.Option {
	owned := func(constructor any) any {
		return fx.Annotate(constructor, fx.ResultTags(`group:"owned_routes"`))
	}

	return fx.Provide(
		handler.NewCatalogHandler,
		handler.NewCaredPersonHandler,
		handler.NewPackageHandler,
		handler.NewAuditHandler,
		owned(handler.NewAllergyHandler),
		owned(handler.NewMedicationHandler),
		owned(handler.NewMedicalConditionHandler),
		owned(handler.NewVitalSignHandler),
		owned(handler.NewActivityHandler),
		owned(handler.NewActivityParticipationHandler),
		owned(handler.NewCaregiverAssignmentHandler),
		owned(handler.NewShiftObservationHandler),
		owned(handler.NewReminderHandler),
		owned(handler.NewAlertHandler),
		owned(handler.NewDeviceHandler),
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// seedCatalogs inserts missing default catalog rows once the store is up.
func seedCatalogs(params seedParams) {
	if params.Config.Catalog == nil || !params.Config.Catalog.SeedOnStart {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			inserted, err := params.CatalogUC.SeedAll(ctx)
			if err != nil {
				return err
			}

			total := 0
			for _, n := range inserted {
				total += n
			}
			params.Logger.Info("Catalog defaults seeded", slog.Int("inserted", total))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
