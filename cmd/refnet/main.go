package main

import (
	"context"
	"log/slog"
	"os"

	"refnet/config"
	"refnet/internal/delivery"
	"refnet/internal/delivery/http"
	"refnet/internal/delivery/http/middleware"
	"refnet/internal/delivery/http/router/handler"
	"refnet/internal/domain/service"
	"refnet/internal/infra/auth"
	logs "refnet/internal/infra/log"
	"refnet/internal/infra/persistence/postgres"
	"refnet/internal/infra/pubsub"
	"refnet/internal/infra/qrcode"
	"refnet/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAccountDetailsRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newReferralQRService,
		),
	)
}

// newReferralQRService creates a referral QR service with dependency injection
func newReferralQRService(cfg *config.Config) service.ReferralQRService {
	if cfg.Referral == nil {
		// Use default values if not configured
		return qrcode.NewReferralQRService("http://localhost:8080", 256, "M")
	}

	return qrcode.NewReferralQRService(cfg.Referral.BaseURL, cfg.Referral.QRSize, cfg.Referral.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewSessionService,
			impl.NewDetailsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
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
