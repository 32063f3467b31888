package app

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/migration"
	"github.com/weaversoft/snapwatch/pkg/logger"
	"github.com/weaversoft/snapwatch/rest"
	"go.uber.org/fx"
)

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	handlerModule, err := HandlerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.Invoke(migration.RunMongoMigration),
		fx.Invoke(StartRestApp),
		fx.Invoke(StartWatcherEngine),
	)
	return app, nil
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := echo.New()
	engine.HideBanner = true
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = ":8080"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on port %s", serverHost)
				if err := engine.Start(serverHost); err != nil {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on port %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})
	return nil
}

// StartWatcherEngine seeds the admin account and resumes every persisted
// watcher on boot. Runtime state does not survive a restart, so each watcher
// comes back with a fresh loop and an empty dispatch history. On shutdown
// all loops are stopped within the fx stop timeout.
func StartWatcherEngine(lc fx.Lifecycle, svc domain.Service, accountCfg config.AccountConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := svc.CreateAdminUserIfNotExists(ctx, accountCfg.AdminUser, string(accountCfg.AdminPassword))
			if err != nil {
				return err
			}
			return svc.BootstrapWatchers(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return svc.StopAllWatchers(ctx)
		},
	})
}
