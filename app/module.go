package app

import (
	"github.com/weaversoft/snapwatch/adapter/kubernetes"
	"github.com/weaversoft/snapwatch/client"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/repository"
	"github.com/weaversoft/snapwatch/rest"
	"github.com/weaversoft/snapwatch/service"
	"go.uber.org/fx"
)

// ConfigModule provides the loaded configuration plus every section the
// other layers consume individually.
func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.Config {
			return cfg
		}),
		fx.Provide(func(cfg config.Config) config.ServerConfig {
			return cfg.Server
		}),
		fx.Provide(func(cfg config.Config) config.MongoDBConfig {
			return cfg.MongoDB
		}),
		fx.Provide(func(cfg config.Config) config.KeyConfig {
			return cfg.Key
		}),
		fx.Provide(func(cfg config.Config) config.AccountConfig {
			return cfg.Account
		}),
		fx.Provide(func(cfg config.Config) config.KubernetesConfig {
			return cfg.Kubernetes
		}),
		fx.Provide(func(cfg config.Config) config.HookConfig {
			return cfg.Hook
		}),
		fx.Provide(func(cfg config.Config) config.WatchConfig {
			return cfg.Watch
		}),
	), nil
}

// RepoModule creates an Fx module that provides the repository layer, return domain.Repository
func RepoModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(repository.NewRepository),
	), nil
}

// AdapterModule provides the outbound adapters: the per-watcher cluster
// client factory and the hook dispatcher.
func AdapterModule() fx.Option {
	return fx.Options(
		fx.Provide(kubernetes.NewEventSourceFactory),
		fx.Provide(client.NewHookDispatcher),
	)
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	repoModule, err := RepoModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		repoModule,
		AdapterModule(),
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(configName string, configPath string) (fx.Option, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
