package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/weaversoft/snapwatch/cache"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/pkg/logger"
	"github.com/weaversoft/snapwatch/pkg/util"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Repo          domain.Repository
	Dispatcher    domain.TriggerDispatcher
	SourceFactory domain.EventSourceFactory
	KeyConfig     config.KeyConfig
	AccountConfig config.AccountConfig
	HookConfig    config.HookConfig
	WatchConfig   config.WatchConfig
}

func NewService(params Params) (domain.Service, error) {
	jwtPrivateKey, err := initRSAPrivateKey(params.KeyConfig.RsaPrivateKeyPem)
	if err != nil {
		return nil, fmt.Errorf("initialize RSA private key: %w", err)
	}

	svc := &Service{
		Repo:          params.Repo,
		Dispatcher:    params.Dispatcher,
		SourceFactory: params.SourceFactory,
		accountConfig: params.AccountConfig,
		hookConfig:    params.HookConfig,
		watchConfig:   params.WatchConfig,
		jwtPrivateKey: jwtPrivateKey,
		dedup:         cache.NewDedupTracker(),
		ownership:     cache.NewOwnershipCache(cache.DefaultOwnershipTTL),
		metrics:       NewMetricCollector(util.GetMachineID()),
		loops:         make(map[string]*watchLoop),
		deleted:       make(map[string]struct{}),
	}

	err = prometheus.Register(svc.metrics)
	if err != nil {
		already := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("failed to register metric collector: %v", err)
		}
		svc.metrics = already.ExistingCollector.(*MetricCollector)
	}
	return svc, nil
}

type Service struct {
	Repo          domain.Repository
	Dispatcher    domain.TriggerDispatcher
	SourceFactory domain.EventSourceFactory

	accountConfig config.AccountConfig
	hookConfig    config.HookConfig
	watchConfig   config.WatchConfig
	jwtPrivateKey *rsa.PrivateKey

	dedup     *cache.DedupTracker
	ownership *cache.OwnershipCache
	metrics   *MetricCollector

	mu    sync.Mutex
	loops map[string]*watchLoop
	// deleted holds names whose removal has begun, so a start that fetched
	// the config before the delete cannot re-register an orphan loop.
	deleted map[string]struct{}
}

// initRSAPrivateKey parses the configured signing key. An empty PEM yields a
// fresh ephemeral key, which keeps single-node deployments working but
// invalidates issued tokens on every restart.
func initRSAPrivateKey(pemStr string) (*rsa.PrivateKey, error) {
	if pemStr == "" {
		logger.Logger(context.Background()).Warn().
			Msg("no RSA private key configured, generating an ephemeral one, issued tokens will not survive restarts")
		return rsa.GenerateKey(rand.Reader, 2048)
	}

	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block containing private key")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		// Try PKCS8 format
		keyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %v", err)
		}
		var ok bool
		key, ok = keyInterface.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA")
		}
	}
	return key, nil
}
