package repository

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"time"

	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	watcherCollection = "watchers"
	userCollection    = "users"
)

const connectTimeout = 10 * time.Second

type Params struct {
	fx.In
	MongoConfig config.MongoDBConfig
}

type repo struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewRepository(params Params) (domain.Repository, error) {
	cfg := params.MongoConfig

	opts := options.Client().ApplyURI(mongoURI(cfg))
	if cfg.CAPem != "" {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM([]byte(cfg.CAPem)) {
			return nil, fmt.Errorf("failed to parse mongodb ca pem")
		}
		opts.SetTLSConfig(&tls.Config{RootCAs: pool})
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb, err: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb, err: %w", err)
	}

	return &repo{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

func mongoURI(cfg config.MongoDBConfig) string {
	if cfg.User != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s", cfg.User, string(cfg.Password), cfg.Host, cfg.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
}
