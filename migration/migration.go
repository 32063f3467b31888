package migration

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:embed migrations/*.json
var migrationFS embed.FS

const connectTimeout = 10 * time.Second

// RunMongoMigration applies the embedded schema migrations. It runs on every
// boot, before the repository is first used, and is a no-op when the
// database is already current.
//
// The migrate driver still speaks the v1 mongo client, so this package keeps
// its own short-lived connection instead of borrowing the repository's.
func RunMongoMigration(cfg config.MongoDBConfig) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migration source, err: %w", err)
	}

	opts := options.Client().ApplyURI(mongoURI(cfg))
	if cfg.CAPem != "" {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM([]byte(cfg.CAPem)) {
			return fmt.Errorf("failed to parse mongodb ca pem")
		}
		opts.SetTLSConfig(&tls.Config{RootCAs: pool})
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("connect mongodb for migration, err: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	driver, err := mongodb.WithInstance(client, &mongodb.Config{DatabaseName: cfg.Database})
	if err != nil {
		return fmt.Errorf("init migration driver, err: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("init migrator, err: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations, err: %w", err)
	}

	logger.Logger(ctx).Info().Msg("mongodb migrations applied")
	return nil
}

func mongoURI(cfg config.MongoDBConfig) string {
	if cfg.User != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s", cfg.User, string(cfg.Password), cfg.Host, cfg.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
}
