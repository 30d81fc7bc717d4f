package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Connect creates a new mongo client, retrying the connection according to
// the RetryAttempts and RetryInterval config values. Configuration contracts
// are checked before any dial attempt.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if _, err := guard.NotNilNotEmpty(&cfg.ConnectionURL, "cfg.ConnectionURL"); err != nil {
		return nil, errors.Join(ErrEmptyConnectionURL, err)
	}
	if _, err := guard.LowerBound(cfg.RetryAttempts, "cfg.RetryAttempts", 1); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if _, err := guard.LowerBound(cfg.MaxPoolSize, "cfg.MaxPoolSize", 1); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime).
				SetRetryWrites(cfg.RetryWrites).
				SetRetryReads(cfg.RetryReads),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
		}

		time.Sleep(cfg.RetryInterval)
	}

	return nil, ErrFailedToConnectToMongo
}

// ConnectDatabase creates a new mongo client and returns a handle to the
// named database. The database name must not be blank.
func ConnectDatabase(ctx context.Context, cfg Config, database string) (*mongo.Database, error) {
	name, err := guard.NotNilNotEmpty(&database, "database")
	if err != nil {
		return nil, errors.Join(ErrEmptyDatabaseName, err)
	}

	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(name), nil
}
