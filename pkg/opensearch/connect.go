package opensearch

import (
	"context"
	"errors"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Connect creates a new OpenSearch client and verifies the cluster is
// reachable with an Info call. Address and credential contracts are checked
// before the client is constructed.
func Connect(ctx context.Context, cfg Config) (*opensearch.Client, error) {
	if _, err := guard.NotNil(cfg.Addresses, "cfg.Addresses"); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if _, err := guard.LowerBound(len(cfg.Addresses), "cfg.Addresses length", 1); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	for i := range cfg.Addresses {
		if _, err := guard.NotNilNotEmpty(&cfg.Addresses[i], "cfg.Addresses element"); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
	}
	if _, err := guard.NotNilNotEmpty(&cfg.Username, "cfg.Username"); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if _, err := guard.NotNilNotEmpty(&cfg.Password, "cfg.Password"); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	ocfg := opensearch.Config{
		Addresses:    cfg.Addresses,
		Username:     cfg.Username,
		Password:     cfg.Password,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.DisableRetry,
	}
	client, err := opensearch.NewClient(ocfg)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	// Verify the cluster is actually reachable before handing the client out.
	if err := Healthcheck(client)(ctx); err != nil {
		return nil, err
	}

	return client, nil
}
