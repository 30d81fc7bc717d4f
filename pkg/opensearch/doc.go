// Package opensearch provides a lightweight wrapper around the official
// OpenSearch Go client adding type-safe configuration, guarded connection
// contracts, automatic cluster health checking, and standardized error values.
//
// The package builds on top of github.com/opensearch-project/opensearch-go/v2,
// whose client is safe for concurrent use. Beyond the underlying client, the
// package focuses on three public touch points:
//
//   - Config: declarative representation of connection settings that can be
//     populated from environment variables via the config package.
//
//   - Connect: constructs a ready-to-use *opensearch.Client instance after
//     checking address and credential contracts, and performs an initial
//     Healthcheck ensuring the cluster is reachable.
//
//   - Healthcheck: returns a function suitable for liveness / readiness
//     probes (for example in HTTP /health endpoints).
//
// Errors specific to connectivity are exposed as ErrConnectionFailed and
// ErrHealthcheckFailed so that callers can distinguish infrastructure
// problems from business logic errors; violated contracts surface as
// ErrInvalidConfig wrapping a guard parameter error.
//
// # Usage
//
// Basic connection:
//
//	import (
//	    "context"
//
//	    "github.com/guardkit/guardkit/pkg/opensearch"
//	)
//
//	client, err := opensearch.Connect(context.Background(), opensearch.Config{
//	    Addresses: []string{"https://localhost:9200"},
//	    Username:  "admin",
//	    Password:  "admin",
//	})
//	if err != nil {
//	    // use errors.Is(err, opensearch.ErrConnectionFailed)
//	}
//
//	info, _ := client.Info()
//
// Environment-based configuration:
//
//	import (
//	    "context"
//
//	    "github.com/guardkit/guardkit/pkg/config"
//	    "github.com/guardkit/guardkit/pkg/opensearch"
//	)
//
//	var cfg opensearch.Config
//	config.MustLoad(&cfg)
//	client, _ := opensearch.Connect(context.Background(), cfg)
//
// # Error Handling
//
// Use the standard errors.Is / errors.As helpers to check for sentinel errors:
//
//	if err := opensearch.Healthcheck(client)(ctx); err != nil {
//	    if errors.Is(err, opensearch.ErrHealthcheckFailed) {
//	        // handle health-check failure
//	    }
//	}
package opensearch
