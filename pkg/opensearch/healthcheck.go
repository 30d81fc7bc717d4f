package opensearch

import (
	"context"
	"errors"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Healthcheck returns a function suitable for liveness/readiness probes.
// The returned function calls client.Info() to verify cluster connectivity
// and is safe for concurrent use in HTTP health endpoints. A nil client
// yields a closure that always reports the violated contract.
func Healthcheck(client *opensearch.Client) func(context.Context) error {
	if _, err := guard.NotNil(client, "client"); err != nil {
		return func(context.Context) error {
			return errors.Join(ErrHealthcheckFailed, err)
		}
	}
	return func(ctx context.Context) error {
		if _, err := client.Info(
			client.Info.WithContext(ctx),
			client.Info.WithErrorTrace(),
		); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
