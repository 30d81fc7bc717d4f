package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Healthcheck returns a health check function suitable for readiness and
// liveness probes. The returned function performs a lightweight Ping to
// verify MongoDB connectivity. A nil client yields a closure that always
// reports the violated contract.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	if _, err := guard.NotNil(client, "client"); err != nil {
		return func(context.Context) error {
			return errors.Join(ErrHealthcheckFailed, err)
		}
	}
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
