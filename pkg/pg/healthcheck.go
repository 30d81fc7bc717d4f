package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Healthcheck returns a closure that validates database connectivity, shaped
// for health check registries that expect func(context.Context) error.
// A nil pool yields a closure that always reports the violated contract.
func Healthcheck(conn *pgxpool.Pool) func(context.Context) error {
	if _, err := guard.NotNil(conn, "conn"); err != nil {
		return func(context.Context) error {
			return errors.Join(ErrHealthcheckFailed, err)
		}
	}
	return func(ctx context.Context) error {
		if err := conn.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
