// Package retry retries transient database connection failures with
// exponential backoff.
//
// # Example Usage
//
//	policy := retry.NewPolicy(3, 100*time.Millisecond, 5*time.Second)
//	executor := retry.NewExecutor(policy, retry.IsTransientPostgresError)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    conn, err = pgx.ConnectConfig(ctx, cfg)
//	    return err
//	})
//
// SQLSTATE classes 08, 53 and 57 and common network failures are transient.
// Everything else, including authentication failures and context
// cancellation, fails immediately.
package retry
