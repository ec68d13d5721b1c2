// Package verify executes a consolidated script against a throwaway
// PostgreSQL database to prove it runs from scratch.
package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vvka-141/schemafold/internal/db/manager"
	"github.com/vvka-141/schemafold/internal/retry"
	"github.com/vvka-141/schemafold/internal/sourcemap"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// dropTimeout bounds scratch database cleanup, which runs even when the
// caller's context has expired.
const dropTimeout = 30 * time.Second

// Config describes where to verify.
type Config struct {
	// ConnectionString points at any database on the target server.
	ConnectionString string

	// MaintenanceDatabase overrides the database used for CREATE/DROP DATABASE.
	// Empty means schemafold.DefaultMaintenanceDB.
	MaintenanceDatabase string

	// KeepDatabase leaves the scratch database in place for inspection.
	KeepDatabase bool

	// SourceMap, when set, attributes script failures to migration files.
	SourceMap *sourcemap.SourceMap
}

// Result describes a successful verification.
type Result struct {
	Database string
	Duration time.Duration
}

// ExecError locates a statement failure inside the script.
type ExecError struct {
	Line int // 1-based, 0 when the server did not report a position
	Err  *pgconn.PgError

	// File and FileLine locate Line in the originating migration, when known.
	File     string
	FileLine int
}

func (e *ExecError) Error() string {
	var where string
	switch {
	case e.File != "":
		where = fmt.Sprintf("line %d (%s:%d): ", e.Line, e.File, e.FileLine)
	case e.Line > 0:
		where = fmt.Sprintf("line %d: ", e.Line)
	}
	return fmt.Sprintf("%s%s (SQLSTATE %s)", where, e.Err.Message, e.Err.Code)
}

func (e *ExecError) Unwrap() error { return e.Err }

type connectFunc func(ctx context.Context, cfg *pgx.ConnConfig) (*pgx.Conn, error)

// Verifier creates a scratch database, runs the script in it and drops it.
// Not safe for concurrent Verify calls sharing a logger that is not.
type Verifier struct {
	logger   schemafold.Logger
	connect  connectFunc
	executor *retry.Executor
	dbs      *manager.Manager
}

// New creates a Verifier with the default connection retry policy.
// Panics if logger is nil.
func New(logger schemafold.Logger) *Verifier {
	if logger == nil {
		panic("logger cannot be nil")
	}
	policy := retry.NewPolicy(schemafold.DefaultRetryMaxAttempts,
		schemafold.DefaultRetryInitialDelay, schemafold.DefaultRetryMaxDelay)
	executor := retry.NewExecutor(policy, retry.IsTransientPostgresError).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Verbose("Connection attempt %d failed (%v); retrying in %s", attempt+1, err, delay)
		})

	return &Verifier{
		logger:   logger,
		connect:  pgx.ConnectConfig,
		executor: executor,
		dbs:      manager.New(),
	}
}

// Verify runs script inside a fresh database on the server named by cfg.
// Connection failures wrap schemafold.ErrConnectionFailed; script failures
// wrap schemafold.ErrVerifyFailed and an *ExecError.
func (v *Verifier) Verify(ctx context.Context, cfg Config, script string) (Result, error) {
	started := time.Now()

	baseCfg, err := pgx.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return Result{}, fmt.Errorf("invalid connection string: %w: %w", schemafold.ErrInvalidConfig, err)
	}

	maintenanceDB := cfg.MaintenanceDatabase
	if maintenanceDB == "" {
		maintenanceDB = schemafold.DefaultMaintenanceDB
	}

	admin, err := v.open(ctx, baseCfg, maintenanceDB)
	if err != nil {
		return Result{}, err
	}
	defer admin.Close(context.Background())

	scratch := ScratchDatabaseName()
	if err := v.dbs.Create(ctx, admin, scratch); err != nil {
		return Result{}, err
	}
	v.logger.Verbose("Created scratch database %s", scratch)

	if cfg.KeepDatabase {
		v.logger.Info("Keeping scratch database %s", scratch)
	} else {
		defer v.drop(admin, scratch)
	}

	target, err := v.open(ctx, baseCfg, scratch)
	if err != nil {
		return Result{}, err
	}
	execErr := v.execute(ctx, target, script, cfg.SourceMap)
	target.Close(context.Background())
	if execErr != nil {
		return Result{}, execErr
	}

	return Result{Database: scratch, Duration: time.Since(started)}, nil
}

func (v *Verifier) open(ctx context.Context, base *pgx.ConnConfig, database string) (*pgx.Conn, error) {
	connCfg := base.Copy()
	connCfg.Database = database

	var conn *pgx.Conn
	err := v.executor.Execute(ctx, func(ctx context.Context) error {
		c, err := v.connect(ctx, connCfg)
		if err != nil {
			return err
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s on %s: %w: %w", database, connCfg.Host, schemafold.ErrConnectionFailed, err)
	}
	return conn, nil
}

// execute sends the whole script in one simple-protocol round trip, so
// multi-statement scripts run as written and stop at the first error.
func (v *Verifier) execute(ctx context.Context, conn *pgx.Conn, script string, sm *sourcemap.SourceMap) error {
	v.logger.Verbose("Executing %d bytes of SQL", len(script))

	_, err := conn.PgConn().Exec(ctx, script).ReadAll()
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		execErr := &ExecError{
			Line: LineForPosition(script, int(pgErr.Position)),
			Err:  pgErr,
		}
		if file, line, _, ok := sm.Resolve(execErr.Line); ok {
			execErr.File, execErr.FileLine = file, line
		}
		return fmt.Errorf("%w: %w", schemafold.ErrVerifyFailed, execErr)
	}
	return fmt.Errorf("%w: %w", schemafold.ErrVerifyFailed, err)
}

func (v *Verifier) drop(admin *pgx.Conn, database string) {
	ctx, cancel := context.WithTimeout(context.Background(), dropTimeout)
	defer cancel()

	if err := v.dbs.Drop(ctx, admin, database); err != nil {
		v.logger.Error("%v", err)
		return
	}
	v.logger.Verbose("Dropped scratch database %s", database)
}

// ScratchDatabaseName returns a fresh, identifier-safe database name.
func ScratchDatabaseName() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return schemafold.VerifyDatabasePrefix + id[:16]
}

// LineForPosition converts a PostgreSQL error position (1-based character
// offset) into a 1-based line number. Returns 0 for an unknown position.
func LineForPosition(script string, position int) int {
	if position <= 0 {
		return 0
	}
	line := 1
	chars := 0
	for _, r := range script {
		chars++
		if chars >= position {
			return line
		}
		if r == '\n' {
			line++
		}
	}
	return line
}
