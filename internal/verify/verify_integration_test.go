package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/schemafold/internal/logging"
	"github.com/vvka-141/schemafold/internal/sourcemap"
	testhelpers "github.com/vvka-141/schemafold/internal/testing"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

func TestVerify_Integration_Success(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	script := `CREATE TABLE users (id uuid PRIMARY KEY, name text DEFAULT 'a(b');
CREATE TABLE tags (id int, user_id uuid REFERENCES users(id));
`
	result, err := New(logging.NewNullLogger()).Verify(ctx, Config{ConnectionString: connString}, script)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Database)
	assert.False(t, testhelpers.DatabaseExists(t, connString, result.Database), "scratch database is dropped")
}

func TestVerify_Integration_KeepDatabase(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := New(logging.NewNullLogger()).Verify(ctx, Config{
		ConnectionString: connString,
		KeepDatabase:     true,
	}, "CREATE TABLE kept (id int);")
	require.NoError(t, err)
	t.Cleanup(func() { testhelpers.CleanupTestDB(t, connString, result.Database) })

	assert.True(t, testhelpers.DatabaseExists(t, connString, result.Database))
}

func TestVerify_Integration_ScriptFailureReportsLine(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	script := "CREATE TABLE a (id int);\nCREATE TABLE b (\n  id nope\n);\n"
	_, err := New(logging.NewNullLogger()).Verify(ctx, Config{ConnectionString: connString}, script)

	require.Error(t, err)
	assert.ErrorIs(t, err, schemafold.ErrVerifyFailed)
	assert.Equal(t, schemafold.ExitVerifyFailed, schemafold.ExitCodeForError(err))

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "42704", execErr.Err.Code)
	assert.Equal(t, 3, execErr.Line)
	assert.Empty(t, execErr.File, "no source map supplied")
}

func TestVerify_Integration_FailureMappedToMigration(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	script := "CREATE TABLE a (id int);\nCREATE TABLE b (\n  id nope\n);\n"
	sm := sourcemap.New()
	sm.Add(1, 1, "0000_initial.sql", 1, "baseline")
	sm.Add(2, 4, "0007_b.sql", 10, "table b")

	_, err := New(logging.NewNullLogger()).Verify(ctx, Config{ConnectionString: connString, SourceMap: sm}, script)

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "0007_b.sql", execErr.File)
	assert.Equal(t, 11, execErr.FileLine)
}
