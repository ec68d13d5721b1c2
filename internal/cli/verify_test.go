package cli

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/schemafold/internal/config"
	testhelpers "github.com/vvka-141/schemafold/internal/testing"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

func clearConnectionEnv(t *testing.T) {
	t.Helper()
	for _, name := range connectionEnvVars {
		t.Setenv(name, "")
	}
}

func TestResolveConnectionString_Priority(t *testing.T) {
	clearConnectionEnv(t)
	projectCfg := &config.ProjectConfig{Verify: config.VerifyConfig{Connection: "postgres://from-config"}}

	assert.Equal(t, "postgres://from-flag", resolveConnectionString("postgres://from-flag", projectCfg))
	assert.Equal(t, "postgres://from-config", resolveConnectionString("", projectCfg))

	t.Setenv("DATABASE_URL", "postgres://from-database-url")
	assert.Equal(t, "postgres://from-database-url", resolveConnectionString("", nil))

	t.Setenv("SCHEMAFOLD_DATABASE_URL", "postgres://from-schemafold-env")
	assert.Equal(t, "postgres://from-schemafold-env", resolveConnectionString("", nil))
}

func TestResolveConnectionString_None(t *testing.T) {
	clearConnectionEnv(t)
	assert.Empty(t, resolveConnectionString("", nil))
}

func TestResolveVerifyTimeout(t *testing.T) {
	resetFlags()

	d, err := resolveVerifyTimeout(nil)
	require.NoError(t, err)
	assert.Equal(t, schemafold.DefaultVerifyTimeout, d)

	d, err = resolveVerifyTimeout(&config.ProjectConfig{Verify: config.VerifyConfig{Timeout: "45s"}})
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)

	verifyFlags.timeout = 10 * time.Second
	d, err = resolveVerifyTimeout(&config.ProjectConfig{Verify: config.VerifyConfig{Timeout: "45s"}})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d, "flag wins")

	verifyFlags.timeout = -time.Second
	_, err = resolveVerifyTimeout(nil)
	assert.ErrorIs(t, err, schemafold.ErrInvalidConfig)
}

func TestRunVerify_MissingConnection(t *testing.T) {
	resetFlags()
	clearConnectionEnv(t)
	p := newTestProject(t, map[string]string{testBaselineName: baselineSQL})
	verifyFlags.source = p.flags()

	cmd, _, _ := newTestCmd()
	err := runVerify(cmd, nil)

	require.Error(t, err)
	assert.Equal(t, schemafold.ExitConfigError, schemafold.ExitCodeForError(err))
}

func TestRunVerify_MissingBaseline(t *testing.T) {
	resetFlags()
	p := newTestProject(t, nil)
	verifyFlags.source = p.flags()
	verifyFlags.connection = "postgres://localhost:1/postgres"

	cmd, _, _ := newTestCmd()
	err := runVerify(cmd, nil)

	require.Error(t, err)
	assert.Equal(t, schemafold.ExitBaselineMissing, schemafold.ExitCodeForError(err))
}

func TestRunVerify_Integration(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	resetFlags()

	p := newTestProject(t, map[string]string{
		testBaselineName:    baselineSQL,
		"20240101_tags.sql": "CREATE TABLE tags (id int, user_id uuid REFERENCES users (id));\n",
	})
	verifyFlags.source = p.flags()
	verifyFlags.connection = connString

	cmd, out, _ := newTestCmd()
	require.NoError(t, runVerify(cmd, nil))
	assert.Contains(t, out.String(), "Script executed cleanly")

	_, statErr := os.Stat(p.output)
	assert.True(t, os.IsNotExist(statErr), "verify does not write the output file")
}

func TestRunVerify_Integration_BrokenScript(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	resetFlags()

	p := newTestProject(t, map[string]string{
		testBaselineName:   baselineSQL,
		"20240101_bad.sql": "CREATE TABLE bad (id no_such_type);\n",
	})
	verifyFlags.source = p.flags()
	verifyFlags.connection = connString

	cmd, _, _ := newTestCmd()
	err := runVerify(cmd, nil)

	require.Error(t, err)
	assert.Equal(t, schemafold.ExitVerifyFailed, schemafold.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "20240101_bad.sql:1")
}
