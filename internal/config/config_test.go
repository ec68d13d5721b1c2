package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/schemafold/pkg/schemafold"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `migrations_dir: db/migrations
baseline: 0000_base.sql
output: db/setup.sql
known_tables:
  - users
  - Jobs
header_replacements:
  - from: "-- Base"
    to: "-- Setup"
verify:
  connection: postgresql://localhost/postgres
  maintenance_database: template1
  timeout: 45s
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.Equal(t, "0000_base.sql", cfg.Baseline)
	assert.Equal(t, "db/setup.sql", cfg.Output)
	assert.Equal(t, []string{"users", "Jobs"}, cfg.KnownTables)
	assert.Equal(t, []schemafold.HeaderReplacement{{From: "-- Base", To: "-- Setup"}}, cfg.HeaderReplacements)
	assert.Equal(t, "postgresql://localhost/postgres", cfg.Verify.Connection)
	assert.Equal(t, "template1", cfg.Verify.MaintenanceDatabase)

	timeout, err := cfg.VerifyTimeout(time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "{{invalid")

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := writeConfig(t, "")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestConsolidationConfig_Defaults(t *testing.T) {
	var p *ProjectConfig
	cfg := p.ConsolidationConfig()

	assert.Equal(t, schemafold.DefaultMigrationsDir, cfg.MigrationsDir)
	assert.Equal(t, schemafold.DefaultBaselineFile, cfg.BaselineFile)
	assert.Equal(t, schemafold.DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, schemafold.DefaultKnownTables, cfg.KnownTables)
	assert.Equal(t, schemafold.DefaultHeaderReplacements, cfg.HeaderReplacements)
	require.NoError(t, cfg.Validate())

	cfg.KnownTables[0] = "mutated"
	assert.NotEqual(t, "mutated", schemafold.DefaultKnownTables[0], "defaults must be copied")
}

func TestConsolidationConfig_Overrides(t *testing.T) {
	dir := writeConfig(t, `output: out.sql
known_tables: []
`)
	p, err := Load(dir)
	require.NoError(t, err)

	cfg := p.ConsolidationConfig()
	assert.Equal(t, "out.sql", cfg.OutputPath)
	assert.Equal(t, schemafold.DefaultMigrationsDir, cfg.MigrationsDir)
	assert.Empty(t, cfg.KnownTables, "explicit empty list disables the default known tables")
}

func TestVerifyTimeout(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"unset", "", 2 * time.Minute, false},
		{"valid", "90s", 90 * time.Second, false},
		{"garbage", "soon", 0, true},
		{"negative", "-1s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ProjectConfig{Verify: VerifyConfig{Timeout: tt.value}}
			got, err := p.VerifyTimeout(2 * time.Minute)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, schemafold.ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
