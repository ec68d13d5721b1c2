package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type VerifyConfig struct {
	Connection          string `yaml:"connection,omitempty"`
	MaintenanceDatabase string `yaml:"maintenance_database,omitempty"`
	Timeout             string `yaml:"timeout,omitempty"`
}

type ProjectConfig struct {
	MigrationsDir      string                         `yaml:"migrations_dir"`
	Baseline           string                         `yaml:"baseline"`
	Output             string                         `yaml:"output"`
	KnownTables        []string                       `yaml:"known_tables"`
	HeaderReplacements []schemafold.HeaderReplacement `yaml:"header_replacements"`
	Verify             VerifyConfig                   `yaml:"verify"`
}

const ConfigFileName = "schemafold.yaml"

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	return &cfg, nil
}

// ConsolidationConfig merges the project config over the built-in defaults.
// A nil receiver yields the defaults. known_tables present but empty means
// "no known tables"; absent means the default list.
func (p *ProjectConfig) ConsolidationConfig() schemafold.ConsolidationConfig {
	cfg := schemafold.ConsolidationConfig{
		MigrationsDir:      schemafold.DefaultMigrationsDir,
		BaselineFile:       schemafold.DefaultBaselineFile,
		OutputPath:         schemafold.DefaultOutputPath,
		KnownTables:        append([]string(nil), schemafold.DefaultKnownTables...),
		HeaderReplacements: append([]schemafold.HeaderReplacement(nil), schemafold.DefaultHeaderReplacements...),
	}
	if p == nil {
		return cfg
	}

	if p.MigrationsDir != "" {
		cfg.MigrationsDir = p.MigrationsDir
	}
	if p.Baseline != "" {
		cfg.BaselineFile = p.Baseline
	}
	if p.Output != "" {
		cfg.OutputPath = p.Output
	}
	if p.KnownTables != nil {
		cfg.KnownTables = append([]string(nil), p.KnownTables...)
	}
	if p.HeaderReplacements != nil {
		cfg.HeaderReplacements = append([]schemafold.HeaderReplacement(nil), p.HeaderReplacements...)
	}
	return cfg
}

// VerifyTimeout parses verify.timeout, falling back to def when unset.
func (p *ProjectConfig) VerifyTimeout(def time.Duration) (time.Duration, error) {
	if p == nil || p.Verify.Timeout == "" {
		return def, nil
	}
	d, err := time.ParseDuration(p.Verify.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid verify.timeout %q: %w", p.Verify.Timeout, schemafold.ErrInvalidConfig)
	}
	if d <= 0 {
		return 0, fmt.Errorf("verify.timeout must be positive, got %s: %w", d, schemafold.ErrInvalidConfig)
	}
	return d, nil
}
