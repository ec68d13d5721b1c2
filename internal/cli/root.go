package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/schemafold/internal/config"
	"github.com/vvka-141/schemafold/internal/logging"
	"github.com/vvka-141/schemafold/internal/ui"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

var rootFlags struct {
	verbose    bool
	configPath string
}

var rootCmd = &cobra.Command{
	Use:   "schemafold",
	Short: "Consolidate SQL migrations into one setup-from-scratch script",
	Long: `schemafold reads a baseline migration and every other *.sql file in the
migrations directory, and appends each CREATE TABLE statement whose table the
baseline does not already define. The result is a single script that builds
the schema on an empty database.

Only CREATE TABLE statements are carried over. Functions, triggers, indexes,
RLS policies and dependency ordering are NOT handled.

Running schemafold without a subcommand consolidates using the defaults,
overridden by schemafold.yaml and then by flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed (verify)
  13 - Consolidated script failed to execute (verify)
  14 - Baseline migration not found`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConsolidate,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "",
		"Path to project config (default: ./"+config.ConfigFileName+" when present)")
	addSourceFlags(rootCmd, &consolidateFlags)
	rootCmd.Flags().BoolVar(&consolidateFlags.dryRun, "dry-run", false, "Consolidate without writing the output file")
}

// sourceFlags select which migrations are consolidated.
type sourceFlags struct {
	migrationsDir string
	baseline      string
	output        string
	known         []string
	dryRun        bool
}

func addSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringVar(&f.migrationsDir, "migrations-dir", "",
		"Directory holding the migrations (default: "+schemafold.DefaultMigrationsDir+")")
	cmd.Flags().StringVar(&f.baseline, "baseline", "",
		"Baseline file name inside the migrations directory (default: "+schemafold.DefaultBaselineFile+")")
	cmd.Flags().StringVarP(&f.output, "output", "o", "",
		"Output path (default: "+schemafold.DefaultOutputPath+")")
	cmd.Flags().StringSliceVar(&f.known, "known", nil,
		"Tables the baseline already defines; replaces the configured list")
}

// loadProjectConfig reads --config, or ./schemafold.yaml when present.
// Returns nil when no config applies.
func loadProjectConfig() (*config.ProjectConfig, error) {
	if rootFlags.configPath != "" {
		cfg, err := config.LoadFile(rootFlags.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w: %w", rootFlags.configPath, schemafold.ErrInvalidConfig, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", schemafold.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// resolveConsolidationConfig layers flags over the project config over defaults.
func resolveConsolidationConfig(f sourceFlags) (schemafold.ConsolidationConfig, *config.ProjectConfig, error) {
	projectCfg, err := loadProjectConfig()
	if err != nil {
		return schemafold.ConsolidationConfig{}, nil, err
	}

	cfg := projectCfg.ConsolidationConfig()
	if f.migrationsDir != "" {
		cfg.MigrationsDir = f.migrationsDir
	}
	if f.baseline != "" {
		cfg.BaselineFile = f.baseline
	}
	if f.output != "" {
		cfg.OutputPath = f.output
	}
	if len(f.known) > 0 {
		cfg.KnownTables = append([]string(nil), f.known...)
	}
	cfg.DryRun = f.dryRun
	cfg.Verbose = rootFlags.verbose
	return cfg, projectCfg, nil
}

func newLogger(cmd *cobra.Command) *logging.ConsoleLogger {
	return logging.NewConsoleLoggerWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), rootFlags.verbose)
}

// colorFor enables styling only when the command writes to a real terminal.
func colorFor(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && ui.ColorEnabled(f)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
