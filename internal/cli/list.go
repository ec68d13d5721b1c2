package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/schemafold/internal/files/scanner"
	"github.com/vvka-141/schemafold/internal/files/writer"
	"github.com/vvka-141/schemafold/internal/logging"
	"github.com/vvka-141/schemafold/internal/services"
	"github.com/vvka-141/schemafold/internal/ui"
)

var listFlags sourceFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every CREATE TABLE occurrence and whether it would be appended",
	Long: `List scans the additional migrations exactly as consolidation does and
prints, per file, each CREATE TABLE occurrence with its status:

  new        appended to the output
  known      already defined by the baseline, skipped
  malformed  body or terminator not found, dropped

Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	addSourceFlags(listCmd, &listFlags)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConsolidationConfig(listFlags)
	if err != nil {
		return err
	}

	logger := logging.NewErrorOnlyLogger(cmd.ErrOrStderr())
	if rootFlags.verbose {
		logger = newLogger(cmd)
	}
	svc := services.NewConsolidationService(scanner.NewScanner(), writer.New(), logger)

	files, skipped, err := svc.Inspect(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderOccurrences(files, skipped, colorFor(cmd)))
	return nil
}
