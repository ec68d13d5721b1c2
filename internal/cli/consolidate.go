package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/schemafold/internal/files/scanner"
	"github.com/vvka-141/schemafold/internal/files/writer"
	"github.com/vvka-141/schemafold/internal/services"
	"github.com/vvka-141/schemafold/internal/ui"
)

var consolidateFlags sourceFlags

func runConsolidate(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConsolidationConfig(consolidateFlags)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	svc := services.NewConsolidationService(scanner.NewScanner(), writer.New(), logger)

	report, err := svc.Run(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), "\n"+ui.RenderSummary(report, cfg.OutputPath, cfg.DryRun, colorFor(cmd)))
	return nil
}
