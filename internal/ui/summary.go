package ui

import (
	"fmt"
	"strings"

	"github.com/vvka-141/schemafold/internal/consolidate"
	"github.com/vvka-141/schemafold/internal/services"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// Disclaimer is printed after every consolidation summary.
const Disclaimer = "NOT handled: functions, triggers, indexes, RLS policies and dependency ordering. Review the output before running it."

// RenderSummary formats the end-of-run report.
func RenderSummary(report schemafold.Report, outputPath string, dryRun bool, color bool) string {
	st := NewStyles(color)
	var b strings.Builder

	if dryRun {
		b.WriteString(st.Title.Render("Dry run complete") + "\n")
	} else {
		b.WriteString(st.Title.Render(SymbolCheck+" Consolidation complete") + "\n")
	}

	row := func(label string, value string) {
		b.WriteString("  " + st.Label.Render(fmt.Sprintf("%-20s", label)) + value + "\n")
	}

	row("Files scanned:", fmt.Sprintf("%d", report.FilesScanned))
	skipped := fmt.Sprintf("%d", len(report.FilesSkipped))
	if len(report.FilesSkipped) > 0 {
		skipped = st.Warning.Render(skipped)
	}
	row("Files skipped:", skipped)
	row("Tables appended:", st.Success.Render(fmt.Sprintf("%d", report.TablesAppended)))
	row("Known skipped:", fmt.Sprintf("%d", report.KnownSkipped))

	dropped := fmt.Sprintf("%d", report.Dropped)
	if report.Dropped > 0 {
		dropped = st.Warning.Render(fmt.Sprintf("%s (%s)", dropped, strings.Join(report.DroppedEntities, ", ")))
	}
	row("Malformed dropped:", dropped)

	if dryRun {
		row("Output:", "(not written)")
	} else {
		row("Output:", outputPath)
	}

	for _, fe := range report.FilesSkipped {
		b.WriteString("  " + st.Warning.Render(SymbolCross+" "+fe.Error()) + "\n")
	}

	b.WriteString("\n" + st.Muted.Render(Disclaimer) + "\n")
	return b.String()
}

// RenderOccurrences formats the per-file listing produced by the list command.
func RenderOccurrences(files []services.FileOccurrences, skipped []*schemafold.FileError, color bool) string {
	st := NewStyles(color)
	var b strings.Builder

	for _, f := range files {
		b.WriteString(st.Title.Render(f.File) + "\n")
		if len(f.Occurrences) == 0 {
			b.WriteString("  " + st.Muted.Render("no CREATE TABLE statements") + "\n")
			continue
		}
		for _, occ := range f.Occurrences {
			name := occ.Match.Name
			if occ.Match.Schema != "" {
				name = occ.Match.Schema + "." + name
			}
			line := fmt.Sprintf("  %-10s %s", occ.Status.String(), name)
			switch occ.Status {
			case consolidate.StatusNew:
				line = st.Success.Render(line)
			case consolidate.StatusMalformed:
				line = st.Error.Render(line)
			default:
				line = st.Label.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	for _, fe := range skipped {
		b.WriteString(st.Warning.Render(SymbolCross+" "+fe.Error()) + "\n")
	}
	return b.String()
}
