package consolidate

import (
	"sort"

	"github.com/vvka-141/schemafold/internal/sourcemap"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// Options tune the assembled output.
type Options struct {
	// HeaderReplacements are applied to the baseline text, first occurrence each.
	HeaderReplacements []schemafold.HeaderReplacement

	// BaselineName labels baseline lines in the source map. Defaults to "baseline".
	BaselineName string
}

// Result is the outcome of Consolidate.
type Result struct {
	// Output is the complete consolidated document.
	Output string

	// Candidates are the appended statements, in output order.
	Candidates []schemafold.StatementCandidate

	// SourceMap locates each copied line of Output in its migration file.
	SourceMap *sourcemap.SourceMap

	// Report counts what happened. FilesSkipped and OutputChecksum are left
	// for the caller, which owns file I/O.
	Report schemafold.Report
}

// Consolidate appends every CREATE TABLE statement from files whose table is
// absent from known to baseline. files need not be sorted; they are processed
// in ascending Name order.
func Consolidate(baseline string, files []schemafold.MigrationFile, known schemafold.KnownEntitySet, opts Options) Result {
	ordered := make([]schemafold.MigrationFile, len(files))
	copy(ordered, files)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})

	var res Result
	for _, file := range ordered {
		res.Report.FilesScanned++
		for _, occ := range ScanFile(file, known) {
			switch occ.Status {
			case StatusNew:
				res.Candidates = append(res.Candidates, occ.Candidate)
			case StatusKnown:
				res.Report.KnownSkipped++
			case StatusMalformed:
				res.Report.Dropped++
				res.Report.DroppedEntities = append(res.Report.DroppedEntities, occ.Match.Name)
			}
		}
	}

	res.Report.TablesAppended = len(res.Candidates)
	prefix := RewriteHeader(baseline, opts.HeaderReplacements)
	res.Output = Assemble(prefix, res.Candidates)

	baselineName := opts.BaselineName
	if baselineName == "" {
		baselineName = "baseline"
	}
	res.SourceMap = MapSources(prefix, baselineName, res.Candidates)
	return res
}
