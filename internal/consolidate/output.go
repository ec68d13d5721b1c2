package consolidate

import (
	"strings"

	"github.com/vvka-141/schemafold/internal/sourcemap"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// RewriteHeader substitutes the first occurrence of each replacement's From.
// Replacements whose From is absent are ignored.
func RewriteHeader(baseline string, replacements []schemafold.HeaderReplacement) string {
	for _, r := range replacements {
		if r.From == "" {
			continue
		}
		baseline = strings.Replace(baseline, r.From, r.To, 1)
	}
	return baseline
}

// Assemble appends the banner section and one commented section per candidate
// to prefix. The banner is written even when there are no candidates.
func Assemble(prefix string, candidates []schemafold.StatementCandidate) string {
	size := len(prefix) + 3*len(schemafold.BannerRule)
	for _, c := range candidates {
		size += len(c.Text) + len(c.Entity) + len(schemafold.TableCommentPrefix) + 4
	}

	var b strings.Builder
	b.Grow(size)

	b.WriteString(prefix)
	if prefix != "" && !strings.HasSuffix(prefix, "\n") {
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(schemafold.BannerRule + "\n")
	b.WriteString(schemafold.AdditionalTablesTitle + "\n")
	b.WriteString(schemafold.BannerRule + "\n")

	for _, c := range candidates {
		b.WriteByte('\n')
		b.WriteString(schemafold.TableCommentPrefix + c.Entity + "\n")
		b.WriteString(c.Text)
		b.WriteByte('\n')
	}

	return b.String()
}

// MapSources records, for the document Assemble(prefix, candidates) produces,
// which output lines were copied from the baseline and from each candidate's
// source file. Banner and section comment lines are left unmapped.
func MapSources(prefix, baselineName string, candidates []schemafold.StatementCandidate) *sourcemap.SourceMap {
	sm := sourcemap.New()

	line := 0
	if prefix != "" {
		line = strings.Count(prefix, "\n")
		if !strings.HasSuffix(prefix, "\n") {
			line++
		}
		sm.Add(1, line, baselineName, 1, "baseline")
	}

	// blank line, rule, title, rule
	line += 4

	for _, c := range candidates {
		// blank line, "-- Table:" comment
		start := line + 3
		end := start + strings.Count(c.Text, "\n")
		sm.Add(start, end, c.Source, c.Line, "table "+c.Entity)
		line = end
	}
	return sm
}
