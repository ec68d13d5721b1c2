package consolidate

import (
	"strings"

	"github.com/vvka-141/schemafold/internal/sqlscan"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// Status classifies a CREATE TABLE occurrence.
type Status int

const (
	// StatusNew marks a statement that will be appended to the output.
	StatusNew Status = iota
	// StatusKnown marks a table the baseline already defines.
	StatusKnown
	// StatusMalformed marks a statement whose body or terminator was not found.
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusKnown:
		return "known"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Occurrence is one CREATE TABLE keyword match and what became of it.
type Occurrence struct {
	Match  sqlscan.KeywordMatch
	Status Status

	// Candidate is set only for StatusNew.
	Candidate schemafold.StatementCandidate
}

// ScanFile finds every CREATE TABLE occurrence in file, in source order.
//
// Known tables are skipped without scanning their body; the search resumes
// right after the keyword. New tables are handed to the boundary scanner and
// the search resumes after the statement. Malformed statements resume after
// the keyword so later statements in the file are still found.
func ScanFile(file schemafold.MigrationFile, known schemafold.KnownEntitySet) []Occurrence {
	var occurrences []Occurrence
	text := file.Content
	pos := 0

	for {
		m, ok := sqlscan.FindCreateTable(text, pos)
		if !ok {
			return occurrences
		}

		if known.Contains(m.Name) {
			occurrences = append(occurrences, Occurrence{Match: m, Status: StatusKnown})
			pos = m.End
			continue
		}

		end, ok := sqlscan.LocateStatementEnd(text, m.End)
		if !ok {
			occurrences = append(occurrences, Occurrence{Match: m, Status: StatusMalformed})
			pos = m.End
			continue
		}

		occurrences = append(occurrences, Occurrence{
			Match:  m,
			Status: StatusNew,
			Candidate: schemafold.StatementCandidate{
				Entity: m.Name,
				Schema: m.Schema,
				Source: file.Name,
				Start:  m.Start,
				End:    end,
				Line:   strings.Count(text[:m.Start], "\n") + 1,
				Text:   text[m.Start:end],
			},
		})
		pos = end
	}
}
