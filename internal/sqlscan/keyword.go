package sqlscan

import (
	"regexp"
	"strings"
)

var createTablePattern = regexp.MustCompile(
	`(?i)\bCREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?(?:([A-Za-z_][A-Za-z0-9_$]*)\s*\.\s*)?([A-Za-z_][A-Za-z0-9_$]*)`,
)

// KeywordMatch is one CREATE TABLE occurrence.
type KeywordMatch struct {
	// Start is the offset of CREATE.
	Start int

	// End is one past the table name; the body's '(' is at or after End.
	End int

	// Schema and Name are lowercased identifier tokens. Schema is empty when unqualified.
	Schema string
	Name   string

	// RawName is the table name as written.
	RawName string
}

// FindCreateTable returns the first CREATE TABLE occurrence at or after from.
func FindCreateTable(text string, from int) (KeywordMatch, bool) {
	if from < 0 || from >= len(text) {
		return KeywordMatch{}, false
	}

	loc := createTablePattern.FindStringSubmatchIndex(text[from:])
	if loc == nil {
		return KeywordMatch{}, false
	}

	m := KeywordMatch{
		Start:   from + loc[0],
		End:     from + loc[1],
		RawName: text[from+loc[4] : from+loc[5]],
	}
	m.Name = strings.ToLower(m.RawName)
	if loc[2] >= 0 {
		m.Schema = strings.ToLower(text[from+loc[2] : from+loc[3]])
	}
	return m, true
}
