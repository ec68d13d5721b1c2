// Package sourcemap maps lines of the consolidated script back to the
// migration files they were copied from.
package sourcemap

// Entry maps a range of lines in the consolidated script to their source.
type Entry struct {
	OutputStart  int    // First line in the output (1-based, inclusive)
	OutputEnd    int    // Last line in the output (1-based, inclusive)
	OriginalFile string // Migration file name
	OriginalLine int    // Line in OriginalFile corresponding to OutputStart
	Description  string // e.g. "table tags"
}

// SourceMap tracks where each copied region of the output came from.
// Lines that belong to no entry (banner, section comments) are generated.
type SourceMap struct {
	entries []Entry
}

// New creates a new empty SourceMap.
func New() *SourceMap {
	return &SourceMap{
		entries: make([]Entry, 0),
	}
}

// Add records that output lines start..end were copied verbatim from file,
// beginning at line. Lines are 1-based and inclusive on both ends.
func (sm *SourceMap) Add(start, end int, file string, line int, desc string) {
	sm.entries = append(sm.entries, Entry{
		OutputStart:  start,
		OutputEnd:    end,
		OriginalFile: file,
		OriginalLine: line,
		Description:  desc,
	})
}

// Resolve finds the source file and exact line for an output line.
func (sm *SourceMap) Resolve(outputLine int) (file string, line int, desc string, found bool) {
	if sm == nil {
		return "", 0, "", false
	}
	for _, entry := range sm.entries {
		if outputLine >= entry.OutputStart && outputLine <= entry.OutputEnd {
			return entry.OriginalFile, entry.OriginalLine + (outputLine - entry.OutputStart), entry.Description, true
		}
	}
	return "", 0, "", false
}

// Entries returns a copy of all source entries.
func (sm *SourceMap) Entries() []Entry {
	result := make([]Entry, len(sm.entries))
	copy(result, sm.entries)
	return result
}

// Len returns the number of entries in the source map.
func (sm *SourceMap) Len() int {
	return len(sm.entries)
}
