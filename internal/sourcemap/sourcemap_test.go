package sourcemap

import (
	"testing"
)

func TestNew(t *testing.T) {
	sm := New()
	if sm == nil {
		t.Fatal("New() returned nil")
	}
	if sm.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", sm.Len())
	}
}

func TestSourceMap_Resolve(t *testing.T) {
	sm := New()
	sm.Add(1, 5, "0000_initial.sql", 1, "baseline")
	sm.Add(11, 13, "0001_tags.sql", 4, "table tags")
	sm.Add(16, 16, "0002_notes.sql", 1, "table notes")

	tests := []struct {
		outputLine   int
		expectedFile string
		expectedLine int
		expectedDesc string
		found        bool
	}{
		{1, "0000_initial.sql", 1, "baseline", true},
		{5, "0000_initial.sql", 5, "baseline", true},
		{6, "", 0, "", false}, // banner
		{11, "0001_tags.sql", 4, "table tags", true},
		{13, "0001_tags.sql", 6, "table tags", true},
		{15, "", 0, "", false}, // section comment
		{16, "0002_notes.sql", 1, "table notes", true},
		{99, "", 0, "", false},
	}

	for _, tt := range tests {
		file, line, desc, found := sm.Resolve(tt.outputLine)
		if found != tt.found {
			t.Errorf("Resolve(%d) found = %v, expected %v", tt.outputLine, found, tt.found)
			continue
		}
		if file != tt.expectedFile || line != tt.expectedLine || desc != tt.expectedDesc {
			t.Errorf("Resolve(%d) = (%q, %d, %q), expected (%q, %d, %q)",
				tt.outputLine, file, line, desc, tt.expectedFile, tt.expectedLine, tt.expectedDesc)
		}
	}
}

func TestSourceMap_Resolve_NilMap(t *testing.T) {
	var sm *SourceMap
	if _, _, _, found := sm.Resolve(1); found {
		t.Error("Resolve() on nil map returned found=true")
	}
}

func TestSourceMap_Entries(t *testing.T) {
	sm := New()
	sm.Add(1, 2, "a.sql", 1, "baseline")
	sm.Add(4, 4, "b.sql", 3, "table b")

	entries := sm.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() returned %d entries, expected 2", len(entries))
	}

	entries[0].OriginalFile = "modified"
	if sm.Entries()[0].OriginalFile != "a.sql" {
		t.Error("Entries() should return a copy")
	}
}
