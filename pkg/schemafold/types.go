package schemafold

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MigrationFile is one migration document, read once and never mutated.
type MigrationFile struct {
	// Name is the file name; additional migrations are processed in ascending Name order.
	Name string

	// Path is where the file was read from (informational).
	Path string

	// Content is the full UTF-8 text of the file.
	Content string
}

// StatementCandidate is a located CREATE TABLE statement that survived the
// known-entity filter.
type StatementCandidate struct {
	// Entity is the lowercased table name used for comparison and the section comment.
	Entity string

	// Schema is the lowercased schema qualifier, empty when unqualified.
	Schema string

	// Source is the Name of the MigrationFile the statement came from.
	Source string

	// Start and End delimit Text within the source file; End is one past the terminating ';'.
	Start int
	End   int

	// Line is the 1-based line of Start within the source file.
	Line int

	// Text is the statement verbatim, original casing preserved.
	Text string
}

// KnownEntitySet holds the table names the baseline already defines.
// Names are stored lowercased; lookups are exact token matches.
type KnownEntitySet struct {
	names map[string]struct{}
}

// NewKnownEntitySet builds a set from names. Blank names are ignored.
func NewKnownEntitySet(names ...string) KnownEntitySet {
	set := KnownEntitySet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		set.names[n] = struct{}{}
	}
	return set
}

// Contains reports whether name (case-insensitive) is known.
func (s KnownEntitySet) Contains(name string) bool {
	_, ok := s.names[strings.ToLower(name)]
	return ok
}

// Len returns the number of known entities.
func (s KnownEntitySet) Len() int {
	return len(s.names)
}

// Names returns the known entities in sorted order.
func (s KnownEntitySet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// HeaderReplacement is a literal line substitution applied to the baseline header.
type HeaderReplacement struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Report summarizes a consolidation run.
type Report struct {
	// FilesScanned counts additional migration files whose statements were extracted.
	FilesScanned int

	// FilesSkipped lists additional files that could not be read.
	FilesSkipped []*FileError

	// TablesAppended counts statements written after the banner.
	TablesAppended int

	// KnownSkipped counts CREATE TABLE occurrences for tables the baseline already defines.
	KnownSkipped int

	// Dropped counts malformed statements (unbalanced body or no terminator).
	Dropped int

	// DroppedEntities names the dropped statements, in encounter order.
	DroppedEntities []string

	// OutputChecksum is the SHA-256 of the written output, hex encoded.
	OutputChecksum string
}

// ConsolidationConfig contains all parameters needed for a consolidation run.
type ConsolidationConfig struct {
	// MigrationsDir holds the baseline and all additional migrations.
	MigrationsDir string

	// BaselineFile is the baseline's file name within MigrationsDir.
	BaselineFile string

	// OutputPath is where the consolidated script is written.
	OutputPath string

	// KnownTables are the tables the baseline already defines.
	KnownTables []string

	// HeaderReplacements rewrite the baseline header in the output.
	HeaderReplacements []HeaderReplacement

	// DryRun consolidates without writing OutputPath.
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ConsolidationConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ConsolidationConfig) Validate() error {
	var errs []error

	if c.MigrationsDir == "" {
		errs = append(errs, fmt.Errorf("MigrationsDir is required: %w", ErrInvalidConfig))
	}

	if c.BaselineFile == "" {
		errs = append(errs, fmt.Errorf("BaselineFile is required: %w", ErrInvalidConfig))
	} else if strings.ContainsAny(c.BaselineFile, `/\`) {
		errs = append(errs, fmt.Errorf("BaselineFile must be a file name, got %q: %w", c.BaselineFile, ErrInvalidConfig))
	}

	if c.OutputPath == "" && !c.DryRun {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	for i, r := range c.HeaderReplacements {
		if r.From == "" {
			errs = append(errs, fmt.Errorf("header replacement %d has empty 'from': %w", i, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}
