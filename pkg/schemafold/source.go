package schemafold

// MigrationSource loads migration documents.
type MigrationSource interface {
	// LoadBaseline reads the baseline migration.
	// Returns an error wrapping ErrBaselineNotFound when it does not exist.
	LoadBaseline(dir, name string) (MigrationFile, error)

	// LoadAdditional reads every other migration in dir, sorted by file name.
	// Files that cannot be read are returned as FileErrors instead of failing the call.
	LoadAdditional(dir, baselineName string) ([]MigrationFile, []*FileError, error)
}

// OutputWriter persists the consolidated document, overwriting prior content.
type OutputWriter interface {
	WriteOutput(path string, content []byte) error
}
