package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/schemafold/internal/files/filesystem"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// Scanner discovers and reads migration files from a single directory.
// Subdirectories are not descended into.
// Scanner is safe for concurrent use as long as the provided fsProvider is.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new migration scanner backed by the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new migration scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
	}
}

// LoadBaseline reads the baseline migration.
func (s *Scanner) LoadBaseline(dir, name string) (schemafold.MigrationFile, error) {
	baselinePath := filepath.Join(dir, name)

	info, err := s.fsProvider.Stat(baselinePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return schemafold.MigrationFile{}, fmt.Errorf("%s: %w", baselinePath, schemafold.ErrBaselineNotFound)
		}
		return schemafold.MigrationFile{}, fmt.Errorf("failed to access baseline %s: %w", baselinePath, err)
	}
	if info.IsDir() {
		return schemafold.MigrationFile{}, fmt.Errorf("baseline is a directory, not a file: %s", baselinePath)
	}

	content, err := s.fsProvider.ReadFile(baselinePath)
	if err != nil {
		return schemafold.MigrationFile{}, fmt.Errorf("failed to read baseline %s: %w", baselinePath, err)
	}

	return schemafold.MigrationFile{
		Name:    name,
		Path:    baselinePath,
		Content: string(content),
	}, nil
}

// LoadAdditional reads every *.sql file in dir except the baseline, in
// ascending file name order. A file that cannot be read is reported as a
// FileError and left out; only a failure to list dir is returned as error.
func (s *Scanner) LoadAdditional(dir, baselineName string) ([]schemafold.MigrationFile, []*schemafold.FileError, error) {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list migrations in %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isMigrationFile(entry.Name()) || entry.Name() == baselineName {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var (
		files   []schemafold.MigrationFile
		skipped []*schemafold.FileError
	)
	for _, name := range names {
		filePath := filepath.Join(dir, name)
		content, err := s.fsProvider.ReadFile(filePath)
		if err != nil {
			skipped = append(skipped, &schemafold.FileError{Name: name, Err: err})
			continue
		}
		files = append(files, schemafold.MigrationFile{
			Name:    name,
			Path:    filePath,
			Content: string(content),
		})
	}

	return files, skipped, nil
}

func isMigrationFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), schemafold.MigrationExtension)
}

// Verify Scanner implements the interface at compile time
var _ schemafold.MigrationSource = (*Scanner)(nil)
