package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) ReadDir(path string) ([]FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entryInfo(entry))
	}

	return result, nil
}

// entryInfo falls back to what the directory listing itself knows when the
// entry cannot be stat'ed (removed mid-scan, permission). The entry stays
// listed so a later ReadFile reports the failure for that file alone.
func entryInfo(entry fs.DirEntry) FileInfo {
	if info, err := entry.Info(); err == nil {
		return info
	}
	return &listedOnlyInfo{name: entry.Name(), mode: entry.Type()}
}

type listedOnlyInfo struct {
	name string
	mode fs.FileMode
}

func (i *listedOnlyInfo) Name() string       { return i.name }
func (i *listedOnlyInfo) Size() int64        { return 0 }
func (i *listedOnlyInfo) Mode() fs.FileMode  { return i.mode }
func (i *listedOnlyInfo) ModTime() time.Time { return time.Time{} }
func (i *listedOnlyInfo) IsDir() bool        { return i.mode.IsDir() }
func (i *listedOnlyInfo) Sys() interface{}   { return nil }

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

func (p *OSFileSystem) WriteFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, content, 0644)
}
