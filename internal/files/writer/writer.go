// Package writer persists the consolidated output document.
package writer

import (
	"fmt"

	"github.com/vvka-141/schemafold/internal/files/filesystem"
	"github.com/vvka-141/schemafold/pkg/schemafold"
)

// Writer implements schemafold.OutputWriter on a FileSystemProvider.
type Writer struct {
	fsProvider filesystem.FileSystemProvider
}

// New returns a Writer backed by the OS filesystem.
func New() *Writer {
	return &Writer{fsProvider: filesystem.NewOSFileSystem()}
}

// NewWithFS returns a Writer backed by fsProvider. Panics if fsProvider is nil.
func NewWithFS(fsProvider filesystem.FileSystemProvider) *Writer {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Writer{fsProvider: fsProvider}
}

// WriteOutput replaces the file at path with content.
func (w *Writer) WriteOutput(path string, content []byte) error {
	if err := w.fsProvider.WriteFile(path, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

var _ schemafold.OutputWriter = (*Writer)(nil)
