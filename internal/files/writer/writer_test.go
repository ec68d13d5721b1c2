package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/schemafold/internal/files/filesystem"
)

func TestWriteOutput_Memory(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	w := NewWithFS(mfs)

	require.NoError(t, w.WriteOutput("supabase/setup.sql", []byte("-- one")))
	require.NoError(t, w.WriteOutput("supabase/setup.sql", []byte("-- two")))

	got, err := mfs.ReadFile("supabase/setup.sql")
	require.NoError(t, err)
	assert.Equal(t, "-- two", string(got))
}

func TestWriteOutput_OS(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "setup.sql")

	require.NoError(t, New().WriteOutput(target, []byte("SELECT 1;\n")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n", string(got))
}

func TestNewWithFS_NilProvider(t *testing.T) {
	assert.Panics(t, func() { NewWithFS(nil) })
}
