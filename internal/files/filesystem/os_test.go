package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "0001_tags.sql")
	expected := "CREATE TABLE tags (id int);"
	os.WriteFile(filePath, []byte(expected), 0644)

	fsys := NewOSFileSystem()

	data, err := fsys.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.ReadFile(filepath.Join(t.TempDir(), "nope.sql"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test.sql")
	os.WriteFile(filePath, []byte("SELECT 1;"), 0644)

	fsys := NewOSFileSystem()

	info, err := fsys.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() || info.Name() != "test.sql" {
		t.Errorf("Stat() = {dir=%v name=%q}, want regular test.sql", info.IsDir(), info.Name())
	}

	_, err = fsys.Stat(filepath.Join(dir, "missing.sql"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.sql"), []byte("SELECT 2;"), 0644)
	os.WriteFile(filepath.Join(dir, "a.sql"), []byte("SELECT 1;"), 0644)
	os.Mkdir(filepath.Join(dir, "sub"), 0755)

	fsys := NewOSFileSystem()

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ReadDir() returned %d entries, want 3", len(entries))
	}
}

func TestOSFileSystem_ReadDir_Nonexistent(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.ReadDir(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("ReadDir(nonexistent) should return error")
	}
}

func TestOSFileSystem_WriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "out", "setup.sql")

	fsys := NewOSFileSystem()

	if err := fsys.WriteFile(target, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := fsys.WriteFile(target, []byte("second")); err != nil {
		t.Fatalf("WriteFile() overwrite error = %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want overwrite to %q", string(data), "second")
	}
}

// vanishedEntry is a directory entry whose file disappeared after listing.
type vanishedEntry struct {
	name string
	typ  fs.FileMode
}

func (e vanishedEntry) Name() string               { return e.name }
func (e vanishedEntry) IsDir() bool                { return e.typ.IsDir() }
func (e vanishedEntry) Type() fs.FileMode          { return e.typ }
func (e vanishedEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrNotExist }

func TestEntryInfo_FallsBackWhenStatFails(t *testing.T) {
	info := entryInfo(vanishedEntry{name: "0002_gone.sql"})
	if info.Name() != "0002_gone.sql" {
		t.Errorf("Name() = %q, want 0002_gone.sql", info.Name())
	}
	if info.IsDir() {
		t.Error("IsDir() = true for a regular entry")
	}

	dir := entryInfo(vanishedEntry{name: "nested", typ: fs.ModeDir})
	if !dir.IsDir() {
		t.Error("IsDir() = false for a directory entry")
	}
}

func TestEntryInfo_UsesRealInfo(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "0001_a.sql"), []byte("CREATE TABLE a (id int);"), 0644)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	info := entryInfo(entries[0])
	if info.Size() != int64(len("CREATE TABLE a (id int);")) {
		t.Errorf("Size() = %d, want real file size", info.Size())
	}
}
