package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	readErr error
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Relative paths resolve against root. Safe for concurrent use.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.ensureDirectoriesExist(path.Join(root, "_"))
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(filePath, []byte(content), nil)
}

// AddUnreadableFile adds a file that is listed by ReadDir and Stat but whose
// ReadFile fails with readErr.
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string, readErr error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(filePath, nil, readErr)
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.ensureDirectoriesExist(path.Join(mfs.resolve(dirPath), "_"))
}

func (mfs *MemoryFileSystem) put(filePath string, content []byte, readErr error) {
	absPath := mfs.resolve(filePath)
	mfs.entries[absPath] = &memoryEntry{
		content: content,
		readErr: readErr,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// resolve maps a caller path to its absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parents of p.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(p string) {
	for dir := path.Dir(p); ; dir = path.Dir(dir) {
		if _, exists := mfs.entries[dir]; !exists {
			mfs.entries[dir] = &memoryEntry{
				info: &memoryFileInfo{
					name:    path.Base(dir),
					mode:    0755 | fs.ModeDir,
					modTime: time.Now(),
					isDir:   true,
				},
			}
		}
		if dir == "/" || dir == "." {
			return
		}
	}
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if entry.readErr != nil {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: entry.readErr}
	}

	out := make([]byte, len(entry.content))
	copy(out, entry.content)
	return out, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(dirPath)
	dir, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %w",
			&fs.PathError{Op: "open", Path: dirPath, Err: fs.ErrNotExist})
	}
	if !dir.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, entry := range mfs.entries {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, entry.info)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return entry.info, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, content []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if entry, exists := mfs.entries[mfs.resolve(filePath)]; exists && entry.info.isDir {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	stored := make([]byte, len(content))
	copy(stored, content)
	mfs.put(filePath, stored, nil)
	return nil
}
