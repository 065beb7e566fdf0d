package integration

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/jpicheck/internal/engine"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files  map[string][]byte
	dirs   map[string]bool
	writes int
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true},
	}
}

// addFile stores content at path and registers every parent directory.
func (fs *testFS) addFile(path string, content string) {
	fs.files[path] = []byte(content)
	fs.addDir(filepath.Dir(path))
}

func (fs *testFS) addDir(path string) {
	for p := path; !fs.dirs[p]; p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
}

func (fs *testFS) ReadDir(path string) ([]os.DirEntry, error) {
	if !fs.dirs[path] {
		return nil, &os.PathError{Op: "readdir", Path: path, Err: os.ErrNotExist}
	}

	var entries []os.DirEntry
	for p := range fs.files {
		if filepath.Dir(p) == path {
			entries = append(entries, dirEntry(p, false))
		}
	}
	for p := range fs.dirs {
		if p != path && filepath.Dir(p) == path {
			entries = append(entries, dirEntry(p, true))
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

func (fs *testFS) Stat(path string) (os.FileInfo, error) {
	if content, ok := fs.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content))}, nil
	}
	if fs.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: os.ModeDir, isDir: true}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) Lstat(path string) (os.FileInfo, error) {
	return fs.Stat(path)
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	fs.addDir(path)
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.writes++
	fs.addFile(path, string(data))
	return nil
}

func (fs *testFS) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join("/work", path), nil
}

func dirEntry(path string, isDir bool) os.DirEntry {
	info := &mockFileInfo{name: filepath.Base(path), isDir: isDir}
	if isDir {
		info.mode = os.ModeDir
	}
	return iofs.FileInfoToDirEntry(info)
}

// mockFileInfo implements os.FileInfo
type mockFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// setupTestEngine creates an engine backed by an in-memory filesystem.
func setupTestEngine(t *testing.T) (*engine.Engine, *testFS) {
	t.Helper()
	fs := newTestFS()
	return engine.New(fs, log.New(io.Discard)), fs
}
