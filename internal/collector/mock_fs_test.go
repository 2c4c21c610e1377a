package collector

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type mockFileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.mode.IsDir() }
func (m *mockFileInfo) Sys() any           { return nil }

// mockFileSystem is an in-memory tree keyed by absolute path.
type mockFileSystem struct {
	files    map[string][]byte
	dirs     map[string]bool
	symlinks map[string]string
	errors   map[string]error
	dirErrs  map[string]error
	listings map[string]int
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{
		files:    make(map[string][]byte),
		dirs:     make(map[string]bool),
		symlinks: make(map[string]string),
		errors:   make(map[string]error),
		dirErrs:  make(map[string]error),
		listings: make(map[string]int),
	}
}

// createFile adds a file and all its parent directories.
func (m *mockFileSystem) createFile(path, content string) {
	m.files[path] = []byte(content)
	m.createDir(filepath.Dir(path))
}

func (m *mockFileSystem) createDir(path string) {
	for p := path; ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if p == filepath.Dir(p) {
			return
		}
	}
}

func (m *mockFileSystem) createSymlink(path, target string) {
	m.symlinks[path] = target
	m.createDir(filepath.Dir(path))
}

func (m *mockFileSystem) resolve(path string) string {
	for {
		target, ok := m.symlinks[path]
		if !ok {
			return path
		}
		path = target
	}
}

func (m *mockFileSystem) Stat(path string) (fs.FileInfo, error) {
	if err, ok := m.errors[path]; ok {
		return nil, err
	}
	final := m.resolve(path)
	if content, ok := m.files[final]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content))}, nil
	}
	if m.dirs[final] {
		return &mockFileInfo{name: filepath.Base(path), mode: fs.ModeDir | 0o755}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

// ReadDir returns entries in reverse name order so tests prove the collector
// sorts on its own.
func (m *mockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	m.listings[path]++
	if err, ok := m.dirErrs[path]; ok {
		return nil, err
	}
	if !m.dirs[path] {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: os.ErrNotExist}
	}

	var entries []fs.DirEntry
	add := func(child string, mode fs.FileMode) {
		rest, ok := strings.CutPrefix(child, path+string(filepath.Separator))
		if !ok || rest == "" || strings.ContainsRune(rest, filepath.Separator) {
			return
		}
		entries = append([]fs.DirEntry{fs.FileInfoToDirEntry(&mockFileInfo{name: rest, mode: mode})}, entries...)
	}
	for p := range m.files {
		add(p, 0)
	}
	for p := range m.dirs {
		add(p, fs.ModeDir)
	}
	for p := range m.symlinks {
		add(p, fs.ModeSymlink)
	}
	sortReverse(entries)
	return entries, nil
}

func sortReverse(entries []fs.DirEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Name() > entries[j-1].Name(); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

type stubIgnore struct {
	ignored map[string]bool
}

func (s stubIgnore) Match(path string, isDir bool) bool {
	return s.ignored[path]
}
