package collector

import (
	"io/fs"
	"os"
)

// FileSystem is the directory listing capability the collector walks with.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}

// IgnoreMatcher reports whether an absolute path should be left out.
// gitignore.IgnoreMatcher satisfies it.
type IgnoreMatcher interface {
	Match(path string, isDir bool) bool
}

// OSFileSystem implements FileSystem on the real OS.
type OSFileSystem struct{}

func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}
