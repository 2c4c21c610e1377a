package classifier

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jadenpxrk/copycode/internal/formatter"
	"go.uber.org/zap"
)

// FileReader abstracts the filesystem calls the classifier makes.
type FileReader interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// OSFileReader implements FileReader on the real OS.
type OSFileReader struct{}

func (OSFileReader) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (OSFileReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Classifier decides whether a file is text, binary or unreadable.
type Classifier struct {
	fs     FileReader
	binary map[string]struct{}
	log    *zap.Logger
}

// New creates a Classifier over the real filesystem. binaryExts is the
// resolved binary extension set.
func New(binaryExts map[string]struct{}, logger *zap.Logger) *Classifier {
	return NewWithFS(OSFileReader{}, binaryExts, logger)
}

// NewWithFS creates a Classifier with a custom reader (for testing).
func NewWithFS(fsys FileReader, binaryExts map[string]struct{}, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{fs: fsys, binary: binaryExts, log: logger}
}

// Classify builds the record for absPath, labelled with relPath.
// Files with a binary extension are stat'ed but never read.
func (c *Classifier) Classify(absPath, relPath string) formatter.FileRecord {
	rec := formatter.FileRecord{Path: relPath, Kind: formatter.Unreadable}

	if _, ok := c.binary[Extension(absPath)]; ok {
		info, err := c.fs.Stat(absPath)
		if err != nil {
			c.log.Warn("could not stat binary file", zap.String("path", absPath), zap.Error(err))
			return rec
		}
		rec.Kind = formatter.Binary
		rec.Size = info.Size()
		return rec
	}

	data, err := c.fs.ReadFile(absPath)
	if err != nil {
		c.log.Warn("could not read file", zap.String("path", absPath), zap.Error(err))
		return rec
	}

	content, ok := Decode(data)
	if !ok {
		c.log.Debug("file is not valid UTF-8", zap.String("path", absPath))
		return rec
	}
	rec.Kind = formatter.Text
	rec.Content = content
	return rec
}

// IsBinaryExtension reports whether path has an extension in the binary set.
func (c *Classifier) IsBinaryExtension(path string) bool {
	_, ok := c.binary[Extension(path)]
	return ok
}

// Extension returns the lowercased extension of path's base name including the
// dot, or "" if there is none. A name whose only dot is the leading one, such as
// ".gitignore", has no extension.
func Extension(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return strings.ToLower(name[i:])
}

// Decode attempts to interpret data as UTF-8 text.
func Decode(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}
