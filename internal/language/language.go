package language

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Load when no languages.yml exists in the search path.
var ErrNotFound = errors.New("languages.yml not found")

// Info holds the linguist fields used for file detection.
type Info struct {
	Type       string   `yaml:"type"` // e.g., programming, data, markup
	Aliases    []string `yaml:"aliases"`
	Extensions []string `yaml:"extensions"`
	Filenames  []string `yaml:"filenames"`
}

// Map maps language names (e.g., "Go") to their details.
type Map map[string]Info

// Data is a parsed languages.yml with lookup tables.
type Data struct {
	Langs        Map
	extensionMap map[string]string // ".go" -> "Go"
	filenameMap  map[string]string // "Makefile" -> "Makefile"
}

// Load reads languages.yml from path, or from ~/.config/copycode and the
// current directory when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		var candidates []string
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, ".config", "copycode", "languages.yml"))
		}
		candidates = append(candidates, "languages.yml")
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
		if path == "" {
			return nil, ErrNotFound
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading language file %s: %w", path, err)
	}
	defer f.Close()

	data, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing language file %s: %w", path, err)
	}
	return data, nil
}

// Parse decodes a linguist-style YAML document.
func Parse(r io.Reader) (*Data, error) {
	var langs Map
	if err := yaml.NewDecoder(r).Decode(&langs); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	data := &Data{
		Langs:        langs,
		extensionMap: make(map[string]string),
		filenameMap:  make(map[string]string),
	}
	// Sorted so the first language claiming an extension wins deterministically.
	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		info := langs[name]
		for _, ext := range info.Extensions {
			ext = strings.ToLower(ext)
			if _, taken := data.extensionMap[ext]; !taken {
				data.extensionMap[ext] = name
			}
		}
		for _, fname := range info.Filenames {
			if _, taken := data.filenameMap[fname]; !taken {
				data.filenameMap[fname] = name
			}
		}
	}
	return data, nil
}

// Lookup returns the language name for a file, matching exact filenames first.
func (d *Data) Lookup(filePath string) (string, bool) {
	if d == nil {
		return "", false
	}
	base := filepath.Base(filePath)
	if name, ok := d.filenameMap[base]; ok {
		return name, true
	}
	if ext := strings.ToLower(filepath.Ext(base)); ext != "" {
		if name, ok := d.extensionMap[ext]; ok {
			return name, true
		}
	}
	return "", false
}

// Detector derives the fence tag for a file name.
type Detector struct {
	data *Data
	log  *zap.Logger
}

// NewDetector creates a Detector. data may be nil, in which case only the
// chroma lexer registry is consulted.
func NewDetector(data *Data, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{data: data, log: logger}
}

// Tag returns a lowercase language identifier for filename, or "" if unknown.
func (d *Detector) Tag(filename string) string {
	if filename == "" {
		return ""
	}
	if name, ok := d.data.Lookup(filename); ok {
		var aliases []string
		if info, found := d.data.Langs[name]; found {
			aliases = info.Aliases
		}
		return identifier(name, aliases)
	}

	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		d.log.Debug("no language match", zap.String("file", filename))
		return ""
	}
	cfg := lexer.Config()
	return identifier(cfg.Name, cfg.Aliases)
}

// identifier prefers the lowercased name when it is also an alias, then the
// first alias, then the lowercased name with spaces as dashes.
func identifier(name string, aliases []string) string {
	lower := strings.ToLower(name)
	if slices.Contains(aliases, lower) {
		return lower
	}
	if len(aliases) > 0 {
		return strings.ToLower(aliases[0])
	}
	return strings.ReplaceAll(lower, " ", "-")
}
