package pipeline

import (
	"path/filepath"

	"github.com/jadenpxrk/copycode/internal/classifier"
	"github.com/jadenpxrk/copycode/internal/collector"
	"github.com/jadenpxrk/copycode/internal/config"
	"github.com/jadenpxrk/copycode/internal/formatter"
	"go.uber.org/zap"
)

// Request is one copy invocation.
type Request struct {
	Selection []string
	Root      string
	// Ignore is an optional .gitignore matcher for directory expansion.
	Ignore collector.IgnoreMatcher
}

// Result is the formatted output plus what went into it.
type Result struct {
	Output  string
	Records []formatter.FileRecord
	Skipped []collector.Skip
	Summary formatter.Summary
}

// Pipeline runs collect, classify and format for one request at a time.
type Pipeline struct {
	cfg  *config.Config
	fs   collector.FileSystem
	read classifier.FileReader
	log  *zap.Logger
}

// New creates a Pipeline over the real filesystem.
func New(cfg *config.Config, logger *zap.Logger) *Pipeline {
	return NewWithFS(cfg, collector.OSFileSystem{}, classifier.OSFileReader{}, logger)
}

// NewWithFS creates a Pipeline with custom filesystem collaborators (for testing).
func NewWithFS(cfg *config.Config, fsys collector.FileSystem, read classifier.FileReader, logger *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, fs: fsys, read: read, log: logger}
}

// Run collects req.Selection and renders it relative to req.Root. Both must be
// set; neither check touches the filesystem.
func (p *Pipeline) Run(req Request) (*Result, error) {
	if len(req.Selection) == 0 {
		return nil, ErrNoSelection
	}
	if req.Root == "" {
		return nil, ErrNoWorkspaceRoot
	}
	root, err := filepath.Abs(req.Root)
	if err != nil {
		return nil, ErrNoWorkspaceRoot
	}

	col := collector.NewWithFS(p.fs, collector.Options{
		Root:          root,
		Excludes:      p.cfg.Excludes,
		ApplyExcludes: p.cfg.ApplyExcludes,
		Ignore:        req.Ignore,
		Logger:        p.log,
	})
	collected, err := col.Collect(req.Selection)
	if err != nil {
		return nil, err
	}

	cls := classifier.NewWithFS(p.read, p.cfg.BinaryExtensionSet(), p.log)
	records := make([]formatter.FileRecord, 0, len(collected.Files))
	for _, path := range collected.Files {
		records = append(records, cls.Classify(path, relative(root, path)))
	}

	res := &Result{
		Output:  formatter.Format(records),
		Records: records,
		Skipped: collected.Skipped,
		Summary: formatter.Summarize(records),
	}
	p.log.Info("formatted files",
		zap.Int("text", res.Summary.TextFiles),
		zap.Int("binary", res.Summary.BinaryFiles),
		zap.Int("unreadable", res.Summary.UnreadableFiles),
		zap.Int("skipped", len(res.Skipped)))
	return res, nil
}

// Selection fences a piece of selected text with languageTag.
func Selection(text, languageTag string) (string, error) {
	if text == "" {
		return "", ErrNoSelectedText
	}
	return formatter.FormatSelection(text, languageTag), nil
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
