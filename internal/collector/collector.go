package collector

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Options configures a Collector.
type Options struct {
	// Root is the workspace root exclude globs are matched relative to.
	Root string
	// Excludes are doublestar patterns matched against slash paths relative to Root.
	Excludes []string
	// ApplyExcludes turns the Excludes filter on.
	ApplyExcludes bool
	// Ignore, if set, drops paths found while expanding directories.
	Ignore IgnoreMatcher
	Logger *zap.Logger
}

// Skip records a selection entry or walked path that could not be status-checked
// or listed.
type Skip struct {
	Path string
	Err  error
}

// Result is the outcome of one Collect call.
type Result struct {
	Files   []string // Absolute file paths, first encounter first
	Skipped []Skip
}

// Collector expands a selection of files and directories into a flat,
// deduplicated list of absolute file paths.
type Collector struct {
	fs    FileSystem
	opts  Options
	match *Matcher
	log   *zap.Logger
}

// New creates a Collector using the real filesystem.
func New(opts Options) *Collector {
	return NewWithFS(OSFileSystem{}, opts)
}

// NewWithFS creates a Collector with a custom filesystem (for testing).
func NewWithFS(fsys FileSystem, opts Options) *Collector {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var patterns []string
	if opts.ApplyExcludes {
		patterns = opts.Excludes
	}
	return &Collector{
		fs:    fsys,
		opts:  opts,
		match: NewMatcher(opts.Root, patterns, opts.Ignore),
		log:   logger,
	}
}

// run holds the per-call state; nothing is shared between Collect calls.
type run struct {
	*Collector
	seen   map[string]struct{}
	result Result
}

// Collect expands selection into absolute file paths. Directories are walked
// depth-first with entries in name order. Paths already emitted are skipped.
// Entries that fail a status check are recorded in Result.Skipped and the
// walk continues.
func (c *Collector) Collect(selection []string) (*Result, error) {
	if len(selection) == 0 {
		return nil, ErrNoSelection
	}

	r := &run{Collector: c, seen: make(map[string]struct{})}
	c.log.Debug("collecting", zap.Int("selection", len(selection)))

	for _, p := range selection {
		abs, err := filepath.Abs(p)
		if err != nil {
			r.skip(p, fmt.Errorf("resolving absolute path: %w", err))
			continue
		}

		info, err := c.fs.Stat(abs)
		if err != nil {
			r.skip(abs, err)
			continue
		}

		switch {
		case info.IsDir():
			r.walk(abs)
		case info.Mode().IsRegular():
			r.add(abs)
		default:
			c.log.Debug("skipping non-regular selection", zap.String("path", abs), zap.Stringer("mode", info.Mode()))
		}
	}

	c.log.Debug("collected",
		zap.Int("files", len(r.result.Files)),
		zap.Int("skipped", len(r.result.Skipped)))
	return &r.result, nil
}

// walk expands one directory with an explicit stack. Entries are pushed in
// reverse so they pop in name order, which yields the same order as a
// recursive pre-order walk without growing the call stack. Exclude rules
// that match root itself do not apply below it.
func (r *run) walk(root string) {
	match := r.match.Below(root)

	type item struct {
		path  string
		isDir bool
	}

	stack := []item{{path: root, isDir: true}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !it.isDir {
			r.add(it.path)
			continue
		}

		entries, err := r.fs.ReadDir(it.path)
		if err != nil {
			r.skip(it.path, err)
			continue
		}
		slices.SortFunc(entries, func(a, b fs.DirEntry) int {
			return strings.Compare(a.Name(), b.Name())
		})

		for i := len(entries) - 1; i >= 0; i-- {
			path := filepath.Join(it.path, entries[i].Name())
			isDir, ok := r.entryKind(path, entries[i])
			if !ok || r.excluded(match, path, isDir) {
				continue
			}
			stack = append(stack, item{path: path, isDir: isDir})
		}
	}
}

// entryKind resolves whether entry is a directory to descend or a regular file
// to emit. Symlinks are followed only to regular files.
func (r *run) entryKind(path string, entry fs.DirEntry) (isDir bool, ok bool) {
	mode := entry.Type()
	switch {
	case mode.IsDir():
		return true, true
	case mode.IsRegular():
		return false, true
	case mode&fs.ModeSymlink != 0:
		info, err := r.fs.Stat(path)
		if err != nil {
			r.skip(path, err)
			return false, false
		}
		if info.Mode().IsRegular() {
			return false, true
		}
		r.log.Debug("not following symlink", zap.String("path", path))
		return false, false
	default:
		return false, false
	}
}

func (r *run) excluded(match *Matcher, path string, isDir bool) bool {
	rule, ok := match.Rule(path, isDir)
	if ok {
		r.log.Debug("excluded", zap.String("path", match.Relative(path)), zap.String("rule", rule))
	}
	return ok
}

func (r *run) add(path string) {
	if _, dup := r.seen[path]; dup {
		return
	}
	r.seen[path] = struct{}{}
	r.result.Files = append(r.result.Files, path)
}

func (r *run) skip(path string, err error) {
	r.log.Warn("skipping path", zap.String("path", path), zap.Error(err))
	r.result.Skipped = append(r.result.Skipped, Skip{Path: path, Err: err})
}

