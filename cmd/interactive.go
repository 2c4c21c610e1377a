package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jadenpxrk/copycode/internal/classifier"
	"github.com/jadenpxrk/copycode/internal/collector"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"go.uber.org/zap"
)

// pickPaths lists files and folders under root and lets the user pick any
// number of them with a fuzzy finder. It returns errAborted when the user
// cancels.
func (a *app) pickPaths(root string) ([]string, error) {
	candidates, err := a.candidates(root)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no files or folders found under %s", root)
	}

	cls := classifier.New(a.cfg.BinaryExtensionSet(), a.log)
	idx, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Tab to select multiple entries, Enter to confirm."
			}
			path := filepath.Join(root, candidates[i])
			info, statErr := os.Stat(path)
			if statErr != nil {
				return fmt.Sprintf("Path: %s\nError getting info: %v", candidates[i], statErr)
			}
			kind := "File"
			switch {
			case info.IsDir():
				kind = "Folder"
			case cls.IsBinaryExtension(path):
				kind = "Binary / Media File"
			}
			return fmt.Sprintf("Path: %s\nType: %s\nSize: %d bytes", candidates[i], kind, info.Size())
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Fprintln(a.errOut, "Interactive selection aborted.")
			return nil, errAborted
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]string, len(idx))
	for i, index := range idx {
		selected[i] = filepath.Join(root, candidates[index])
	}
	return selected, nil
}

// candidates walks root and returns slash paths relative to it, skipping
// whatever the exclude patterns and .gitignore would skip during collection.
func (a *app) candidates(root string) ([]string, error) {
	var patterns []string
	if a.cfg.ApplyExcludes {
		patterns = a.cfg.Excludes
	}
	match := collector.NewMatcher(root, patterns, a.gitIgnore(root))

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			a.log.Debug("interactive scan: cannot access path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if match.Excluded(path, d.IsDir()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning for files/folders: %w", err)
	}
	return out, nil
}
