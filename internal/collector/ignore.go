package collector

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
)

// LoadGitIgnore parses <root>/.gitignore. It returns a nil matcher and no error
// when the file does not exist.
func LoadGitIgnore(root string) (IgnoreMatcher, error) {
	path := filepath.Join(root, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return gitignore.NewGitIgnoreFromReader(root, bytes.NewReader(data)), nil
}
