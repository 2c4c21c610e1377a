package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	for _, pattern := range c.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrInvalidExclude, pattern)
		}
	}

	switch strings.ToLower(c.Tokenizer) {
	case "tiktoken", "huggingface":
	default:
		return fmt.Errorf("%w: %q (use tiktoken or huggingface)", ErrInvalidTokenizer, c.Tokenizer)
	}

	if !strings.Contains(c.ChatURL, "{prompt}") {
		return ErrInvalidChatURL
	}
	return nil
}

// BinaryExtensionSet resolves the set of binary extensions. A non-empty custom
// list replaces the defaults entirely.
func (c *Config) BinaryExtensionSet() map[string]struct{} {
	exts := c.BinaryExtensions
	if len(exts) == 0 {
		exts = DefaultBinaryExtensions
	}
	return NewExtensionSet(exts)
}

// NewExtensionSet lowercases each extension and ensures the leading dot.
func NewExtensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
