//go:build huggingface

package tokens

import (
	"fmt"

	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	"go.uber.org/zap"
)

// The sugarme package logs its cache dir and creates ~/.cache/tokenizer in
// init, so it is only linked into builds that ask for it.

type hfCounter struct {
	tk  *hf.Tokenizer
	log *zap.Logger
}

func (c *hfCounter) CountTokens(text string) int {
	en, err := c.tk.EncodeSingle(text)
	if err != nil {
		c.log.Warn("huggingface tokenizer failed to encode text", zap.Error(err))
		return 0
	}
	return len(en.Tokens)
}

func (c *hfCounter) Close() {}

func newHuggingFace(file string, logger *zap.Logger) (Counter, error) {
	tk, err := pretrained.FromFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer from file %s: %w", file, err)
	}
	return &hfCounter{tk: tk, log: logger}, nil
}
