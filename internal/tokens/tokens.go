package tokens

import (
	"errors"
	"fmt"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// Counter estimates the number of tokens a model would see for a text.
type Counter interface {
	CountTokens(text string) int
	Close()
}

const defaultTiktokenModel = "gpt-4o"

var (
	// ErrUnknownTokenizer is returned for tokenizer kinds other than tiktoken and huggingface.
	ErrUnknownTokenizer = errors.New("unsupported tokenizer")
	// ErrNoTokenizerFile is returned when the huggingface tokenizer has no local file.
	ErrNoTokenizerFile = errors.New("huggingface tokenizer requires a tokenizer file")
	// ErrHuggingFaceNotBuilt is returned by binaries built without the huggingface tag.
	ErrHuggingFaceNotBuilt = errors.New("huggingface tokenizer not built in (rebuild with -tags huggingface)")
)

// --- Tiktoken ---

type tiktokenCounter struct {
	tk *tiktoken.Tiktoken
}

func (c *tiktokenCounter) CountTokens(text string) int {
	return len(c.tk.EncodeOrdinary(text))
}

func (c *tiktokenCounter) Close() {}

// New returns a Counter for kind ("tiktoken" or "huggingface"). The
// huggingface counter only loads a local tokenizer.json; it never downloads,
// and it is only available in builds with the huggingface tag.
func New(kind, model, file string, logger *zap.Logger) (Counter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch strings.ToLower(kind) {
	case "tiktoken":
		if model == "" {
			model = defaultTiktokenModel
		}
		tk, err := tiktoken.EncodingForModel(model)
		if err != nil {
			logger.Warn("tiktoken model not found, using default",
				zap.String("model", model), zap.String("default", defaultTiktokenModel), zap.Error(err))
			tk, err = tiktoken.EncodingForModel(defaultTiktokenModel)
			if err != nil {
				return nil, fmt.Errorf("failed to get tiktoken encoding for %q: %w", defaultTiktokenModel, err)
			}
		}
		return &tiktokenCounter{tk: tk}, nil
	case "huggingface":
		if file == "" {
			return nil, ErrNoTokenizerFile
		}
		return newHuggingFace(file, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenizer, kind)
	}
}
