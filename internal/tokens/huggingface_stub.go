//go:build !huggingface

package tokens

import "go.uber.org/zap"

func newHuggingFace(string, *zap.Logger) (Counter, error) {
	return nil, ErrHuggingFaceNotBuilt
}
