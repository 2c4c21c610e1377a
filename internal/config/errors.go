package config

import "errors"

var (
	// ErrInvalidExclude is returned when an exclude glob does not parse.
	ErrInvalidExclude = errors.New("invalid exclude pattern")
	// ErrInvalidTokenizer is returned for an unknown tokenizer name.
	ErrInvalidTokenizer = errors.New("invalid tokenizer")
	// ErrInvalidChatURL is returned when the chat URL has no prompt placeholder.
	ErrInvalidChatURL = errors.New("chat url must contain {prompt}")
)
