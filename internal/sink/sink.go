package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Sink receives the final formatted text.
type Sink interface {
	Write(text string) error
}

// Opener opens an external URL.
type Opener interface {
	Open(url string) error
}

// Clipboard writes to the system clipboard.
type Clipboard struct{}

func (Clipboard) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// File writes to a file path, replacing any previous content.
type File struct {
	Path string
}

func (f File) Write(text string) error {
	if err := os.WriteFile(f.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("error writing to file %s: %w", f.Path, err)
	}
	return nil
}

// Writer writes to an io.Writer such as stdout, ending with a newline.
type Writer struct {
	W io.Writer
}

func (w Writer) Write(text string) error {
	_, err := fmt.Fprintln(w.W, text)
	return err
}

// Browser opens URLs in the default web browser.
type Browser struct{}

func (Browser) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("could not open browser: %w", err)
	}
	return nil
}
