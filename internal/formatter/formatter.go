package formatter

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	fence = "```"

	// PromptPlaceholder marks where the encoded prompt goes in a chat URL template.
	PromptPlaceholder = "{prompt}"
)

// Format renders records in order, one block per record, separated by a blank line.
func Format(records []FileRecord) string {
	blocks := make([]string, 0, len(records))
	for _, rec := range records {
		blocks = append(blocks, formatRecord(rec))
	}
	return strings.Join(blocks, "\n\n")
}

func formatRecord(rec FileRecord) string {
	switch rec.Kind {
	case Text:
		return fenced(rec.Path, rec.Content)
	case Binary:
		return fmt.Sprintf("Binary / Media File: %s - %d bytes", rec.Path, rec.Size)
	default:
		return fmt.Sprintf("File not readable: %s", rec.Path)
	}
}

// FormatSelection wraps a piece of selected text in a fenced block tagged with
// languageTag. CRLF line endings are rewritten to LF first.
func FormatSelection(text, languageTag string) string {
	return fenced(languageTag, strings.ReplaceAll(text, "\r\n", "\n"))
}

func fenced(info, body string) string {
	var b strings.Builder
	b.Grow(len(info) + len(body) + 2*len(fence) + 2)
	b.WriteString(fence)
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(fence)
	return b.String()
}

// componentUnescaper turns url.QueryEscape output into encodeURIComponent
// output: spaces as %20 and the marks !'()* left as is.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ChatURL substitutes the percent-encoded block for the {prompt} placeholder of template.
func ChatURL(template, block string) string {
	encoded := componentUnescaper.Replace(url.QueryEscape(block))
	return strings.Replace(template, PromptPlaceholder, encoded, 1)
}

// Summarize counts records per kind.
func Summarize(records []FileRecord) Summary {
	var s Summary
	for _, rec := range records {
		switch rec.Kind {
		case Text:
			s.TextFiles++
			s.TextBytes += int64(len(rec.Content))
		case Binary:
			s.BinaryFiles++
			s.BinaryBytes += rec.Size
		default:
			s.UnreadableFiles++
		}
	}
	return s
}
