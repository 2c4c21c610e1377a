package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jadenpxrk/copycode/internal/formatter"
	"github.com/jadenpxrk/copycode/internal/language"
	"github.com/jadenpxrk/copycode/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type selectionOptions struct {
	lang  string
	name  string
	lines string
	copy  bool
	open  bool
}

func newSelectionCmd(a *app) *cobra.Command {
	var opts selectionOptions

	cmd := &cobra.Command{
		Use:   "selection [FILE]",
		Short: "Wrap selected code in a fenced block and copy it or open it in a chat",
		Long: `selection reads code from FILE (optionally a line range of it) or from stdin,
wraps it in a Markdown fence tagged with its language, and prints it, copies it
to the clipboard, or opens it in the chat service as a prompt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return a.runSelection(file, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.lang, "lang", "l", "", "Language tag for the fence (default: detected from the file name)")
	f.StringVar(&opts.name, "name", "", "File name used for language detection when reading stdin")
	f.StringVar(&opts.lines, "lines", "", "Line range START:END (1-based, inclusive) to select from FILE")
	f.BoolVarP(&opts.copy, "copy", "c", false, "Copy the block to the clipboard")
	f.BoolVar(&opts.open, "open", false, "Open the block in the chat service")
	f.String("chat-url", "", "Chat URL template with a {prompt} placeholder")
	a.bind("chat_url", f.Lookup("chat-url"))
	f.String("languages-file", "", "Path to a linguist languages.yml")
	a.bind("languages_file", f.Lookup("languages-file"))

	return cmd
}

func (a *app) runSelection(file string, opts selectionOptions) error {
	text, err := a.readSelection(file, opts.lines)
	if err != nil {
		return err
	}

	tag := opts.lang
	if tag == "" {
		name := opts.name
		if name == "" {
			name = file
		}
		tag = a.detector().Tag(name)
	}

	block, err := pipeline.Selection(text, tag)
	if err != nil {
		return err
	}

	if !opts.copy && !opts.open {
		_, err := fmt.Fprintln(a.out, block)
		return err
	}
	if opts.copy {
		if err := a.clipboard.Write(block); err != nil {
			return err
		}
		fmt.Fprintln(a.errOut, "Selected code copied!")
	}
	if opts.open {
		if err := a.opener.Open(formatter.ChatURL(a.cfg.ChatURL, block)); err != nil {
			return err
		}
		fmt.Fprintln(a.errOut, "Selected code opened in chat (via prompt URL).")
	}
	return nil
}

func (a *app) detector() *language.Detector {
	data, err := language.Load(a.cfg.LanguagesFile)
	if err != nil {
		a.log.Debug("no language definitions, using lexer registry", zap.Error(err))
		data = nil
	}
	return language.NewDetector(data, a.log)
}

func (a *app) readSelection(file, lines string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "" || file == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	if lines == "" {
		return string(data), nil
	}
	return selectLines(string(data), lines)
}

// selectLines returns lines START through END (1-based, inclusive) of text.
// END may be omitted to read to the end.
func selectLines(text, rng string) (string, error) {
	startStr, endStr, _ := strings.Cut(rng, ":")
	start, err := strconv.Atoi(startStr)
	if err != nil || start < 1 {
		return "", fmt.Errorf("invalid line range %q", rng)
	}

	all := strings.SplitAfter(text, "\n")
	if all[len(all)-1] == "" {
		all = all[:len(all)-1]
	}
	end := len(all)
	if endStr != "" {
		end, err = strconv.Atoi(endStr)
		if err != nil || end < start {
			return "", fmt.Errorf("invalid line range %q", rng)
		}
	}
	if start > len(all) {
		return "", nil
	}
	end = min(end, len(all))
	selected := strings.TrimSuffix(strings.Join(all[start-1:end], ""), "\n")
	return strings.TrimSuffix(selected, "\r"), nil
}
