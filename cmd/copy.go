package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jadenpxrk/copycode/internal/collector"
	"github.com/jadenpxrk/copycode/internal/pipeline"
	"github.com/jadenpxrk/copycode/internal/sink"
	"github.com/jadenpxrk/copycode/internal/tokens"
	"github.com/jadenpxrk/copycode/internal/workspace"
	"go.uber.org/zap"
)

var (
	// errAborted signals a user-cancelled interactive selection; it exits cleanly.
	errAborted = errors.New("aborted")
	// errNothingToCopy means the selection produced no records; the sink is left untouched.
	errNothingToCopy = errors.New("nothing to copy")
)

type copyOptions struct {
	outputFile  string
	stdout      bool
	interactive bool
}

func (a *app) runCopy(args []string, opts copyOptions) error {
	if len(args) == 0 && !opts.interactive {
		return noSelection()
	}

	cwd, err := os.Getwd()
	if err != nil {
		a.log.Warn("could not determine working directory", zap.Error(err))
	}

	root, err := workspace.ResolveRoot(a.root, cwd)
	if err != nil {
		return fmt.Errorf("%w: pass --root or run inside a project folder", err)
	}

	paths := args
	if opts.interactive {
		paths, err = a.pickPaths(root)
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		return noSelection()
	}

	req := pipeline.Request{Selection: paths, Root: root, Ignore: a.gitIgnore(root)}

	res, err := pipeline.New(a.cfg, a.log).Run(req)
	if err != nil {
		return err
	}

	for _, s := range res.Skipped {
		fmt.Fprintf(a.errOut, "Skipped %s: %v\n", s.Path, s.Err)
	}
	if len(res.Records) == 0 {
		return fmt.Errorf("%w: every selected path was excluded or skipped", errNothingToCopy)
	}
	if a.cfg.Tokens {
		a.reportTokens(res.Output)
	}

	dest, name := a.outputSink(opts)
	if err := dest.Write(res.Output); err != nil {
		if opts.outputFile != "" {
			return err
		}
		a.log.Warn("clipboard write failed, printing instead", zap.Error(err))
		fmt.Fprintf(a.errOut, "Error writing to clipboard: %v\n", err)
		return sink.Writer{W: a.out}.Write(res.Output)
	}

	sum := res.Summary
	fmt.Fprintf(a.errOut, "Files copied to %s! %d text, %d binary, %d unreadable (%d bytes of text)\n",
		name, sum.TextFiles, sum.BinaryFiles, sum.UnreadableFiles, sum.TextBytes)
	return nil
}

func noSelection() error {
	return fmt.Errorf("%w: select files/folders as arguments or use --interactive", pipeline.ErrNoSelection)
}

// gitIgnore loads the workspace .gitignore unless no_ignore is set.
func (a *app) gitIgnore(root string) collector.IgnoreMatcher {
	if a.cfg.NoIgnore {
		return nil
	}
	ignore, err := collector.LoadGitIgnore(root)
	if err != nil {
		a.log.Warn("could not parse .gitignore", zap.Error(err))
		return nil
	}
	return ignore
}

func (a *app) outputSink(opts copyOptions) (sink.Sink, string) {
	switch {
	case opts.outputFile != "":
		return sink.File{Path: opts.outputFile}, opts.outputFile
	case opts.stdout:
		return sink.Writer{W: a.out}, "stdout"
	default:
		return a.clipboard, "clipboard"
	}
}

func (a *app) reportTokens(text string) {
	counter, err := tokens.New(a.cfg.Tokenizer, a.cfg.TokenizerModel, a.cfg.TokenizerFile, a.log)
	if err != nil {
		a.log.Warn("token counting disabled", zap.Error(err))
		return
	}
	defer counter.Close()
	fmt.Fprintf(a.errOut, "Estimated tokens: %d\n", counter.CountTokens(text))
}
