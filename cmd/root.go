package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jadenpxrk/copycode/internal/config"
	"github.com/jadenpxrk/copycode/internal/logging"
	"github.com/jadenpxrk/copycode/internal/sink"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is the application version, set via ldflags.
var Version = "dev"

// app carries the state shared by all commands of one process.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *zap.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	clipboard sink.Sink
	opener    sink.Opener

	// Persistent flags
	cfgFile string
	debug   bool
	root    string
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		v:         viper.New(),
		log:       zap.NewNop(),
		in:        in,
		out:       out,
		errOut:    errOut,
		clipboard: sink.Clipboard{},
		opener:    sink.Browser{},
	}
}

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	var opts copyOptions

	rootCmd := &cobra.Command{
		Use:   "copycode [PATHS...]",
		Short: "Copy files and folders to the clipboard as Markdown for LLM chats",
		Long: `copycode collects the selected files and folders into one Markdown text,
one fenced block per file labelled with its path relative to the workspace root,
and copies it to the clipboard ready to paste into a chat.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCopy(args, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/copycode/config.toml)")
	pf.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	pf.StringVar(&a.root, "root", "", "Workspace root for relative paths (default: enclosing git repository or current directory)")

	f := rootCmd.Flags()
	f.StringSlice("binary-ext", nil, "Extensions treated as binary, replacing the defaults (e.g. .png,.psd)")
	a.bind("binary_extensions", f.Lookup("binary-ext"))
	f.StringSliceP("exclude", "e", nil, "Glob patterns to skip while expanding folders (replaces the defaults)")
	a.bind("excludes", f.Lookup("exclude"))
	f.Bool("apply-excludes", true, "Apply the exclude patterns while expanding folders")
	a.bind("apply_excludes", f.Lookup("apply-excludes"))
	f.Bool("no-ignore", false, "Don't respect the workspace .gitignore")
	a.bind("no_ignore", f.Lookup("no-ignore"))

	f.Bool("tokens", false, "Report an estimated token count")
	a.bind("tokens", f.Lookup("tokens"))
	f.String("tokenizer", "tiktoken", "Tokenizer to use: tiktoken or huggingface")
	a.bind("tokenizer", f.Lookup("tokenizer"))
	f.String("tokenizer-model", "", "Model name for tiktoken (e.g., gpt-4o)")
	a.bind("tokenizer_model", f.Lookup("tokenizer-model"))
	f.String("tokenizer-file", "", "Path to a local huggingface tokenizer.json")
	a.bind("tokenizer_file", f.Lookup("tokenizer-file"))

	f.StringVarP(&opts.outputFile, "output", "o", "", "Save output to the specified file instead of the clipboard")
	f.BoolVarP(&opts.stdout, "stdout", "p", false, "Print output to stdout instead of the clipboard")
	f.BoolVarP(&opts.interactive, "interactive", "I", false, "Pick files and folders with a fuzzy finder")

	rootCmd.AddCommand(newSelectionCmd(a), newVersionCmd(a))
	return rootCmd
}

// bind ties a flag to a config key. BindPFlag only fails on a nil flag.
func (a *app) bind(key string, fl *pflag.Flag) {
	cobra.CheckErr(a.v.BindPFlag(key, fl))
}

// init reads config and builds the logger once flags are parsed.
func (a *app) init() error {
	logger, err := logging.New(a.debug, "copycode", Version)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = logger

	config.SetDefaults(a.v)
	used, err := config.ReadInConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// Execute runs the CLI against the process stdio and returns the error, if
// any, after printing it.
func Execute() error {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	err := newRootCmd(a).Execute()
	if err != nil && !errors.Is(err, errAborted) {
		fmt.Fprintln(a.errOut, "Error:", err)
	}
	if syncErr := logging.Sync(a.log); syncErr != nil {
		fmt.Fprintf(a.errOut, "Logger sync failed: %v\n", syncErr)
	}
	if errors.Is(err, errAborted) {
		return nil
	}
	return err
}
