package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	ConfigPath  string
	Dictionary  string
	Database    string
	Encoding    string
	Workers     int
	NoNormalize bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the unscramble CLI.
//
// Invoked with a file path, the root command unscrambles the file to
// stdout. The subcommands manage the dictionary cache and inspect
// resolution.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "unscramble [FILE_PATH]",
		Short: "Resolve scrambled words against a dictionary",
		Long: `Resolve character-scrambled words in a text against a dictionary.

Each whitespace-separated token is matched against dictionary anagrams.
Punctuation is kept, unknown words are printed as their sorted letters in
backticks, and ambiguous words as a list of candidates.

Examples:
  unscramble --dict german.dic letter.txt
  unscramble --db german.db letter.txt
  unscramble --config unscramble.yaml letter.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnscramble(opts, args, cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	pf.StringVar(&opts.Dictionary, "dict", "", "path to dictionary file (one word per line)")
	pf.StringVar(&opts.Database, "db", "", "path to SQLite dictionary cache")
	pf.StringVar(&opts.Encoding, "encoding", "utf-8", "dictionary encoding (utf-8|iso-8859-1|windows-1252)")
	pf.IntVar(&opts.Workers, "workers", 1, "parallel line workers")
	pf.BoolVar(&opts.NoNormalize, "no-normalize", false, "disable NFC normalization")

	// Add subcommands
	cmd.AddCommand(NewIndexCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// setupLogging installs the default slog handler on w.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
