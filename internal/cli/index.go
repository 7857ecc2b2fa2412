package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/store"
)

// IndexResult is the payload of the index command.
type IndexResult struct {
	Database   string               `json:"database"`
	Dictionary store.DictionaryInfo `json:"dictionary"`
	Stats      index.Stats          `json:"stats"`
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Load a dictionary file into the SQLite cache",
		Long: `Load a dictionary file into the SQLite cache.

The previous cached dictionary is replaced in a single transaction. Later
runs can use --db instead of --dict and skip decoding the word list.

Example:
  unscramble index --dict german.dic --db german.db
  unscramble index --dict german-latin1.dic --encoding iso-8859-1 --db german.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(rootOpts, cmd, indexDictionary(rootOpts, cmd))
		},
	}
	return cmd
}

func indexDictionary(opts *RootOptions, cmd *cobra.Command) error {
	ctx := commandContext(cmd)

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return err
	}
	if cfg.Dictionary == "" {
		return WrapExitError(ExitCommandError, "index requires --dict", ErrNoSource)
	}
	if cfg.Database == "" {
		return NewExitError(ExitCommandError, "index requires --db")
	}

	words, err := loadWords(ctx, cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	info := store.DictionaryInfo{
		Source:     cfg.Dictionary,
		WordCount:  len(words),
		Encoding:   cfg.Encoding,
		Normalized: cfg.Normalize,
	}
	if err := st.SaveDictionary(ctx, info, words); err != nil {
		return WrapExitError(ExitCommandError, "failed to save dictionary", err)
	}
	slog.Debug("dictionary cached", "path", cfg.Database, "words", len(words))

	result := IndexResult{
		Database:   cfg.Database,
		Dictionary: info,
		Stats:      index.Build(words).Stats(),
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	formatter.VerboseLog("dictionary %s: encoding %s, normalized %t", info.Source, info.Encoding, info.Normalized)
	formatter.VerboseLog("buckets: min %d, max %d, avg %.2f",
		result.Stats.MinBucket, result.Stats.MaxBucket, result.Stats.AvgBucket)
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("Indexed %d words (%d buckets) from %s into %s",
		result.Stats.Words, result.Stats.Buckets, info.Source, result.Database))
}
