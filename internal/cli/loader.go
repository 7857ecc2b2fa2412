package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/unscramble/internal/config"
	"github.com/roach88/unscramble/internal/dictionary"
	"github.com/roach88/unscramble/internal/engine"
	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
	"github.com/roach88/unscramble/internal/store"
)

// Error codes for JSON error output.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeNoDictionary = "E002" // No dictionary source configured
	ErrCodeConfig       = "E003" // Config file unreadable or invalid
	ErrCodeDictionary   = "E004" // Dictionary load failed
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeWriteFailed  = "E006" // Output write error
)

// ErrNoSource is returned when neither a dictionary file nor a database
// is configured.
var ErrNoSource = errors.New("no dictionary source")

// resolveConfig loads the config file, if any, and overlays every flag the
// user set explicitly.
func resolveConfig(opts *RootOptions, cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionary = opts.Dictionary
	}
	if flags.Changed("db") {
		cfg.Database = opts.Database
	}
	if flags.Changed("encoding") {
		cfg.Encoding = opts.Encoding
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.Workers
	}
	if flags.Changed("no-normalize") {
		cfg.Normalize = !opts.NoNormalize
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "invalid settings", err)
	}
	return cfg, nil
}

// loadWords reads the dictionary named by cfg.
//
// A dictionary file takes precedence over the database cache so that an
// explicit --dict is never shadowed by a stale cache.
func loadWords(ctx context.Context, cfg config.Config) ([]ir.Word, error) {
	if cfg.Dictionary != "" {
		slog.Debug("loading dictionary file", "path", cfg.Dictionary, "encoding", cfg.Encoding)
		words, err := dictionary.LoadFile(cfg.Dictionary, dictionary.Options{
			Encoding:  cfg.Encoding,
			Normalize: cfg.Normalize,
		})
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load dictionary", err)
		}
		return words, nil
	}

	if cfg.Database != "" {
		slog.Debug("loading dictionary from database", "path", cfg.Database)
		st, err := store.Open(cfg.Database)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()

		info, err := st.Dictionary(ctx)
		if errors.Is(err, store.ErrNoDictionary) {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("database %s holds no dictionary (run 'unscramble index' first)", cfg.Database), err)
		}
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to read dictionary info", err)
		}

		words, err := st.LoadDictionary(ctx)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load dictionary", err)
		}

		// A cache indexed with --no-normalize still has to match NFC input.
		if cfg.Normalize && !info.Normalized {
			slog.Debug("normalizing cached dictionary", "words", len(words))
			for i, w := range words {
				words[i] = ir.Word(ir.Canonical(string(w)))
			}
		}
		return words, nil
	}

	return nil, WrapExitError(ExitCommandError, "set --dict, --db or a config file", ErrNoSource)
}

// loadIndex loads the dictionary named by cfg and builds its index.
func loadIndex(ctx context.Context, cfg config.Config) (*index.Index, error) {
	words, err := loadWords(ctx, cfg)
	if err != nil {
		return nil, err
	}
	idx := index.Build(words)
	slog.Debug("index built", "words", idx.Len(), "buckets", idx.Buckets())
	return idx, nil
}

// errorCode maps an error to its JSON error code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, config.ErrInvalid):
		return ErrCodeConfig
	case errors.Is(err, store.ErrNoDictionary), errors.Is(err, ErrNoSource):
		return ErrCodeNoDictionary
	case errors.Is(err, dictionary.ErrEncoding):
		return ErrCodeDictionary
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	case errors.Is(err, engine.ErrWrite):
		return ErrCodeWriteFailed
	default:
		return ErrCodeGeneric
	}
}

// reportError writes err to the command output in JSON mode and returns it
// unchanged so main still sets the exit code.
func reportError(opts *RootOptions, cmd *cobra.Command, err error) error {
	if err == nil || opts.Format != "json" {
		return err
	}
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	_ = formatter.Error(errorCode(err), err.Error(), nil)
	return err
}
