package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/unscramble/internal/config"
	"github.com/roach88/unscramble/internal/engine"
	"github.com/roach88/unscramble/internal/store"
)

// UsageLine is printed to stderr when no readable input file is given.
const UsageLine = "USAGE: unscramble [FILE_PATH]"

// UnscrambleResult is the JSON payload of an unscramble run.
type UnscrambleResult struct {
	Input   string         `json:"input"`
	Output  string         `json:"output"`
	Summary engine.Summary `json:"summary"`
	RunID   string         `json:"run_id,omitempty"`
}

func runUnscramble(opts *RootOptions, args []string, cmd *cobra.Command) error {
	path, ok := inputPath(args)
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), UsageLine)
		return nil
	}
	return reportError(opts, cmd, unscrambleFile(opts, path, cmd))
}

// inputPath returns the single argument if it names a regular file.
func inputPath(args []string) (string, bool) {
	if len(args) != 1 {
		return "", false
	}
	info, err := os.Stat(args[0])
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return args[0], true
}

func unscrambleFile(opts *RootOptions, path string, cmd *cobra.Command) error {
	ctx := commandContext(cmd)

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return err
	}
	idx, err := loadIndex(ctx, cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input file", err)
	}
	defer f.Close()

	eng := engine.New(idx,
		engine.WithWorkers(cfg.Workers),
		engine.WithNormalize(cfg.Normalize),
		engine.WithLogger(slog.Default()),
	)

	var out bytes.Buffer
	var sink io.Writer = &out
	var bw *bufio.Writer
	if opts.Format != "json" {
		bw = bufio.NewWriter(cmd.OutOrStdout())
		sink = bw
	}

	sum, err := eng.Run(ctx, f, sink)
	if err == nil && bw != nil {
		if ferr := bw.Flush(); ferr != nil {
			err = &engine.WriteError{Line: sum.Lines, Err: ferr}
		}
	}
	switch {
	case errors.Is(err, engine.ErrRead):
		return WrapExitError(ExitCommandError, "failed to read input file", err)
	case errors.Is(err, engine.ErrWrite):
		return WrapExitError(ExitFailure, "failed to write output", err)
	case err != nil:
		return WrapExitError(ExitFailure, "unscramble failed", err)
	}

	runID := recordRun(ctx, cfg, path, sum)

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(UnscrambleResult{
			Input:   path,
			Output:  out.String(),
			Summary: sum,
			RunID:   runID,
		})
	}
	return nil
}

// recordRun appends the run to the database log when one is configured.
// The text has already been written, so failures are logged, not returned.
func recordRun(ctx context.Context, cfg config.Config, path string, sum engine.Summary) string {
	if cfg.Database == "" {
		return ""
	}
	st, err := store.Open(cfg.Database)
	if err != nil {
		slog.Warn("failed to open database for run log", "path", cfg.Database, "error", err)
		return ""
	}
	defer st.Close()

	id, err := st.RecordRun(ctx, store.RunRecord{
		Input:      path,
		Lines:      sum.Lines,
		Tokens:     sum.Tokens,
		Resolved:   sum.Resolved,
		Ambiguous:  sum.Ambiguous,
		Unresolved: sum.Unresolved,
	})
	if err != nil {
		slog.Warn("failed to record run", "error", err)
		return ""
	}
	slog.Debug("run recorded", "id", id)
	return id
}

// commandContext returns the command's context, or Background when the
// command is executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
