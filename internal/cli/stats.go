package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/unscramble/internal/config"
	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/store"
)

// StatsResult is the payload of the stats command.
type StatsResult struct {
	Source string      `json:"source"`
	Stats  index.Stats `json:"stats"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dictionary index statistics",
		Long: `Show how the dictionary partitions into fingerprint buckets.

Reports the word count, the number of distinct fingerprints and the
smallest, largest and average bucket size. With only --db, the numbers are
computed by the database without loading the words.

Example:
  unscramble stats --dict german.dic
  unscramble stats --db german.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(rootOpts, cmd, showStats(rootOpts, cmd))
		},
	}
	return cmd
}

func showStats(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return err
	}

	result, err := collectStats(cmd, cfg)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(result)
	}

	s := result.Stats
	fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", result.Source)
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Words", strconv.Itoa(s.Words)},
			{"Buckets", strconv.Itoa(s.Buckets)},
			{"Min bucket", strconv.Itoa(s.MinBucket)},
			{"Max bucket", strconv.Itoa(s.MaxBucket)},
			{"Avg bucket", strconv.FormatFloat(s.AvgBucket, 'f', 2, 64)},
		},
		[]columnAlignment{alignLeft, alignRight},
	))
	return nil
}

func collectStats(cmd *cobra.Command, cfg config.Config) (StatsResult, error) {
	ctx := commandContext(cmd)

	if cfg.Dictionary == "" && cfg.Database != "" {
		st, err := store.Open(cfg.Database)
		if err != nil {
			return StatsResult{}, WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()

		if _, err := st.Dictionary(ctx); err != nil {
			if errors.Is(err, store.ErrNoDictionary) {
				return StatsResult{}, WrapExitError(ExitCommandError, fmt.Sprintf("database %s holds no dictionary", cfg.Database), err)
			}
			return StatsResult{}, WrapExitError(ExitCommandError, "failed to read database", err)
		}
		s, err := st.BucketStats(ctx)
		if err != nil {
			return StatsResult{}, WrapExitError(ExitCommandError, "failed to read database", err)
		}
		return StatsResult{Source: cfg.Database, Stats: s}, nil
	}

	idx, err := loadIndex(ctx, cfg)
	if err != nil {
		return StatsResult{}, err
	}
	return StatsResult{Source: cfg.Dictionary, Stats: idx.Stats()}, nil
}
