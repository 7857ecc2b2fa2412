package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/unscramble/internal/engine"
	"github.com/roach88/unscramble/internal/ir"
)

// LookupEntry describes how one token was resolved.
type LookupEntry struct {
	Token      string     `json:"token"`
	Clean      string     `json:"clean"`
	Pass       string     `json:"pass"`
	Outcome    ir.Outcome `json:"outcome"`
	Candidates []string   `json:"candidates"`
	Rendered   string     `json:"rendered"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <token>...",
		Short: "Explain how tokens resolve",
		Long: `Resolve each token and show which pass matched and every candidate.

Punctuation is split off the token exactly as during unscrambling. The
exact pass looks the token up as written; the folded pass lowercases it and
forces the first uppercase letter to lead the word.

Example:
  unscramble lookup --dict german.dic eiD eSi atusar.tanbn`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(rootOpts, cmd, lookupTokens(rootOpts, args, cmd))
		},
	}
	return cmd
}

func lookupTokens(opts *RootOptions, tokens []string, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return err
	}
	idx, err := loadIndex(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	formatter.VerboseLog("index: %d words in %d buckets", idx.Len(), idx.Buckets())

	entries := make([]LookupEntry, 0, len(tokens))
	for _, raw := range tokens {
		tok := engine.SplitToken(raw)
		clean := tok.Clean
		if cfg.Normalize {
			clean = ir.Canonical(clean)
		}
		res := engine.ResolveClean(idx, clean)
		res.Clean = tok.Clean
		entries = append(entries, LookupEntry{
			Token:      raw,
			Clean:      tok.Clean,
			Pass:       res.Pass.String(),
			Outcome:    res.Outcome(),
			Candidates: ir.Strings(res.Candidates),
			Rendered:   tok.Pre + res.Rendered() + tok.Post,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Token,
			e.Pass,
			string(e.Outcome),
			strings.Join(e.Candidates, ", "),
			e.Rendered,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Token", "Pass", "Outcome", "Candidates", "Rendered"},
		rows,
		nil,
	))
	return nil
}
