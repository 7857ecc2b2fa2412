package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/unscramble/internal/dictionary"
	"github.com/roach88/unscramble/internal/engine"
	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: true if Output matches Expect
	// (or no expectation was given).
	Pass bool `json:"pass"`

	// Output is the rendered text.
	Output string `json:"output"`

	// Summary counts tokens by outcome.
	Summary engine.Summary `json:"summary"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Load inline and file dictionary words
// 2. Build a fresh index
// 3. Unscramble the input
// 4. Compare against Expect if present
//
// Errors are returned only for setup failures (unreadable dictionary);
// an output mismatch is reported through Result.
func Run(scenario *Scenario) (*Result, error) {
	words, err := scenarioWords(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	eng := engine.New(index.Build(words),
		engine.WithWorkers(scenario.Workers),
		engine.WithNormalize(true),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
	)

	var out bytes.Buffer
	sum, err := eng.Run(context.Background(), bytes.NewReader([]byte(scenario.Input)), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to unscramble input: %w", err)
	}

	result := NewResult()
	result.Output = out.String()
	result.Summary = sum

	if scenario.Expect != nil && *scenario.Expect != result.Output {
		result.AddError(fmt.Sprintf("output mismatch:\n  expected: %q\n  actual:   %q", *scenario.Expect, result.Output))
	}
	return result, nil
}

// scenarioWords returns inline words followed by the dictionary file's
// words, NFC-normalized. Blank inline entries are skipped like blank lines
// in a word list.
func scenarioWords(s *Scenario) ([]ir.Word, error) {
	words := make([]ir.Word, 0, len(s.Dictionary))
	for _, w := range s.Dictionary {
		if strings.TrimSpace(w) == "" {
			continue
		}
		words = append(words, ir.Word(ir.Canonical(w)))
	}
	if s.DictionaryFile == "" {
		return words, nil
	}

	fromFile, err := dictionary.LoadFile(s.DictionaryFile, dictionary.Options{
		Encoding:  s.Encoding,
		Normalize: true,
	})
	if err != nil {
		return nil, err
	}
	return append(words, fromFile...), nil
}
