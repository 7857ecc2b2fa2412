package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
)

// Engine unscrambles tokens, lines and whole texts against one index.
//
// An Engine holds no mutable state after construction and is safe for
// concurrent use.
type Engine struct {
	idx       *index.Index
	workers   int
	normalize bool
	logger    *slog.Logger
}

// EngineOption allows configuration of engine parameters.
type EngineOption func(*Engine)

// WithWorkers sets the number of line workers used by Unscramble and Run.
//
// Default: 1 (sequential). Values below 1 are treated as 1.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithNormalize enables NFC normalization of each clean token before lookup.
// The dictionary must have been normalized the same way.
func WithNormalize(on bool) EngineOption {
	return func(e *Engine) {
		e.normalize = on
	}
}

// WithLogger sets the logger used for debug output.
// Default: slog.Default().
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine over idx. The index is shared, never copied.
func New(idx *index.Index, opts ...EngineOption) *Engine {
	e := &Engine{
		idx:     idx,
		workers: 1,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Index returns the index the engine resolves against.
func (e *Engine) Index() *index.Index {
	return e.idx
}

// Summary counts tokens by outcome over one run.
type Summary struct {
	Lines      int `json:"lines"`
	Tokens     int `json:"tokens"`
	Resolved   int `json:"resolved"`
	Ambiguous  int `json:"ambiguous"`
	Unresolved int `json:"unresolved"`
}

func (s *Summary) add(o Summary) {
	s.Lines += o.Lines
	s.Tokens += o.Tokens
	s.Resolved += o.Resolved
	s.Ambiguous += o.Ambiguous
	s.Unresolved += o.Unresolved
}

func (s *Summary) count(o ir.Outcome) {
	s.Tokens++
	switch o {
	case ir.OutcomeResolved:
		s.Resolved++
	case ir.OutcomeAmbiguous:
		s.Ambiguous++
	default:
		s.Unresolved++
	}
}

// UnscrambleToken resolves and renders one raw token, punctuation included.
func (e *Engine) UnscrambleToken(raw string) string {
	out, _ := e.unscrambleToken(raw)
	return out
}

func (e *Engine) unscrambleToken(raw string) (string, ir.Outcome) {
	tok := SplitToken(raw)
	res := e.resolve(tok.Clean)

	outcome := res.Outcome()
	if outcome != ir.OutcomeResolved {
		e.logger.Debug("token not uniquely resolved",
			"token", raw,
			"outcome", string(outcome),
			"candidates", len(res.Candidates),
		)
	}
	return tok.Pre + res.Rendered() + tok.Post, outcome
}

// resolve looks clean up, in NFC when normalization is on. The returned
// resolution keeps clean as written, so an unresolved marker shows the
// token's own code points.
func (e *Engine) resolve(clean string) Resolution {
	if !e.normalize {
		return ResolveClean(e.idx, clean)
	}
	res := ResolveClean(e.idx, ir.Canonical(clean))
	res.Clean = clean
	return res
}

// UnscrambleLine unscrambles every whitespace-delimited token of line and
// joins the results with single spaces.
func (e *Engine) UnscrambleLine(line string) string {
	out, _ := e.unscrambleLine(line)
	return out
}

func (e *Engine) unscrambleLine(line string) (string, Summary) {
	sum := Summary{Lines: 1}
	tokens := Fields(line)
	rendered := make([]string, len(tokens))
	for i, tok := range tokens {
		out, outcome := e.unscrambleToken(tok)
		rendered[i] = out
		sum.count(outcome)
	}
	return strings.Join(rendered, " "), sum
}

// Unscramble unscrambles a whole text.
//
// Line count and order are preserved. The result ends with a newline iff
// text does.
func (e *Engine) Unscramble(text string) string {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail and the context is never cancelled.
	_, _ = e.process(context.Background(), text, &buf)
	return buf.String()
}

// Run reads all of r, unscrambles it and writes the result to w.
//
// Output is identical to Unscramble. Cancellation is checked between lines.
// A failing writer aborts the run with a *WriteError.
func (e *Engine) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return e.process(ctx, string(data), w)
}

func (e *Engine) process(ctx context.Context, text string, w io.Writer) (Summary, error) {
	lines, trailing := SplitLines(text)

	results, err := e.mapLines(ctx, lines)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for i, res := range results {
		sum.add(res.summary)
		out := res.text
		if i < len(results)-1 || trailing {
			out += "\n"
		}
		if _, err := io.WriteString(w, out); err != nil {
			return sum, &WriteError{Line: i, Err: err}
		}
	}

	e.logger.Debug("text unscrambled",
		"lines", sum.Lines,
		"tokens", sum.Tokens,
		"resolved", sum.Resolved,
		"ambiguous", sum.Ambiguous,
		"unresolved", sum.Unresolved,
	)
	return sum, nil
}

type lineResult struct {
	text    string
	summary Summary
}

// mapLines unscrambles lines, in parallel when more than one worker is
// configured. results[i] always belongs to lines[i].
func (e *Engine) mapLines(ctx context.Context, lines []string) ([]lineResult, error) {
	results := make([]lineResult, len(lines))

	if e.workers <= 1 || len(lines) < 2 {
		for i, line := range lines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i].text, results[i].summary = e.unscrambleLine(line)
		}
		return results, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(e.workers, len(lines)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i].text, results[i].summary = e.unscrambleLine(lines[i])
			}
		}()
	}

	var err error
feed:
	for i := range lines {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return results, nil
}
