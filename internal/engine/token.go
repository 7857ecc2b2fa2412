package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
	"github.com/roach88/unscramble/internal/resolver"
)

// Resolution is the outcome of resolving one clean token.
type Resolution struct {
	// Clean is the token core that was looked up.
	Clean string `json:"clean"`

	// Pass is the pass that produced Candidates (PassNone if empty).
	Pass ir.Pass `json:"-"`

	// Candidates are the matching words, ready for rendering.
	Candidates []ir.Word `json:"candidates"`
}

// Outcome classifies the resolution by candidate count.
func (r Resolution) Outcome() ir.Outcome {
	return ir.OutcomeOf(r.Candidates)
}

// Rendered returns the output form of the candidates.
func (r Resolution) Rendered() string {
	return Render(r.Clean, r.Candidates)
}

// ResolveClean resolves a clean token core against idx.
//
// The exact pass runs first; the folded pass runs only if it finds nothing.
// No state is shared between the passes.
func ResolveClean(idx *index.Index, clean string) Resolution {
	if words := exactPass(idx, clean); len(words) > 0 {
		return Resolution{Clean: clean, Pass: ir.PassExact, Candidates: words}
	}
	if words := foldedPass(idx, clean); len(words) > 0 {
		return Resolution{Clean: clean, Pass: ir.PassFolded, Candidates: words}
	}
	return Resolution{Clean: clean, Pass: ir.PassNone}
}

func exactPass(idx *index.Index, clean string) []ir.Word {
	return resolver.Resolve(idx, clean, resolver.Any)
}

// foldedPass lowercases clean and forces the first uppercase letter found
// anywhere in it onto the candidate's first position.
func foldedPass(idx *index.Index, clean string) []ir.Word {
	first := resolver.Any
	if i := strings.IndexFunc(clean, unicode.IsUpper); i >= 0 {
		r, _ := utf8.DecodeRuneInString(clean[i:])
		first = resolver.ForceFirst(r)
	}

	words := resolver.Resolve(idx, strings.ToLower(clean), first)
	out := make([]ir.Word, len(words))
	for i, w := range words {
		out[i] = ir.Word(capitalize(string(w)))
	}
	return out
}

// capitalize uppercases the first letter of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
