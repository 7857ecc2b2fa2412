// Package resolver finds dictionary words that are exact anagrams of a
// scrambled search word.
//
// The index narrows the search to one fingerprint bucket; the resolver then
// re-checks letter counts, because fingerprints collide.
package resolver

import (
	"unicode"
	"unicode/utf8"

	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
)

// First is an optional first-letter constraint.
// The zero value (Any) imposes no constraint.
type First struct {
	r   rune
	set bool
}

// Any places no constraint on a candidate's first letter.
var Any = First{}

// ForceFirst requires a candidate's first letter, uppercased, to equal r.
func ForceFirst(r rune) First {
	return First{r: r, set: true}
}

// Rune returns the forced letter and whether one is set.
func (f First) Rune() (rune, bool) {
	return f.r, f.set
}

// Resolve returns every word in idx that is an anagram of search under the
// first-letter constraint, in dictionary order.
//
// When first is set, the search word's own first letter is excluded from
// the letter-count comparison, since its case has been folded away.
// Resolve never fails; unknown words yield an empty result.
func Resolve(idx *index.Index, search string, first First) []ir.Word {
	bucket := idx.Lookup(ir.FingerprintOf(search))
	if len(bucket) == 0 {
		return nil
	}

	want := letterCounts(search, first.set)

	var out []ir.Word
	for _, w := range bucket {
		if first.set && !startsWith(string(w), first.r) {
			continue
		}
		if !sameCounts(want, string(w)) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// startsWith reports whether word's first letter, uppercased, equals r.
// An empty word matches any constraint.
func startsWith(word string, r rune) bool {
	c, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return true
	}
	return unicode.ToUpper(c) == r
}

// letterCounts counts each rune of s, optionally skipping the first one.
func letterCounts(s string, skipFirst bool) map[rune]int {
	counts := make(map[rune]int, len(s))
	for i, c := range []rune(s) {
		if skipFirst && i == 0 {
			continue
		}
		counts[c]++
	}
	return counts
}

// sameCounts reports whether every letter in want occurs exactly as often
// in word. Letters of word absent from want are not checked here; the
// shared fingerprint already bounds them.
func sameCounts(want map[rune]int, word string) bool {
	for c, n := range want {
		if countRune(word, c) != n {
			return false
		}
	}
	return true
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
