package engine

import "strings"

// Punctuation that may precede a word. Emitted before the rendered body.
const preChars = "(„"

// Punctuation that may follow a word. Emitted after the rendered body.
const postChars = ",.):“-?"

func isPre(r rune) bool  { return strings.ContainsRune(preChars, r) }
func isPost(r rune) bool { return strings.ContainsRune(postChars, r) }

// IsSpecial reports whether r belongs to either punctuation set.
func IsSpecial(r rune) bool { return isPre(r) || isPost(r) }

// Token is a scrambled token split into punctuation and clean core.
type Token struct {
	// Original is the token exactly as it appeared in the input.
	Original string

	// Pre holds the pre-set characters in encountered order.
	Pre string

	// Clean is the token with every special character removed.
	Clean string

	// Post holds the post-set characters in encountered order.
	Post string
}

// SplitToken separates a raw token into punctuation and clean core.
// Special characters are removed wherever they occur in the token, not
// only at its ends.
func SplitToken(raw string) Token {
	var pre, clean, post strings.Builder
	for _, r := range raw {
		switch {
		case isPre(r):
			pre.WriteRune(r)
		case isPost(r):
			post.WriteRune(r)
		default:
			clean.WriteRune(r)
		}
	}
	return Token{
		Original: raw,
		Pre:      pre.String(),
		Clean:    clean.String(),
		Post:     post.String(),
	}
}
