package ir

import (
	"golang.org/x/text/unicode/norm"
)

// Canonical returns the NFC form of s.
//
// Dictionaries and inputs may carry decomposed umlauts (u + U+0308) while
// the other side uses the precomposed form. Both sides must agree on one
// form before fingerprints are comparable.
func Canonical(s string) string {
	return norm.NFC.String(s)
}

// IsCanonical reports whether s is already in NFC form.
func IsCanonical(s string) bool {
	return norm.NFC.IsNormalString(s)
}
