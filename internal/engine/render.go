package engine

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/roach88/unscramble/internal/ir"
)

// Render formats a candidate set for output.
//
// clean is the token's clean core, used for the unresolved marker.
func Render(clean string, candidates []ir.Word) string {
	switch len(candidates) {
	case 0:
		return RenderUnresolved(clean)
	case 1:
		return string(candidates[0])
	default:
		return RenderAmbiguous(candidates)
	}
}

// RenderUnresolved wraps the letters of clean, sorted by code point, in
// backticks.
func RenderUnresolved(clean string) string {
	letters := []rune(clean)
	slices.Sort(letters)
	return "`" + string(letters) + "`"
}

// RenderAmbiguous renders candidates as a bracketed list of quoted words,
// e.g. ["Sei", "Sie"].
func RenderAmbiguous(candidates []ir.Word) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, w := range candidates {
		if i > 0 {
			b.WriteString(", ")
		}
		writeQuoted(&b, string(w))
	}
	b.WriteByte(']')
	return b.String()
}

// writeQuoted writes s in double quotes. Backslash, quote, control
// characters and combining marks are escaped; other printable text,
// including non-ASCII letters, is written as is.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if !unicode.IsPrint(r) || unicode.In(r, unicode.Mn, unicode.Me) {
				fmt.Fprintf(b, `\u{%x}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
