package engine

import "strings"

// SplitLines splits text into lines on '\n', dropping a trailing '\r' from
// each line. A final line terminator does not produce an empty last line;
// trailing reports whether one was present.
func SplitLines(text string) (lines []string, trailing bool) {
	if text == "" {
		return nil, false
	}
	trailing = strings.HasSuffix(text, "\n")
	if trailing {
		text = text[:len(text)-1]
	}
	lines = strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, trailing
}

// Fields splits line on runs of ASCII whitespace. Leading and trailing
// whitespace produce no empty fields. Non-ASCII spaces such as U+00A0 are
// part of a token.
func Fields(line string) []string {
	return strings.FieldsFunc(line, isASCIISpace)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
