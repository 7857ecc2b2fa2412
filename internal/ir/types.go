package ir

// Word is a dictionary entry or a resolved token.
type Word string

// String returns the word text.
func (w Word) String() string {
	return string(w)
}

// Words converts plain strings to Words, preserving order.
func Words(ss []string) []Word {
	out := make([]Word, len(ss))
	for i, s := range ss {
		out[i] = Word(s)
	}
	return out
}

// Strings converts Words back to plain strings, preserving order.
func Strings(ws []Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = string(w)
	}
	return out
}

// Pass identifies which resolution pass produced a candidate set.
type Pass int

const (
	// PassNone means neither pass produced a candidate.
	PassNone Pass = iota
	// PassExact matched the token with its literal letter case.
	PassExact
	// PassFolded matched the lowercased token with a forced first letter.
	PassFolded
)

// String returns a stable name for the pass, used in logs and JSON output.
func (p Pass) String() string {
	switch p {
	case PassExact:
		return "exact"
	case PassFolded:
		return "folded"
	default:
		return "none"
	}
}

// Outcome classifies a candidate set by size.
type Outcome string

const (
	OutcomeUnresolved Outcome = "unresolved" // zero candidates
	OutcomeResolved   Outcome = "resolved"   // exactly one candidate
	OutcomeAmbiguous  Outcome = "ambiguous"  // two or more candidates
)

// OutcomeOf returns the outcome for a candidate set.
func OutcomeOf(candidates []Word) Outcome {
	switch len(candidates) {
	case 0:
		return OutcomeUnresolved
	case 1:
		return OutcomeResolved
	default:
		return OutcomeAmbiguous
	}
}
