// Package engine unscrambles text against a dictionary index.
//
// The engine works at two levels:
//
// Token level:
// A whitespace-delimited token is split into its punctuation and its clean
// core. The core is resolved in two passes:
//  1. exact: the core as written, no first-letter constraint
//  2. folded: the lowercased core, with the first uppercase letter of the
//     core (if any) forced onto the candidate's first position
//
// The second pass runs only when the first yields nothing. Candidates from
// the folded pass have their first letter uppercased before rendering.
//
// Text level:
// Input is split into lines and each line into tokens on runs of ASCII
// whitespace. Rendered tokens are joined by a single space and lines by a
// single newline, so line count and token count per line are preserved.
//
// RENDERING:
//
//	no candidate     `sorted letters`      e.g. `qzz`
//	one candidate    the word              e.g. Würde
//	many candidates  quoted list           e.g. ["Sei", "Sie"]
//
// Characters of the pre set are emitted before the rendered body and those
// of the post set after it, each in the order they appear in the token.
//
// CONCURRENCY:
//
// The index is read-only, so lines may be processed by several workers
// (WithWorkers). Results are addressed by line number and written in input
// order regardless of completion order.
package engine
