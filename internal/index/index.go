package index

import (
	"github.com/roach88/unscramble/internal/ir"
)

// Index maps fingerprints to the ordered dictionary words that share them.
type Index struct {
	buckets map[ir.Fingerprint][]ir.Word
	words   int
}

// Build constructs an index over words.
//
// Each word is appended to the bucket of its fingerprint; buckets keep the
// relative order of the input. Duplicate words are kept as given.
func Build(words []ir.Word) *Index {
	idx := &Index{
		buckets: make(map[ir.Fingerprint][]ir.Word),
		words:   len(words),
	}
	for _, w := range words {
		fp := ir.FingerprintOf(string(w))
		idx.buckets[fp] = append(idx.buckets[fp], w)
	}
	return idx
}

// Lookup returns the words sharing fp, in dictionary order.
// Returns an empty slice when no word has that fingerprint.
//
// The returned slice aliases index storage and must not be modified.
func (idx *Index) Lookup(fp ir.Fingerprint) []ir.Word {
	if idx == nil {
		return nil
	}
	return idx.buckets[fp]
}

// Len returns the number of words the index was built from.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return idx.words
}

// Buckets returns the number of distinct fingerprints.
func (idx *Index) Buckets() int {
	if idx == nil {
		return 0
	}
	return len(idx.buckets)
}
