package ir

// Fingerprint is a permutation-invariant digest of a word's bytes.
//
// Two words with the same multiset of bytes always share a fingerprint.
// The converse does not hold: distinct multisets may collide.
type Fingerprint uint64

// FingerprintOf computes the fingerprint of word as the wraparound sum of
// its UTF-8 byte values.
//
// Letter case is significant because upper and lower case letters have
// different byte values.
func FingerprintOf(word string) Fingerprint {
	var sum uint64
	for i := 0; i < len(word); i++ {
		sum += uint64(word[i])
	}
	return Fingerprint(sum)
}

// FingerprintBytes is FingerprintOf for raw bytes.
func FingerprintBytes(b []byte) Fingerprint {
	var sum uint64
	for _, c := range b {
		sum += uint64(c)
	}
	return Fingerprint(sum)
}
