// Package index builds the fingerprint-keyed dictionary index.
//
// The index maps each ir.Fingerprint to the dictionary words sharing it, in
// dictionary order. It is built exactly once with Build and never mutated
// afterwards, so a single *Index may be shared by any number of concurrent
// readers without locking.
//
// Bucket order matters: when several words share a fingerprint and all of
// them pass the resolver's anagram check, they are reported in the order
// they appeared in the dictionary.
package index
