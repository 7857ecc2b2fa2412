// Package store provides a SQLite-backed cache for dictionaries and a log
// of unscrambling runs.
//
// Loading a large plain-text word list, decoding and normalizing it on every
// run is wasteful; the store keeps the decoded words with their
// fingerprints so later runs only read rows back.
//
// # Tables
//
//   - dictionary: single row describing the cached word list (source, count)
//   - words: the words in dictionary order (seq) with their fingerprints
//   - runs: one row per unscrambling run, keyed by a UUIDv7
//
// # Ordering
//
// Word order decides the order of ambiguous candidates, so every read of
// the words table uses ORDER BY seq ASC. Run ids are UUIDv7 and therefore
// sort by creation time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
