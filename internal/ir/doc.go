// Package ir provides the shared vocabulary types for the unscrambler.
//
// This package contains type definitions and pure helpers only. All other
// internal packages import ir; ir imports nothing internal. This keeps ir
// the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Words are plain text with no identity beyond their bytes
//   - Fingerprints are permutation-invariant but NOT injective; callers
//     must re-verify letter counts after a fingerprint match
//   - Nothing here allocates shared state; every function is pure
package ir
