// Package store provides file-based persistence for aoc's local state.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking. Files live under
// the configured home directory (default ~/.aoc2023):
//   - the session token, sealed with a passphrase (SessionFileStore)
//   - the manifest of fetched puzzle inputs (ManifestFileStore)
//
// WriteFileAtomic is also used for the puzzle input files themselves.
package store
