// Package crypto exposes the few primitives aoc needs around secrets.
//
// Contents
//
//   - Short SHA-256 fingerprints for display/logging (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// Sealing the session token at rest lives in internal/store next to the
// file format it belongs to.
package crypto
