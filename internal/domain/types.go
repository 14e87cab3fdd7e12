package domain

import "time"

// SessionToken is the adventofcode.com "session" cookie value.
type SessionToken string

// String hides the token so it never ends up in logs.
func (t SessionToken) String() string {
	if t == "" {
		return ""
	}
	return "<redacted>"
}

// Fingerprint is a short identifier shown to users instead of a secret.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// InputRecord describes one downloaded puzzle input.
type InputRecord struct {
	Day       int         `json:"day"`
	Path      string      `json:"path"`
	Bytes     int         `json:"bytes"`
	Checksum  Fingerprint `json:"checksum"`
	FetchedAt time.Time   `json:"fetched_at"`
}
