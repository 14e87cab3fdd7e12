package domain

import (
	"context"
	"errors"
)

var (
	// ErrNoSession is returned when no session token is stored or configured.
	ErrNoSession = errors.New("no session token: run `aoc session set` or export AOC_SESSION")
	// ErrNotFound is returned by the input client for a day that is not published.
	ErrNotFound = errors.New("puzzle input not found")
)

// SessionStore persists the session token encrypted under a passphrase.
type SessionStore interface {
	SaveSession(passphrase string, token SessionToken) error
	LoadSession(passphrase string) (SessionToken, error)
}

// ManifestStore records which inputs were fetched and when.
type ManifestStore interface {
	Record(rec InputRecord) error
	Lookup(day int) (InputRecord, bool, error)
}

// InputClient downloads puzzle inputs.
type InputClient interface {
	FetchInput(ctx context.Context, token SessionToken, year, day int) ([]byte, error)
}
