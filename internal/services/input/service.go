package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"aoc2023/internal/crypto"
	"aoc2023/internal/days"
	"aoc2023/internal/domain"
	"aoc2023/internal/store"
)

// Service fetches and tracks puzzle inputs.
type Service struct {
	client   domain.InputClient
	sessions domain.SessionStore
	manifest domain.ManifestStore
	log      *zap.Logger

	year     int
	envToken domain.SessionToken // from AOC_SESSION; wins over the store
	root     string              // repository root the unit paths are relative to
	now      func() time.Time
}

type Options struct {
	Year     int
	EnvToken domain.SessionToken
	Root     string
}

func New(client domain.InputClient, sessions domain.SessionStore, manifest domain.ManifestStore, log *zap.Logger, opts Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		client:   client,
		sessions: sessions,
		manifest: manifest,
		log:      log,
		year:     opts.Year,
		envToken: opts.EnvToken,
		root:     opts.Root,
		now:      time.Now,
	}
}

func (s *Service) path(u days.Unit) string {
	if s.root == "" {
		return u.InputFilename
	}
	return filepath.Join(s.root, u.InputFilename)
}

// Token resolves the session token to use.
func (s *Service) Token(passphrase string) (domain.SessionToken, error) {
	if s.envToken != "" {
		return s.envToken, nil
	}
	if passphrase == "" {
		return "", fmt.Errorf("%w (or pass -p to unlock the stored one)", domain.ErrNoSession)
	}
	return s.sessions.LoadSession(passphrase)
}

// Ensure downloads the input for u unless it already exists and force is
// unset. The returned record describes the file on disk. For a file that was
// not downloaded now, it is the manifest record if that still matches the
// file, otherwise a record with a zero FetchedAt.
func (s *Service) Ensure(ctx context.Context, u days.Unit, passphrase string, force bool) (domain.InputRecord, error) {
	path := s.path(u)
	log := s.log.With(zap.String("unit", u.Name), zap.String("path", path))

	if !force {
		if b, err := os.ReadFile(path); err == nil {
			log.Info("input already present; use --force to download again")
			return s.existing(u, path, b)
		} else if !errors.Is(err, os.ErrNotExist) {
			return domain.InputRecord{}, err
		}
	}

	token, err := s.Token(passphrase)
	if err != nil {
		return domain.InputRecord{}, err
	}
	b, err := s.client.FetchInput(ctx, token, s.year, u.Day)
	if err != nil {
		return domain.InputRecord{}, fmt.Errorf("fetch %s: %w", u.Name, err)
	}
	if err := store.WriteFileAtomic(path, b, 0o644); err != nil {
		return domain.InputRecord{}, fmt.Errorf("write %s: %w", path, err)
	}

	rec := s.describe(u, path, b)
	rec.FetchedAt = s.now().UTC()
	if err := s.manifest.Record(rec); err != nil {
		return domain.InputRecord{}, fmt.Errorf("record %s: %w", u.Name, err)
	}
	log.Info("input fetched", zap.Int("bytes", rec.Bytes), zap.Stringer("checksum", rec.Checksum))
	return rec, nil
}

func (s *Service) describe(u days.Unit, path string, b []byte) domain.InputRecord {
	return domain.InputRecord{
		Day:      u.Day,
		Path:     path,
		Bytes:    len(b),
		Checksum: crypto.Fingerprint(b),
	}
}

func (s *Service) existing(u days.Unit, path string, b []byte) (domain.InputRecord, error) {
	rec := s.describe(u, path, b)
	known, ok, err := s.manifest.Lookup(u.Day)
	if err != nil {
		return domain.InputRecord{}, fmt.Errorf("lookup %s: %w", u.Name, err)
	}
	if ok && known.Checksum == rec.Checksum {
		return known, nil
	}
	return rec, nil
}

// Status reports whether u's input exists and what the manifest knows about it.
type Status struct {
	Unit    days.Unit
	Present bool
	Record  domain.InputRecord
	Known   bool
}

func (s *Service) Status(u days.Unit) (Status, error) {
	st := Status{Unit: u}
	if _, err := os.Stat(s.path(u)); err == nil {
		st.Present = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return st, err
	}
	rec, ok, err := s.manifest.Lookup(u.Day)
	if err != nil {
		return st, err
	}
	st.Record, st.Known = rec, ok
	return st, nil
}
