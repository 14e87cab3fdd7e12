package store

import (
	"path/filepath"
	"strconv"
	"sync"

	"aoc2023/internal/domain"
)

const manifestFilename = "inputs.json"

// ManifestFileStore records fetched inputs in a single JSON file keyed by day.
type ManifestFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewManifestFileStore returns a ManifestFileStore rooted at dir.
func NewManifestFileStore(dir string) *ManifestFileStore {
	return &ManifestFileStore{dir: dir}
}

func (s *ManifestFileStore) Record(rec domain.InputRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, manifestFilename)
	records := map[string]domain.InputRecord{}
	if err := readJSON(path, &records); err != nil {
		return err
	}
	records[strconv.Itoa(rec.Day)] = rec
	return writeJSON(path, records, 0o644)
}

func (s *ManifestFileStore) Lookup(day int) (domain.InputRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := map[string]domain.InputRecord{}
	if err := readJSON(filepath.Join(s.dir, manifestFilename), &records); err != nil {
		return domain.InputRecord{}, false, err
	}
	rec, ok := records[strconv.Itoa(day)]
	return rec, ok, nil
}

// Compile-time assertion that ManifestFileStore implements domain.ManifestStore.
var _ domain.ManifestStore = (*ManifestFileStore)(nil)
