package input

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aoc2023/internal/crypto"
	"aoc2023/internal/days"
	"aoc2023/internal/domain"
	"aoc2023/internal/store"
)

type fakeClient struct {
	calls int
	token domain.SessionToken
	body  []byte
	err   error
}

func (f *fakeClient) FetchInput(_ context.Context, token domain.SessionToken, year, day int) ([]byte, error) {
	f.calls++
	f.token = token
	return f.body, f.err
}

type fakeSessions struct {
	token domain.SessionToken
}

func (f *fakeSessions) SaveSession(_ string, token domain.SessionToken) error {
	f.token = token
	return nil
}

func (f *fakeSessions) LoadSession(passphrase string) (domain.SessionToken, error) {
	if f.token == "" {
		return "", domain.ErrNoSession
	}
	if passphrase != "pass" {
		return "", store.ErrWrongPassphrase
	}
	return f.token, nil
}

func newService(t *testing.T, c *fakeClient, sess *fakeSessions, env domain.SessionToken) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	s := New(c, sess, store.NewManifestFileStore(root), zap.NewNop(), Options{Year: 2023, EnvToken: env, Root: root})
	s.now = func() time.Time { return time.Date(2023, 12, 1, 5, 0, 0, 0, time.UTC) }
	return s, root
}

func unit(t *testing.T, name string) days.Unit {
	t.Helper()
	u, ok := days.Lookup(name)
	require.True(t, ok)
	return u
}

func TestEnsure_Fetches(t *testing.T) {
	c := &fakeClient{body: []byte("1abc2\n")}
	s, root := newService(t, c, &fakeSessions{token: "stored"}, "")

	rec, err := s.Ensure(context.Background(), unit(t, "day_1"), "pass", false)
	require.NoError(t, err)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, domain.SessionToken("stored"), c.token)
	assert.Equal(t, crypto.Fingerprint([]byte("1abc2\n")), rec.Checksum)
	assert.Equal(t, 6, rec.Bytes)

	b, err := os.ReadFile(filepath.Join(root, "internal/days/day01/input.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1abc2\n", string(b))

	st, err := s.Status(unit(t, "day_1"))
	require.NoError(t, err)
	assert.True(t, st.Present)
	assert.True(t, st.Known)
	assert.Equal(t, rec.Checksum, st.Record.Checksum)
}

func TestEnsure_KeepsExisting(t *testing.T) {
	c := &fakeClient{body: []byte("new")}
	s, root := newService(t, c, &fakeSessions{}, "env")
	path := filepath.Join(root, "internal/days/day02/input.txt")
	require.NoError(t, store.WriteFileAtomic(path, []byte("old"), 0o644))

	rec, err := s.Ensure(context.Background(), unit(t, "day_2"), "", false)
	require.NoError(t, err)
	assert.Zero(t, c.calls)
	assert.Equal(t, 3, rec.Bytes)
	assert.True(t, rec.FetchedAt.IsZero(), "untracked file reported as fetched at %v", rec.FetchedAt)

	fetched, err := s.Ensure(context.Background(), unit(t, "day_2"), "", true)
	require.NoError(t, err)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, time.Date(2023, 12, 1, 5, 0, 0, 0, time.UTC), fetched.FetchedAt)

	// A later run without --force reports the recorded download, not "now".
	s.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	again, err := s.Ensure(context.Background(), unit(t, "day_2"), "", false)
	require.NoError(t, err)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, fetched, again)
	assert.Equal(t, domain.SessionToken("env"), c.token)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
}

func TestEnsure_NoSession(t *testing.T) {
	c := &fakeClient{}
	s, _ := newService(t, c, &fakeSessions{}, "")

	_, err := s.Ensure(context.Background(), unit(t, "day_3"), "", false)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = s.Ensure(context.Background(), unit(t, "day_3"), "pass", false)
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Zero(t, c.calls)
}

func TestEnsure_FetchErrorWritesNothing(t *testing.T) {
	c := &fakeClient{err: errors.New("boom")}
	s, root := newService(t, c, &fakeSessions{}, "env")

	_, err := s.Ensure(context.Background(), unit(t, "day_4"), "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day_4")

	_, statErr := os.Stat(filepath.Join(root, "internal/days/day04/input.txt"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)

	st, err := s.Status(unit(t, "day_4"))
	require.NoError(t, err)
	assert.False(t, st.Present)
	assert.False(t, st.Known)
}
