package app_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/app"
	"aoc2023/internal/days"
)

func TestNewWire_FetchesThroughStoredSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		if err != nil || c.Value != "tok" {
			http.Error(w, "no", http.StatusBadRequest)
			return
		}
		w.Write([]byte("1abc2\n"))
	}))
	defer srv.Close()

	home, root := t.TempDir(), t.TempDir()
	w, err := app.NewWire(app.Config{
		Home:    home,
		Root:    root,
		Year:    2023,
		BaseURL: srv.URL,
		HTTP:    srv.Client(),
	})
	require.NoError(t, err)
	require.NoError(t, w.Sessions.SaveSession("pw", "tok"))

	u, ok := days.Lookup("day_1")
	require.True(t, ok)
	rec, err := w.Inputs.Ensure(context.Background(), u, "pw", false)
	require.NoError(t, err)
	assert.Equal(t, 6, rec.Bytes)

	b, err := os.ReadFile(filepath.Join(root, u.InputFilename))
	require.NoError(t, err)
	assert.Equal(t, "1abc2\n", string(b))

	_, known, err := w.Manifest.Lookup(1)
	require.NoError(t, err)
	assert.True(t, known)
}

func TestNew_RunnerWritesToOut(t *testing.T) {
	w, err := app.NewWire(app.Config{Home: t.TempDir()})
	require.NoError(t, err)

	var out bytes.Buffer
	a := app.New(w, &out)
	require.NoError(t, a.Runner.RunOne(context.Background(), "day_99"))
	assert.Equal(t, "day_99 not recognized\n", out.String())
}
