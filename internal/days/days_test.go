package days_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aoc2023/internal/days"
)

func TestUnits_InDayOrder(t *testing.T) {
	require.Len(t, days.Units, 10)
	for i, u := range days.Units {
		assert.Equal(t, i+1, u.Day)
		assert.NotEmpty(t, u.InputFilename)
		assert.NotNil(t, u.Run)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"day_3", "day3", "3", "DAY_3"} {
		u, ok := days.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "day_3", u.Name)
	}
	for _, name := range []string{"day_11", "day_x", "", "day_0"} {
		_, ok := days.Lookup(name)
		assert.False(t, ok, name)
	}
}

func fakeUnits(calls *[]string, failOn int) []days.Unit {
	mk := func(day int, name string) days.Unit {
		return days.Unit{Name: name, Day: day, InputFilename: name + ".txt", Run: func(w io.Writer) error {
			*calls = append(*calls, name)
			if day == failOn {
				return os.ErrNotExist
			}
			_, err := io.WriteString(w, "part_1 total 1\n")
			return err
		}}
	}
	return []days.Unit{mk(1, "day_1"), mk(2, "day_2"), mk(3, "day_3")}
}

func TestRunner_RunOne(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	r := &days.Runner{Log: zap.NewNop(), Out: &out, Units: fakeUnits(&calls, 0)}

	require.NoError(t, r.RunOne(context.Background(), "day_2"))
	assert.Equal(t, []string{"day_2"}, calls)
	assert.Equal(t, "running day_2\npart_1 total 1\n", out.String())
}

func TestRunner_RunOne_Unknown(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	r := &days.Runner{Log: zap.NewNop(), Out: &out, Units: fakeUnits(&calls, 0)}

	require.NoError(t, r.RunOne(context.Background(), "day_42"))
	assert.Empty(t, calls)
	assert.Equal(t, "day_42 not recognized\n", out.String())
}

func TestRunner_RunAll(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	r := &days.Runner{Log: zap.NewNop(), Out: &out, Units: fakeUnits(&calls, 0)}

	require.NoError(t, r.RunAll(context.Background()))
	assert.Equal(t, []string{"day_1", "day_2", "day_3"}, calls)
	assert.Contains(t, out.String(), "Running all days\n")
}

func TestRunner_RunAll_StopsOnFailure(t *testing.T) {
	var calls []string
	r := &days.Runner{Log: zap.NewNop(), Out: io.Discard, Units: fakeUnits(&calls, 2)}

	err := r.RunAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "day_2")
	assert.Equal(t, []string{"day_1", "day_2"}, calls)
}

func TestRunner_Canceled(t *testing.T) {
	var calls []string
	r := &days.Runner{Log: zap.NewNop(), Out: io.Discard, Units: fakeUnits(&calls, 0)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.RunAll(ctx), context.Canceled)
	assert.Empty(t, calls)
}

// Real units read their input relative to the repository root; from the
// package directory the files are absent and the read error surfaces.
func TestRunner_MissingInput(t *testing.T) {
	var out bytes.Buffer
	r := days.NewRunner(zap.NewNop(), &out)

	err := r.RunOne(context.Background(), "day_1")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotContains(t, out.String(), "part_1")
}

func TestRunner_LogsTiming(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var calls []string
	r := &days.Runner{Log: zap.New(core), Out: io.Discard, Units: fakeUnits(&calls, 2)}

	require.NoError(t, r.RunOne(context.Background(), "day_1"))

	started := logs.FilterMessage("running unit").All()
	require.Len(t, started, 1)
	assert.Equal(t, zapcore.DebugLevel, started[0].Level)
	assert.Equal(t, "day_1", started[0].ContextMap()["unit"])

	finished := logs.FilterMessage("unit finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, zapcore.DebugLevel, finished[0].Level)
	assert.Equal(t, "day_1", finished[0].ContextMap()["unit"])
	assert.Contains(t, finished[0].ContextMap(), "elapsed")

	require.Error(t, r.RunOne(context.Background(), "day_2"))
	failed := logs.FilterMessage("unit failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, "day_2", failed[0].ContextMap()["unit"])
	assert.Equal(t, 1, logs.FilterMessage("unit finished").Len())
}
