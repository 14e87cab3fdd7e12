package aoc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/aoc"
)

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0o600))

	got, err := aoc.ReadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", got)
}

func TestReadInput_Missing(t *testing.T) {
	_, err := aoc.ReadInput(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, aoc.Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, aoc.Lines("a\r\n\r\nb"))
	assert.Nil(t, aoc.Lines(""))
}

func TestBlocks(t *testing.T) {
	assert.Equal(t, []string{"a\nb", "c"}, aoc.Blocks("a\nb\n\nc\n"))
}

func TestInts(t *testing.T) {
	assert.Equal(t, []int{79, 14, -3}, aoc.Ints(" 79  14 -3 "))
	assert.Panics(t, func() { aoc.Ints("1 x") })
}

func TestDigVal(t *testing.T) {
	assert.Equal(t, 7, aoc.DigVal('7'))
	assert.Panics(t, func() { aoc.DigVal('a') })
}

func TestPt2(t *testing.T) {
	p := aoc.PtInt{X: 0, Y: 0}
	n := p.Neighbors8()
	assert.Len(t, n, 8)
	assert.NotContains(t, n, p)
	assert.Equal(t, aoc.PtInt{X: 0, Y: -1}, p.Neighbors4()[0])
	assert.True(t, aoc.PtInt{X: 2, Y: 1}.In(3, 2))
	assert.False(t, aoc.PtInt{X: 3, Y: 1}.In(3, 2))
	assert.Equal(t, aoc.PtInt{X: 3, Y: 5}, aoc.PtInt{X: 1, Y: 2}.Add(aoc.PtInt{X: 2, Y: 3}))
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 6, aoc.GCD(12, 18))
	assert.Equal(t, 36, aoc.LCM(12, 18))
	assert.Equal(t, int64(6), aoc.LCM[int64](2, 3))
	assert.Equal(t, 1, aoc.LCM[int]())
}
