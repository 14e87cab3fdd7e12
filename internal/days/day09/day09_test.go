package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/aoc"
)

const exampleInputFilename = "testdata/example_input.txt"

func TestPart1_Example(t *testing.T) {
	contents, err := aoc.ReadInput(exampleInputFilename)
	require.NoError(t, err)
	assert.Equal(t, 114, Part1(contents))
}

func TestPart2_Example(t *testing.T) {
	contents, err := aoc.ReadInput(exampleInputFilename)
	require.NoError(t, err)
	assert.Equal(t, 2, Part2(contents))
}

func TestNext(t *testing.T) {
	assert.Equal(t, 18, Next([]int{0, 3, 6, 9, 12, 15}))
	assert.Equal(t, 28, Next([]int{1, 3, 6, 10, 15, 21}))
	assert.Equal(t, 68, Next([]int{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, 7, Next([]int{7}))
	assert.Equal(t, -12, Next([]int{-2, -4, -6, -8, -10}))
}

func TestPrevious(t *testing.T) {
	assert.Equal(t, 5, Previous([]int{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, -3, Previous([]int{0, 3, 6, 9, 12, 15}))
}

func TestNext_DoesNotMutate(t *testing.T) {
	h := []int{1, 3, 6, 10}
	Previous(h)
	Next(h)
	assert.Equal(t, []int{1, 3, 6, 10}, h)
}
