// Package day09 extrapolates OASIS sensor histories.
package day09

import (
	"fmt"
	"io"
	"slices"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day09/input.txt"

// Next extrapolates the value after history by repeatedly taking
// differences until they are all zero.
func Next(history []int) int {
	if len(history) == 0 {
		panic("empty history")
	}
	seq := slices.Clone(history)
	next := 0
	for {
		next += seq[len(seq)-1]
		zero := true
		diffs := make([]int, len(seq)-1)
		for i := range diffs {
			diffs[i] = seq[i+1] - seq[i]
			if diffs[i] != 0 {
				zero = false
			}
		}
		if zero {
			return next
		}
		seq = diffs
	}
}

// Previous extrapolates the value before history.
func Previous(history []int) int {
	rev := slices.Clone(history)
	slices.Reverse(rev)
	return Next(rev)
}

func sum(input string, extrapolate func([]int) int) int {
	total := 0
	for _, line := range aoc.Lines(input) {
		total += extrapolate(aoc.Ints(line))
	}
	return total
}

func Part1(input string) int { return sum(input, Next) }

func Part2(input string) int { return sum(input, Previous) }

func Run(w io.Writer) error {
	contents, err := aoc.ReadInput(InputFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "part_1 total %d\n", Part1(contents))
	fmt.Fprintf(w, "part_2 total %d\n", Part2(contents))
	return nil
}
