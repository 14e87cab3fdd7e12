// Package day01 recovers calibration values from lines of text.
package day01

import (
	"fmt"
	"io"
	"strings"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day01/input.txt"

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at line[i]. Spelled-out digits are
// only recognised when words is set.
func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for n, w := range digitWords {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// calibrationValue joins the first and last digit of line. A line without
// digits is worth 0.
func calibrationValue(line string, words bool) int {
	first, last := -1, -1
	for i := range len(line) {
		if d, ok := digitAt(line, i, words); ok {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0
	}
	return first*10 + last
}

func sum(input string, words bool) int {
	total := 0
	for _, line := range aoc.Lines(input) {
		total += calibrationValue(line, words)
	}
	return total
}

func Part1(input string) int { return sum(input, false) }

// Part2 also accepts digits spelled out as words. Words may overlap, so
// "eightwo" yields 8 then 2.
func Part2(input string) int { return sum(input, true) }

func Run(w io.Writer) error {
	contents, err := aoc.ReadInput(InputFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "part_1 total %d\n", Part1(contents))
	fmt.Fprintf(w, "part_2 total %d\n", Part2(contents))
	return nil
}
