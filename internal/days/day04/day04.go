// Package day04 scores scratchcards.
package day04

import (
	"fmt"
	"io"
	"strings"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day04/input.txt"

type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// ParseCard reads "Card 1: 41 48 83 | 83 86  6".
func ParseCard(line string) Card {
	title, body, ok := strings.Cut(line, ":")
	if !ok {
		panic(fmt.Sprintf("bad card line %q", line))
	}
	winning, have, ok := strings.Cut(body, "|")
	if !ok {
		panic(fmt.Sprintf("bad card line %q", line))
	}
	return Card{
		ID:      aoc.Int(strings.TrimPrefix(title, "Card")),
		Winning: aoc.Ints(winning),
		Have:    aoc.Ints(have),
	}
}

// Matches counts the numbers we have that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = true
	}
	n := 0
	for _, h := range c.Have {
		if winning[h] {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for each one after.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func Part1(input string) int {
	total := 0
	for _, line := range aoc.Lines(input) {
		total += ParseCard(line).Points()
	}
	return total
}

// Part2 counts all cards held once every won copy has been processed.
// Copies never run past the end of the table.
func Part2(input string) int {
	lines := aoc.Lines(input)
	copies := make([]int, len(lines))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, line := range lines {
		m := ParseCard(line).Matches()
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return total
}

func Run(w io.Writer) error {
	contents, err := aoc.ReadInput(InputFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "part_1 total %d\n", Part1(contents))
	fmt.Fprintf(w, "part_2 total %d\n", Part2(contents))
	return nil
}
