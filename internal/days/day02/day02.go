// Package day02 checks cube games against a bag's contents.
package day02

import (
	"fmt"
	"io"
	"strings"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day02/input.txt"

// The bag holds this many cubes of each color.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

// Handful is one reveal of cubes from the bag.
type Handful struct {
	Red, Green, Blue int
}

func (h Handful) possible() bool {
	return h.Red <= maxRed && h.Green <= maxGreen && h.Blue <= maxBlue
}

func (h Handful) power() int { return h.Red * h.Green * h.Blue }

type Game struct {
	ID       int
	Handfuls []Handful
}

// parseHandful reads "3 blue, 4 red".
func parseHandful(s string) Handful {
	var h Handful
	for _, stmt := range strings.Split(s, ",") {
		count, color, ok := strings.Cut(strings.TrimSpace(stmt), " ")
		if !ok {
			panic(fmt.Sprintf("bad cube statement %q", stmt))
		}
		n := aoc.Int(count)
		switch color {
		case "red":
			h.Red = n
		case "green":
			h.Green = n
		case "blue":
			h.Blue = n
		default:
			panic(fmt.Sprintf("unknown cube color %q", color))
		}
	}
	return h
}

// ParseGame reads "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) Game {
	title, summary, ok := strings.Cut(line, ":")
	if !ok {
		panic(fmt.Sprintf("bad game line %q", line))
	}
	g := Game{ID: aoc.Int(strings.TrimPrefix(title, "Game "))}
	for _, hs := range strings.Split(summary, ";") {
		g.Handfuls = append(g.Handfuls, parseHandful(hs))
	}
	return g
}

func (g Game) possible() bool {
	for _, h := range g.Handfuls {
		if !h.possible() {
			return false
		}
	}
	return true
}

// minimumSet is the fewest cubes of each color that make the game possible.
func (g Game) minimumSet() Handful {
	var m Handful
	for _, h := range g.Handfuls {
		m.Red = max(m.Red, h.Red)
		m.Green = max(m.Green, h.Green)
		m.Blue = max(m.Blue, h.Blue)
	}
	return m
}

func Part1(input string) int {
	total := 0
	for _, line := range aoc.Lines(input) {
		if g := ParseGame(line); g.possible() {
			total += g.ID
		}
	}
	return total
}

func Part2(input string) int {
	total := 0
	for _, line := range aoc.Lines(input) {
		total += ParseGame(line).minimumSet().power()
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
