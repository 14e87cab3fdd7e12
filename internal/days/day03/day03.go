// Package day03 scans an engine schematic for part numbers and gears.
package day03

import (
	"fmt"
	"io"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day03/input.txt"

type Position = aoc.PtInt

// GridNumber is a maximal horizontal run of digits.
type GridNumber struct {
	Start Position // leftmost digit
	Len   int
	Value int
}

// Cells returns the positions covered by the number.
func (n GridNumber) Cells() []Position {
	out := make([]Position, n.Len)
	for i := range out {
		out[i] = Position{X: n.Start.X + i, Y: n.Start.Y}
	}
	return out
}

type Grid struct {
	rows []string
	// owner maps each digit cell to the index of its number in numbers.
	owner   map[Position]int
	numbers []GridNumber
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != '.' && !isDigit(c) }

func ParseGrid(input string) *Grid {
	g := &Grid{rows: aoc.Lines(input), owner: make(map[Position]int)}
	for y, row := range g.rows {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			start := x
			value := 0
			for x < len(row) && isDigit(row[x]) {
				value = value*10 + aoc.DigVal(row[x])
				x++
			}
			n := GridNumber{Start: Position{X: start, Y: y}, Len: x - start, Value: value}
			for _, c := range n.Cells() {
				g.owner[c] = len(g.numbers)
			}
			g.numbers = append(g.numbers, n)
		}
	}
	return g
}

// at returns the byte at p, or '.' outside the grid. Rows may differ in length.
func (g *Grid) at(p Position) byte {
	if p.Y < 0 || p.Y >= len(g.rows) || p.X < 0 || p.X >= len(g.rows[p.Y]) {
		return '.'
	}
	return g.rows[p.Y][p.X]
}

func (g *Grid) Numbers() []GridNumber { return g.numbers }

// touchesSymbol reports whether any cell around n holds a symbol.
func (g *Grid) touchesSymbol(n GridNumber) bool {
	for _, c := range n.Cells() {
		for _, p := range c.Neighbors8() {
			if isSymbol(g.at(p)) {
				return true
			}
		}
	}
	return false
}

// adjacentNumbers returns the distinct numbers touching p.
func (g *Grid) adjacentNumbers(p Position) []GridNumber {
	seen := make(map[int]bool)
	var out []GridNumber
	for _, q := range p.Neighbors8() {
		idx, ok := g.owner[q]
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, g.numbers[idx])
	}
	return out
}

// PartNumberSum adds up every number adjacent to a symbol.
func (g *Grid) PartNumberSum() int {
	total := 0
	for _, n := range g.numbers {
		if g.touchesSymbol(n) {
			total += n.Value
		}
	}
	return total
}

// GearRatioSum adds up, for every '*' touching exactly two numbers, their product.
func (g *Grid) GearRatioSum() int {
	total := 0
	for y, row := range g.rows {
		for x := range len(row) {
			if row[x] != '*' {
				continue
			}
			if ns := g.adjacentNumbers(Position{X: x, Y: y}); len(ns) == 2 {
				total += ns[0].Value * ns[1].Value
			}
		}
	}
	return total
}

func Part1(input string) int { return ParseGrid(input).PartNumberSum() }

func Part2(input string) int { return ParseGrid(input).GearRatioSum() }

func Run(w io.Writer) error {
	contents, err := aoc.ReadInput(InputFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "part_1 total %d\n", Part1(contents))
	fmt.Fprintf(w, "part_2 total %d\n", Part2(contents))
	return nil
}
