// Package day10 traces the animal's loop through a field of pipes.
package day10

import (
	"fmt"
	"io"
	"strings"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day10/input.txt"

type Position = aoc.PtInt

// Directions index aoc.Pt2.Neighbors4.
const (
	north = iota
	east
	south
	west
)

func opposite(d int) int { return (d + 2) % 4 }

// pipes lists the two directions each tile connects.
var pipes = map[byte][2]int{
	'|': {north, south},
	'-': {east, west},
	'L': {north, east},
	'J': {north, west},
	'7': {south, west},
	'F': {south, east},
}

type Maze struct {
	rows  []string
	start Position
}

func ParseMaze(input string) Maze {
	m := Maze{rows: aoc.Lines(input)}
	found := false
	for y, row := range m.rows {
		if x := strings.IndexByte(row, 'S'); x >= 0 {
			if found {
				panic("more than one start tile")
			}
			m.start = Position{X: x, Y: y}
			found = true
		}
	}
	if !found {
		panic("no start tile")
	}
	return m
}

func (m Maze) at(p Position) byte {
	if p.Y < 0 || p.Y >= len(m.rows) || p.X < 0 || p.X >= len(m.rows[p.Y]) {
		return '.'
	}
	return m.rows[p.Y][p.X]
}

func connects(tile byte, d int) bool {
	c, ok := pipes[tile]
	return ok && (c[0] == d || c[1] == d)
}

// startDirections lists the directions from S whose neighbour points back at
// it. Junk pipes next to S may be listed too.
func (m Maze) startDirections() []int {
	var dirs []int
	for d, q := range m.start.Neighbors4() {
		if connects(m.at(q), opposite(d)) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// walk follows the pipes leaving S towards dir. It reports false if the
// path dead-ends before coming back to S.
func (m Maze) walk(dir int) ([]Position, bool) {
	loop := []Position{m.start}
	at := m.start
	for {
		at = at.Neighbors4()[dir]
		if at == m.start {
			return loop, true
		}
		from := opposite(dir)
		c, ok := pipes[m.at(at)]
		if !ok || (c[0] != from && c[1] != from) {
			return nil, false
		}
		loop = append(loop, at)
		dir = c[0]
		if dir == from {
			dir = c[1]
		}
	}
}

// Loop returns the tiles of the loop in walking order, starting at S.
func (m Maze) Loop() []Position {
	dirs := m.startDirections()
	for _, d := range dirs {
		if loop, ok := m.walk(d); ok {
			return loop
		}
	}
	panic(fmt.Sprintf("no loop through start tile %v (%d connecting pipes)", m.start, len(dirs)))
}

// Enclosed counts tiles strictly inside the loop. The shoelace formula gives
// the polygon area through tile centres and Pick's theorem turns it into the
// number of interior lattice points.
func Enclosed(loop []Position) int {
	area2 := 0
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		area2 += p.X*q.Y - q.X*p.Y
	}
	return aoc.Abs(area2)/2 - len(loop)/2 + 1
}

func Part1(input string) int { return len(ParseMaze(input).Loop()) / 2 }

func Part2(input string) int { return Enclosed(ParseMaze(input).Loop()) }

func Run(w io.Writer) error {
	contents, err := aoc.ReadInput(InputFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "part_1 total %d\n", Part1(contents))
	fmt.Fprintf(w, "part_2 total %d\n", Part2(contents))
	return nil
}
