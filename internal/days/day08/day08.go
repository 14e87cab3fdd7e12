// Package day08 walks the desert network of nodes.
package day08

import (
	"fmt"
	"io"
	"strings"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day08/input.txt"

type Node struct {
	Left, Right string
}

type Network struct {
	Instructions string
	Nodes        map[string]Node
}

// ParseNetwork reads the instruction line, a blank line, then "AAA = (BBB, CCC)" lines.
func ParseNetwork(input string) Network {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		panic(fmt.Sprintf("expected instructions and nodes, got %d blocks", len(blocks)))
	}
	n := Network{Instructions: strings.TrimSpace(blocks[0]), Nodes: make(map[string]Node)}
	if strings.Trim(n.Instructions, "LR") != "" {
		panic(fmt.Sprintf("bad instructions %q", n.Instructions))
	}
	for _, line := range aoc.Lines(blocks[1]) {
		name, edges, ok := strings.Cut(line, " = ")
		if !ok {
			panic(fmt.Sprintf("bad node %q", line))
		}
		edges = strings.TrimSuffix(strings.TrimPrefix(edges, "("), ")")
		left, right, ok := strings.Cut(edges, ", ")
		if !ok {
			panic(fmt.Sprintf("bad node %q", line))
		}
		n.Nodes[name] = Node{Left: left, Right: right}
	}
	return n
}

func (n Network) next(at string, step int) string {
	node, ok := n.Nodes[at]
	if !ok {
		panic(fmt.Sprintf("unknown node %q", at))
	}
	if n.Instructions[step%len(n.Instructions)] == 'L' {
		return node.Left
	}
	return node.Right
}

// Steps follows the instructions from start until done reports true.
func (n Network) Steps(start string, done func(string) bool) int {
	at, steps := start, 0
	for !done(at) {
		at = n.next(at, steps)
		steps++
	}
	return steps
}

func Part1(input string) int {
	return ParseNetwork(input).Steps("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 moves a ghost from every node ending in A until all stand on a node
// ending in Z at once. Each ghost's path from its first Z repeats with the
// same period, so the answer is the LCM of the first-arrival step counts.
func Part2(input string) int {
	n := ParseNetwork(input)
	endsZ := func(s string) bool { return strings.HasSuffix(s, "Z") }
	var cycles []int
	for name := range n.Nodes {
		if strings.HasSuffix(name, "A") {
			cycles = append(cycles, n.Steps(name, endsZ))
		}
	}
	return aoc.LCM(cycles...)
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
