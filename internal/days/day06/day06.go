// Package day06 counts the ways to win a boat race.
package day06

import (
	"fmt"
	"io"
	"math"
	"strings"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day06/input.txt"

type Race struct {
	Time   int
	Record int
}

// WaysToWin counts hold times h in [0, Time] with h*(Time-h) > Record.
//
// The winning holds form one contiguous run around Time/2, bounded by the
// roots of h² - Time·h + Record = 0. The float estimate is nudged onto the
// exact integer boundary.
func (r Race) WaysToWin() int {
	beats := func(h int) bool { return h*(r.Time-h) > r.Record }

	disc := float64(r.Time*r.Time - 4*r.Record)
	if disc < 0 {
		return 0
	}
	lo := int(math.Floor((float64(r.Time) - math.Sqrt(disc)) / 2))
	lo = max(lo, 0)
	for lo <= r.Time/2 && !beats(lo) {
		lo++
	}
	for lo > 0 && beats(lo-1) {
		lo--
	}
	if !beats(lo) {
		return 0
	}
	// Distances are symmetric about Time/2.
	hi := r.Time - lo
	return hi - lo + 1
}

func parseLine(line, prefix string) string {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		panic(fmt.Sprintf("expected %q line, got %q", prefix, line))
	}
	return rest
}

func parse(input string) (times, records string) {
	lines := aoc.Lines(input)
	if len(lines) != 2 {
		panic(fmt.Sprintf("expected 2 lines, got %d", len(lines)))
	}
	return parseLine(lines[0], "Time:"), parseLine(lines[1], "Distance:")
}

func ParseRaces(input string) []Race {
	times, records := parse(input)
	t, d := aoc.Ints(times), aoc.Ints(records)
	if len(t) != len(d) {
		panic(fmt.Sprintf("%d times but %d distances", len(t), len(d)))
	}
	races := make([]Race, len(t))
	for i := range t {
		races[i] = Race{Time: t[i], Record: d[i]}
	}
	return races
}

// ParseKerned reads each line as one number, ignoring the spaces.
func ParseKerned(input string) Race {
	times, records := parse(input)
	join := func(s string) int { return aoc.Int(strings.Join(strings.Fields(s), "")) }
	return Race{Time: join(times), Record: join(records)}
}

func Part1(input string) int {
	product := 1
	for _, r := range ParseRaces(input) {
		product *= r.WaysToWin()
	}
	return product
}

func Part2(input string) int { return ParseKerned(input).WaysToWin() }

func Run(w io.Writer) error {
	contents, err := aoc.ReadInput(InputFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "part_1 total %d\n", Part1(contents))
	fmt.Fprintf(w, "part_2 total %d\n", Part2(contents))
	return nil
}
