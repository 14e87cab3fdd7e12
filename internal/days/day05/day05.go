// Package day05 follows seeds through the almanac's category maps.
//
// Part 2 never enumerates seeds. Seed ranges are kept as half-open
// intervals and each category map splits them at its entry boundaries,
// so the work is proportional to the number of intervals, not their width.
package day05

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day05/input.txt"

type Almanac struct {
	Seeds []int
	Maps  []AlmanacMap
	Log   io.Writer
}

type AlmanacMap struct {
	Input   string
	Output  string
	Entries []Entry
}

// Entry maps [Source, Source+SourceRange) onto [Destination, Destination+SourceRange).
type Entry struct {
	Destination int
	Source      int
	SourceRange int
}

func (e Entry) source() Interval {
	return Interval{Start: e.Source, End: e.Source + e.SourceRange}
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start int
	End   int
}

func (r Interval) Empty() bool { return r.End <= r.Start }

func (r Interval) Shift(d int) Interval { return Interval{Start: r.Start + d, End: r.End + d} }

func (m AlmanacMap) Lookup(v int) int {
	for _, e := range m.Entries {
		if v >= e.Source && v < e.Source+e.SourceRange {
			return v - e.Source + e.Destination
		}
	}
	return v
}

// Remap sends every value of in through m and returns the resulting
// intervals in no particular order. A piece moved by one entry is not
// looked at again by later entries of the same map.
func (m AlmanacMap) Remap(in []Interval) []Interval {
	pending := in
	var out []Interval
	for _, e := range m.Entries {
		src := e.source()
		var next []Interval
		for _, r := range pending {
			before := Interval{Start: r.Start, End: min(r.End, src.Start)}
			inside := Interval{Start: max(r.Start, src.Start), End: min(r.End, src.End)}
			after := Interval{Start: max(r.Start, src.End), End: r.End}
			if !before.Empty() {
				next = append(next, before)
			}
			if !inside.Empty() {
				out = append(out, inside.Shift(e.Destination-e.Source))
			}
			if !after.Empty() {
				next = append(next, after)
			}
		}
		pending = next
	}
	return append(out, pending...)
}

func (a Almanac) Lookup(seed int) (location int) {
	location = seed
	fmt.Fprintf(a.Log, "seed: %d", seed)
	for _, m := range a.Maps {
		location = m.Lookup(location)
		fmt.Fprintf(a.Log, " %s: %d", m.Output, location)
	}
	fmt.Fprintln(a.Log)
	return
}

func (a Almanac) LowestLocation() int {
	lowest := math.MaxInt
	for _, seed := range a.Seeds {
		lowest = min(lowest, a.Lookup(seed))
	}
	return lowest
}

// SeedRanges reads Seeds as (start, length) pairs.
func (a Almanac) SeedRanges() []Interval {
	if len(a.Seeds)%2 != 0 {
		panic(fmt.Sprintf("odd number of seed values: %d", len(a.Seeds)))
	}
	out := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Interval{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1]})
	}
	return out
}

func (a Almanac) LowestLocationByRanges() int {
	ranges := a.SeedRanges()
	for _, m := range a.Maps {
		ranges = m.Remap(ranges)
		fmt.Fprintf(a.Log, "%s: %d intervals\n", m.Output, len(ranges))
	}
	lowest := math.MaxInt
	for _, r := range ranges {
		lowest = min(lowest, r.Start)
	}
	return lowest
}

func LoadAlmanac(input string) (almanac Almanac) {
	almanac.Log = io.Discard
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if seeds, ok := strings.CutPrefix(line, "seeds:"); ok {
			almanac.Seeds = aoc.Ints(seeds)
		} else if name, ok := strings.CutSuffix(line, " map:"); ok {
			splitName := strings.Split(name, "-")
			if len(splitName) != 3 {
				panic(fmt.Sprintf("bad map name %q", name))
			}
			aMap := AlmanacMap{
				Input:  splitName[0],
				Output: splitName[2],
			}
			for scanner.Scan() {
				fields := aoc.Ints(scanner.Text())
				if len(fields) == 0 {
					break
				}
				if len(fields) != 3 {
					panic(fmt.Sprintf("bad map entry %q", scanner.Text()))
				}
				aMap.Entries = append(aMap.Entries, Entry{
					Destination: fields[0],
					Source:      fields[1],
					SourceRange: fields[2],
				})
			}
			almanac.Maps = append(almanac.Maps, aMap)
		}
	}
	aoc.MustDo(scanner.Err())
	return
}

func Part1(input string) int { return LoadAlmanac(input).LowestLocation() }

func Part2(input string) int { return LoadAlmanac(input).LowestLocationByRanges() }

func Run(w io.Writer) error {
	contents, err := aoc.ReadInput(InputFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "part_1 total %d\n", Part1(contents))
	fmt.Fprintf(w, "part_2 total %d\n", Part2(contents))
	return nil
}
