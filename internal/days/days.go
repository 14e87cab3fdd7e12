package days

import (
	"io"
	"strconv"
	"strings"

	"aoc2023/internal/days/day01"
	"aoc2023/internal/days/day02"
	"aoc2023/internal/days/day03"
	"aoc2023/internal/days/day04"
	"aoc2023/internal/days/day05"
	"aoc2023/internal/days/day06"
	"aoc2023/internal/days/day07"
	"aoc2023/internal/days/day08"
	"aoc2023/internal/days/day09"
	"aoc2023/internal/days/day10"
)

// Unit is one daily solver.
type Unit struct {
	Name          string // e.g. "day_1"
	Day           int
	InputFilename string
	Run           func(w io.Writer) error
}

var Units = []Unit{
	{"day_1", 1, day01.InputFilename, day01.Run},
	{"day_2", 2, day02.InputFilename, day02.Run},
	{"day_3", 3, day03.InputFilename, day03.Run},
	{"day_4", 4, day04.InputFilename, day04.Run},
	{"day_5", 5, day05.InputFilename, day05.Run},
	{"day_6", 6, day06.InputFilename, day06.Run},
	{"day_7", 7, day07.InputFilename, day07.Run},
	{"day_8", 8, day08.InputFilename, day08.Run},
	{"day_9", 9, day09.InputFilename, day09.Run},
	{"day_10", 10, day10.InputFilename, day10.Run},
}

// Lookup finds a unit by "day_N", "dayN" or plain "N".
func Lookup(name string) (Unit, bool) {
	return find(Units, name)
}

func find(units []Unit, name string) (Unit, bool) {
	s := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(name), "day"), "_")
	n, err := strconv.Atoi(s)
	if err != nil {
		return Unit{}, false
	}
	for _, u := range units {
		if u.Day == n {
			return u, true
		}
	}
	return Unit{}, false
}
