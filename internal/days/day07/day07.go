// Package day07 ranks Camel Cards hands.
package day07

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"aoc2023/internal/aoc"
)

const InputFilename = "internal/days/day07/input.txt"

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

// HandType orders hands from weakest to strongest.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

type Hand struct {
	Cards string
	Bid   int
}

func ParseHand(line string) Hand {
	cards, bid, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok || len(cards) != 5 {
		panic(fmt.Sprintf("bad hand %q", line))
	}
	for i := range len(cards) {
		if !strings.ContainsRune(cardOrder, rune(cards[i])) {
			panic(fmt.Sprintf("bad card %q in %q", cards[i], line))
		}
	}
	return Hand{Cards: cards, Bid: aoc.Int(bid)}
}

// Type classifies the hand. With jokers, every J joins the largest
// group of other cards.
func (h Hand) Type(jokers bool) HandType {
	counts := make(map[rune]int)
	wild := 0
	for _, c := range h.Cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

func compareHands(a, b Hand, jokers bool) int {
	if c := cmp.Compare(a.Type(jokers), b.Type(jokers)); c != 0 {
		return c
	}
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	for i := range len(a.Cards) {
		if c := cmp.Compare(strings.IndexByte(order, a.Cards[i]), strings.IndexByte(order, b.Cards[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings sums bid*rank with the weakest hand ranked 1.
func Winnings(hands []Hand, jokers bool) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return compareHands(a, b, jokers) })
	total := 0
	for i, h := range sorted {
		total += h.Bid * (i + 1)
	}
	return total
}

func parseHands(input string) []Hand {
	var hands []Hand
	for _, line := range aoc.Lines(input) {
		hands = append(hands, ParseHand(line))
	}
	return hands
}

func Part1(input string) int { return Winnings(parseHands(input), false) }

func Part2(input string) int { return Winnings(parseHands(input), true) }

func Run(w io.Writer) error {
	contents, err := aoc.ReadInput(InputFilename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "part_1 total %d\n", Part1(contents))
	fmt.Fprintf(w, "part_2 total %d\n", Part2(contents))
	return nil
}
