package aoc

import "golang.org/x/exp/constraints"

// Pt2 is a point on a 2D grid. Y grows downwards.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

type PtInt = Pt2[int]

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether p lies within a w by h grid anchored at the origin.
func (p Pt2[T]) In(w, h T) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

// Neighbors4 returns the orthogonal neighbours in N, E, S, W order.
func (p Pt2[T]) Neighbors4() [4]Pt2[T] {
	return [4]Pt2[T]{
		{p.X, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
	}
}

// Neighbors8 returns the eight surrounding points, row by row.
func (p Pt2[T]) Neighbors8() [8]Pt2[T] {
	return [8]Pt2[T]{
		{p.X - 1, p.Y - 1}, {p.X, p.Y - 1}, {p.X + 1, p.Y - 1},
		{p.X - 1, p.Y}, {p.X + 1, p.Y},
		{p.X - 1, p.Y + 1}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1},
	}
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
