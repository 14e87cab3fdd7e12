package app

import (
	"io"

	"aoc2023/internal/days"
)

// App is what the commands operate on: the wired dependencies plus the
// dispatcher writing answers to out.
type App struct {
	*Wire
	Runner *days.Runner
}

func New(w *Wire, out io.Writer) *App {
	return &App{
		Wire:   w,
		Runner: days.NewRunner(w.Log.Named("days"), out),
	}
}
