package app

import (
	"net/http"

	"go.uber.org/zap"

	"aoc2023/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string              // state directory, e.g. $HOME/.aoc2023
	Root      string              // repository root; unit input paths are relative to it
	Year      int                 // puzzle year for downloads
	BaseURL   string              // e.g. https://adventofcode.com
	UserAgent string              // sent with every download
	EnvToken  domain.SessionToken // AOC_SESSION, bypasses the sealed store
	HTTP      *http.Client        // optional; defaults to http.DefaultClient
	Log       *zap.Logger         // optional; defaults to a no-op logger
}
