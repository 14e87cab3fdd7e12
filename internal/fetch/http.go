package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"aoc2023/internal/domain"
)

const DefaultBaseURL = "https://adventofcode.com"

// maxInputBytes caps a response body; real inputs are a few tens of KB.
const maxInputBytes = 4 << 20

type HTTPClient struct {
	Base      string
	UserAgent string
	HTTP      *http.Client
	Log       *zap.Logger
}

func NewHTTP(base, userAgent string, hc *http.Client, log *zap.Logger) *HTTPClient {
	if base == "" {
		base = DefaultBaseURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPClient{Base: strings.TrimSuffix(base, "/"), UserAgent: userAgent, HTTP: hc, Log: log}
}

var _ domain.InputClient = (*HTTPClient)(nil)

// FetchInput returns the puzzle input for year/day.
func (c *HTTPClient) FetchInput(ctx context.Context, token domain.SessionToken, year, day int) ([]byte, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}
	u := fmt.Sprintf("%s/%d/day/%d/input", c.Base, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(string(token))})
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	c.Log.Debug("fetching input", zap.String("url", u))
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", u, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("get %s: %w", u, domain.ErrNotFound)
	case resp.StatusCode/100 != 2:
		return nil, fmt.Errorf("get %s: %s", u, resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxInputBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", u, err)
	}
	if len(b) > maxInputBytes {
		return nil, errors.New("puzzle input larger than 4 MiB")
	}
	c.Log.Debug("fetched input", zap.Int("bytes", len(b)))
	return b, nil
}
