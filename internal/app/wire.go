package app

import (
	"net/http"

	"go.uber.org/zap"

	"aoc2023/internal/domain"
	"aoc2023/internal/fetch"
	"aoc2023/internal/services/input"
	"aoc2023/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Sessions domain.SessionStore
	Manifest domain.ManifestStore
	Client   domain.InputClient
	Inputs   *input.Service
	HTTP     *http.Client
	Log      *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	// File-based stores
	sessionStore := store.NewSessionFileStore(cfg.Home)
	manifestStore := store.NewManifestFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := fetch.NewHTTP(cfg.BaseURL, cfg.UserAgent, httpClient, log.Named("fetch"))

	inputs := input.New(client, sessionStore, manifestStore, log.Named("input"), input.Options{
		Year:     cfg.Year,
		EnvToken: cfg.EnvToken,
		Root:     cfg.Root,
	})

	return &Wire{
		Sessions: sessionStore,
		Manifest: manifestStore,
		Client:   client,
		Inputs:   inputs,
		HTTP:     httpClient,
		Log:      log,
	}, nil
}
