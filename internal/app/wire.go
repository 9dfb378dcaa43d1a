package app

import (
	"crypto/rand"
	"net/http"
	"path/filepath"

	"spdhec/internal/domain"
	"spdhec/internal/relay"
	curvegensvc "spdhec/internal/services/curvegen"
	exchangesvc "spdhec/internal/services/exchange"
	partysvc "spdhec/internal/services/party"
	"spdhec/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Curves   domain.CurveTable
	Engines  domain.CurveEngines
	Primes   domain.PrimeSource
	Exchange domain.ExchangeService
	CurveGen domain.CurveGenService
	Party    domain.PartyService
	Relay    domain.RelayClient
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// File-based tables
	var curvesPath, primesPath string
	if cfg.Tables != "" {
		curvesPath = filepath.Join(cfg.Tables, store.CurvesFile)
		primesPath = filepath.Join(cfg.Tables, store.PrimesFile)
	}
	curveStore, err := store.NewCurveFileStore(curvesPath)
	if err != nil {
		return nil, err
	}
	primeStore, err := store.NewPrimeFileStore(primesPath)
	if err != nil {
		return nil, err
	}
	engines, err := store.NewEngineCache(curveStore, 0, cfg.Verify)
	if err != nil {
		return nil, err
	}

	// Ensure an HTTP client and a randomness source are available
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.Reader
	}

	// Relay client (uses provided HTTP client)
	rc := relay.NewHTTP(cfg.RelayURL, httpClient)

	// High-level services
	return &Wire{
		Curves:   curveStore,
		Engines:  engines,
		Primes:   primeStore,
		Exchange: exchangesvc.New(engines, rng, cfg.Workers),
		CurveGen: curvegensvc.New(primeStore, rng),
		Party:    partysvc.New(engines, rc, rng, 0),
		Relay:    rc,
		HTTP:     httpClient,
	}, nil
}
