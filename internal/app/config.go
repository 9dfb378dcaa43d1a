package app

import (
	"io"
	"net/http"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Tables   string       // directory holding curves.txt / safe_primes.txt; empty means embedded tables
	RelayURL string       // relay base URL, e.g. http://127.0.0.1:8080
	Workers  int          // key-search goroutines; zero means GOMAXPROCS
	LogLevel string       // debug, info, warn or error
	Verify   bool         // recount each curve's order before first use
	HTTP     *http.Client // optional; defaults to http.DefaultClient
	Rand     io.Reader    // optional; defaults to crypto/rand.Reader
}
