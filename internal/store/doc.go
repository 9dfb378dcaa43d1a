// Package store provides file-based persistence for the parameter tables.
//
// It contains concrete implementations of the domain table interfaces:
//   - Curve parameters (CurveFileStore), one "A B p order" row per line or a
//     JSON array of curve.Params when the file name ends in .json.
//   - Safe primes (PrimeFileStore), whitespace-separated integers.
//
// A table file that does not exist yet falls back to the embedded defaults.
// Every row is validated on load; a malformed or invalid row fails the whole
// load rather than producing zero-valued parameters. Writes go through a
// temp file and an atomic rename. All methods are concurrency-safe.
package store
