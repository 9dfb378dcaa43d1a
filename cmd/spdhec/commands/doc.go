// Package commands defines the spdhec CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - exchange   Run an EC-DH exchange between two local parties
//   - curves     List the curve table
//   - points     List every point of a small curve
//   - generate   Search for a new prime-order curve
//   - party      Play one side of an exchange through a relay
//
// # Implementation
//
// The root command initialises logging and builds the dependency graph
// (tables, services, relay client) before any subcommand runs, so handlers
// share one app.Wire.
package commands
