// Package app wires application dependencies for the CLI.
//
// It loads the parameter tables, builds the relay client and the high-level
// services from Config, and exposes them via the Wire struct for commands to
// use.
package app
