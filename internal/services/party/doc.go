// Package party runs one side of an exchange between two processes.
//
// Alice opens the session: she picks the curve and generator and publishes
// them on the relay. Bob waits for those parameters. Each side then publishes
// its compressed public point, waits for the peer's, and derives the shared
// secret locally. Only public values cross the relay.
package party
