// Package exchange runs both parties of an EC-DH exchange in one process.
//
// It picks the curve from the table, draws a generator, runs the protocol
// and, on request, the exhaustive key search over the public transcript.
package exchange
