// Package ecdh implements the elliptic-curve Diffie-Hellman exchange between
// two parties over a Ready curve.Curve.
//
// # Overview
//
// Both parties agree on a curve of prime order n and a generator G. Each
// draws a private scalar k in [1, n-1], publishes K = k·G, and multiplies the
// peer's public point by its own scalar. Because scalar multiplication
// commutes, a·(b·G) = b·(a·G) and both sides hold the same shared point S.
//
// The exported secret is the y-coordinate of S, not the whole point. Distinct
// points can share a y-coordinate, which is what the exhaustive search in
// package search relies on.
//
// # Flow
//
//  1. RandomGenerator (or an agreed G) and ValidateGenerator.
//  2. GenerateKeyPair / NewKeyPair for each party.
//  3. DeriveSharedSecret on each side with the peer's public point.
//  4. Secret extracts S.y.
//
// Exchange runs the whole flow for two local parties and checks that both
// derived the same point.
//
// # Errors
//
// ErrInvalidScalar for private keys outside [1, n-1], ErrInvalidGenerator and
// ErrInvalidPublicKey for points that are off the curve or the identity,
// ErrDegenerateSecret when the shared point is the identity, and
// ErrSecretMismatch when the two sides disagree.
package ecdh
