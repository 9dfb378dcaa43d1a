// Package crypto holds the small helpers layered on top of the curve engine
// for display and key derivation.
//
// Contents
//
//   - Short fingerprints of public points (Fingerprint), BLAKE2b over the
//     compressed encoding
//   - HKDF-SHA256 over the compressed shared point (DeriveKey)
//
// # Notes
//
// DeriveKey is an optional extra. The exchanged secret itself remains the
// y-coordinate of the shared point; DeriveKey shows what hashing the whole
// point yields instead.
package crypto
