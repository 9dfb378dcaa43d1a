package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"spdhec/internal/curve"
)

// Fingerprint returns a short hex fingerprint of a public point.
//
// It hashes the compressed encoding with BLAKE2b-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(c *curve.Curve, p curve.Point) (string, error) {
	enc, err := c.Compress(p)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(enc)
	return hex.EncodeToString(sum[:10]), nil
}
