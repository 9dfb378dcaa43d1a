package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"spdhec/internal/curve"
	"spdhec/internal/util/memzero"
)

// KeyInfo is the default HKDF info string.
const KeyInfo = "spdhec-shared-point"

// DeriveKey expands the compressed shared point into n bytes with
// HKDF-SHA256. Both parties obtain the same key only if they hold the same
// point, not merely the same y-coordinate.
func DeriveKey(c *curve.Curve, shared curve.Point, info []byte, n int) ([]byte, error) {
	if shared.IsInfinity() {
		return nil, fmt.Errorf("derive key: shared point is the point at infinity")
	}
	ikm, err := c.Compress(shared)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memzero.Zero(ikm)

	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, info), out); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return out, nil
}
