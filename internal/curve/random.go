package curve

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"spdhec/internal/field"
)

// RandomPoint samples x uniformly until x³ + Ax + B is zero or a quadratic
// residue, then returns one of the (up to two) points above x with equal
// probability. It needs p ≡ 3 (mod 4) for the square root.
func (c *Curve) RandomPoint(r io.Reader) (Point, error) {
	if err := c.ready(); err != nil {
		return Point{}, err
	}
	for {
		x, err := rand.Int(r, c.p)
		if err != nil {
			return Point{}, fmt.Errorf("sampling x: %w", err)
		}
		w := c.rhs(x)
		if w.Sign() == 0 {
			return Point{x: x, y: new(big.Int)}, nil
		}
		if !field.IsQuadraticResidue(w, c.p) {
			continue
		}
		root, err := field.Sqrt(w, c.p)
		if err != nil {
			return Point{}, err
		}
		pick, err := rand.Int(r, two)
		if err != nil {
			return Point{}, fmt.Errorf("choosing root: %w", err)
		}
		if pick.Sign() == 1 {
			root = field.Reduce(new(big.Int).Sub(c.p, root), c.p)
		}
		return Point{x: x, y: root}, nil
	}
}
