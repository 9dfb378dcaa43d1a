package curve

import (
	"errors"
	"math/big"

	"spdhec/internal/field"
)

// ErrTooManyPoints is returned by Points when the curve has more affine
// points than the caller allowed.
var ErrTooManyPoints = errors.New("curve: too many points to enumerate")

// Points lists every affine point in order of x, the two roots of each x
// together. The point at infinity is not included. limit <= 0 disables the
// bound.
func (c *Curve) Points(limit int) ([]Point, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if limit > 0 && c.order.Cmp(big.NewInt(int64(limit)+1)) > 0 {
		return nil, ErrTooManyPoints
	}

	var out []Point
	for x := new(big.Int); x.Cmp(c.p) < 0; x.Add(x, one) {
		w := c.rhs(x)
		if w.Sign() == 0 {
			out = append(out, NewPoint(x, w))
			continue
		}
		if !field.IsQuadraticResidue(w, c.p) {
			continue
		}
		root, err := field.Sqrt(w, c.p)
		if err != nil {
			return nil, err
		}
		out = append(out,
			NewPoint(x, root),
			NewPoint(x, field.Reduce(new(big.Int).Sub(c.p, root), c.p)),
		)
	}
	return out, nil
}
