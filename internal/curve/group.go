package curve

import (
	"fmt"
	"math/big"

	"spdhec/internal/field"
)

// IsOnCurve reports whether p satisfies the curve equation with coordinates
// in [0, p). The point at infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) (bool, error) {
	if err := c.ready(); err != nil {
		return false, err
	}
	return c.onCurve(p), nil
}

func (c *Curve) onCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	if p.x.Sign() < 0 || p.x.Cmp(c.p) >= 0 || p.y.Sign() < 0 || p.y.Cmp(c.p) >= 0 {
		return false
	}
	lhs := field.Reduce(new(big.Int).Mul(p.y, p.y), c.p)
	return lhs.Cmp(c.rhs(p.x)) == 0
}

// Negate returns -p = (x, p - y).
func (c *Curve) Negate(p Point) (Point, error) {
	if err := c.ready(); err != nil {
		return Point{}, err
	}
	return c.negate(p), nil
}

func (c *Curve) negate(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return Point{x: p.x, y: field.Reduce(new(big.Int).Sub(c.p, p.y), c.p)}
}

// Add returns p + q.
func (c *Curve) Add(p, q Point) (Point, error) {
	if err := c.ready(); err != nil {
		return Point{}, err
	}
	return c.add(p, q), nil
}

// Double returns 2p. A point with y = 0 has a vertical tangent and doubles to
// infinity.
func (c *Curve) Double(p Point) (Point, error) {
	if err := c.ready(); err != nil {
		return Point{}, err
	}
	return c.double(p), nil
}

// ScalarMult returns n·p using left-to-right double-and-add. n = 0 yields the
// point at infinity; negative n is rejected.
func (c *Curve) ScalarMult(p Point, n *big.Int) (Point, error) {
	if err := c.ready(); err != nil {
		return Point{}, err
	}
	if n == nil || n.Sign() < 0 {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidScalar, n)
	}
	return c.scalarMult(p, n), nil
}

func (c *Curve) scalarMult(p Point, n *big.Int) Point {
	if n.Sign() == 0 || p.IsInfinity() {
		return Point{}
	}
	q := p
	for i := n.BitLen() - 2; i >= 0; i-- {
		q = c.double(q)
		if n.Bit(i) == 1 {
			q = c.add(q, p)
		}
	}
	return q
}

func (c *Curve) add(p, q Point) Point {
	switch {
	case p.IsInfinity():
		return q
	case q.IsInfinity():
		return p
	case c.isInverse(p, q):
		return Point{}
	case p.Equal(q):
		return c.double(p)
	}
	num := new(big.Int).Sub(q.y, p.y)
	den := field.Reduce(new(big.Int).Sub(q.x, p.x), c.p)
	m := num.Mul(num, c.mustInverse(den))
	return c.chord(p, q, field.Reduce(m, c.p))
}

func (c *Curve) double(p Point) Point {
	if p.IsInfinity() || p.y.Sign() == 0 {
		return Point{}
	}
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, three)
	num.Add(num, c.a)
	den := field.Reduce(new(big.Int).Mul(two, p.y), c.p)
	m := num.Mul(num, c.mustInverse(den))
	return c.chord(p, p, field.Reduce(m, c.p))
}

// chord finishes an addition given the slope m of the line through p and q.
func (c *Curve) chord(p, q Point, m *big.Int) Point {
	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, p.x)
	x3.Sub(x3, q.x)
	x3 = field.Reduce(x3, c.p)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, p.y)
	return Point{x: x3, y: field.Reduce(y3, c.p)}
}

func (c *Curve) isInverse(p, q Point) bool {
	if p.x.Cmp(q.x) != 0 {
		return false
	}
	neg := field.Reduce(new(big.Int).Sub(c.p, q.y), c.p)
	return p.y.Cmp(neg) == 0
}

func (c *Curve) mustInverse(v *big.Int) *big.Int {
	inv, err := field.Inverse(v, c.p)
	if err != nil {
		panic(fmt.Sprintf("curve: inverting %s mod %s: %v", v, c.p, err))
	}
	return inv
}

func (c *Curve) rhs(x *big.Int) *big.Int {
	return weierstrass(x, c.a, c.b, c.p)
}
