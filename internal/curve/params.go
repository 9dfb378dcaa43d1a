package curve

import (
	"fmt"
	"math/big"

	"spdhec/internal/field"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// Params are the coefficients, modulus and group order of a curve.
type Params struct {
	A     *big.Int `json:"a"`
	B     *big.Int `json:"b"`
	P     *big.Int `json:"p"`
	Order *big.Int `json:"order"`
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	return Params{
		A:     cloneInt(p.A),
		B:     cloneInt(p.B),
		P:     cloneInt(p.P),
		Order: cloneInt(p.Order),
	}
}

func (p Params) String() string {
	return fmt.Sprintf("y^2 = x^3 + %sx + %s mod %s (order %s)", p.A, p.B, p.P, p.Order)
}

// Discriminant returns 4a³ + 27b² mod p.
func Discriminant(a, b, p *big.Int) *big.Int {
	d := new(big.Int).Mul(four, field.Exp(a, three, p))
	d.Add(d, new(big.Int).Mul(big.NewInt(27), field.Exp(b, two, p)))
	return field.Reduce(d, p)
}

// CountOrder counts the points of y² = x³ + ax + b over F_p, including the
// point at infinity. It walks every x in [0, p), so it is only usable for
// small moduli.
func CountOrder(a, b, p *big.Int) *big.Int {
	count := big.NewInt(1)
	for x := new(big.Int); x.Cmp(p) < 0; x.Add(x, one) {
		w := weierstrass(x, a, b, p)
		switch {
		case w.Sign() == 0:
			count.Add(count, one)
		case field.IsQuadraticResidue(w, p):
			count.Add(count, two)
		}
	}
	return count
}

// weierstrass evaluates x³ + ax + b mod p.
func weierstrass(x, a, b, p *big.Int) *big.Int {
	w := new(big.Int).Mul(x, x)
	w.Mul(w, x)
	w.Add(w, new(big.Int).Mul(a, x))
	w.Add(w, b)
	return field.Reduce(w, p)
}

// validate checks the modulus and the discriminant.
func validate(a, b, p *big.Int) error {
	if p.Cmp(three) <= 0 || !field.IsPrime(p) {
		return fmt.Errorf("%w: %s", ErrInvalidModulus, p)
	}
	if Discriminant(a, b, p).Sign() == 0 {
		return fmt.Errorf("%w: 4a^3 + 27b^2 = 0 mod %s", ErrSingularCurve, p)
	}
	return nil
}

// withinHasse reports whether |order - (p + 1)| <= 2√p.
func withinHasse(order, p *big.Int) bool {
	t := new(big.Int).Add(p, one)
	t.Sub(order, t)
	t.Mul(t, t)
	return t.Cmp(new(big.Int).Mul(four, p)) <= 0
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
