package field

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned by Inverse when gcd(a, n) != 1.
var ErrNoInverse = errors.New("field: element has no inverse")

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Reduce returns a mod p normalised into [0, p).
func Reduce(a, p *big.Int) *big.Int {
	r := new(big.Int).Mod(a, p)
	if r.Sign() < 0 {
		r.Add(r, p)
	}
	return r
}

// Exp computes base^exponent mod modulus by square-and-multiply, scanning the
// exponent from its least significant bit. It panics on a negative exponent.
func Exp(base, exponent, modulus *big.Int) *big.Int {
	if exponent.Sign() < 0 {
		panic("field: negative exponent")
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int)
	}
	result := big.NewInt(1)
	b := Reduce(base, modulus)
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return result
}

// ExtendedGCD returns d = gcd(a, b) together with Bézout coefficients s, t
// such that a·s + b·t = d. a and b must be non-negative.
func ExtendedGCD(a, b *big.Int) (d, s, t *big.Int) {
	r1, r2 := new(big.Int).Set(a), new(big.Int).Set(b)
	s1, s2 := big.NewInt(1), big.NewInt(0)
	t1, t2 := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	for r2.Sign() > 0 {
		q.Quo(r1, r2)

		r := new(big.Int).Mul(q, r2)
		r1, r2 = r2, r.Sub(r1, r)

		sn := new(big.Int).Mul(q, s2)
		s1, s2 = s2, sn.Sub(s1, sn)

		tn := new(big.Int).Mul(q, t2)
		t1, t2 = t2, tn.Sub(t1, tn)
	}
	return r1, s1, t1
}

// Inverse returns the S in [0, n) with a·S ≡ 1 (mod n).
func Inverse(a, n *big.Int) (*big.Int, error) {
	d, s, _ := ExtendedGCD(Reduce(a, n), n)
	if d.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return Reduce(s, n), nil
}
