package field

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrUnsupportedModulus is returned by Sqrt when p is not congruent to 3 mod 4.
var ErrUnsupportedModulus = errors.New("field: square root needs p ≡ 3 (mod 4)")

var (
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// IsQuadraticResidue reports whether x^((p-1)/2) ≡ 1 (mod p). Zero is not a
// residue under this test.
func IsQuadraticResidue(x, p *big.Int) bool {
	e := new(big.Int).Sub(p, one)
	e.Rsh(e, 1)
	return Exp(x, e, p).Cmp(one) == 0
}

// Sqrt returns a^((p+1)/4) mod p. The result is a square root of a only when
// a is a quadratic residue; callers check that first.
func Sqrt(a, p *big.Int) (*big.Int, error) {
	if new(big.Int).Mod(p, four).Cmp(three) != 0 {
		return nil, ErrUnsupportedModulus
	}
	e := new(big.Int).Add(p, one)
	e.Rsh(e, 2)
	return Exp(a, e, p), nil
}

// RandomResidue draws uniformly from [1, p) until it hits a quadratic residue.
func RandomResidue(r io.Reader, p *big.Int) (*big.Int, error) {
	return randomWhere(r, p, true)
}

// RandomNonResidue draws uniformly from [1, p) until it hits a non-residue.
func RandomNonResidue(r io.Reader, p *big.Int) (*big.Int, error) {
	return randomWhere(r, p, false)
}

func randomWhere(r io.Reader, p *big.Int, residue bool) (*big.Int, error) {
	bound := new(big.Int).Sub(p, one)
	for {
		x, err := rand.Int(r, bound)
		if err != nil {
			return nil, err
		}
		x.Add(x, one)
		if IsQuadraticResidue(x, p) == residue {
			return x, nil
		}
	}
}
