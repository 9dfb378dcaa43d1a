package field_test

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spdhec/internal/field"
)

// seeded returns a deterministic randomness source for tests.
func seeded(seed byte) *rand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return rand.NewChaCha8(s)
}

func TestReduce_NegativeInput(t *testing.T) {
	p := big.NewInt(47)
	assert.Equal(t, int64(45), field.Reduce(big.NewInt(-2), p).Int64())
	assert.Equal(t, int64(0), field.Reduce(big.NewInt(-47), p).Int64())
	assert.Equal(t, int64(3), field.Reduce(big.NewInt(50), p).Int64())
}

func TestExp_MatchesBigExp(t *testing.T) {
	cases := []struct{ base, exp, mod int64 }{
		{2, 10, 1000},
		{3, 0, 7},
		{0, 5, 13},
		{-4, 3, 11},
		{123456, 654321, 1000003},
		{5, 1, 1},
	}
	for _, c := range cases {
		want := new(big.Int).Exp(
			new(big.Int).Mod(big.NewInt(c.base), big.NewInt(c.mod)),
			big.NewInt(c.exp),
			big.NewInt(c.mod),
		)
		got := field.Exp(big.NewInt(c.base), big.NewInt(c.exp), big.NewInt(c.mod))
		assert.Equal(t, 0, want.Cmp(got), "%d^%d mod %d", c.base, c.exp, c.mod)
	}
}

func TestExp_NegativeExponentPanics(t *testing.T) {
	assert.Panics(t, func() {
		field.Exp(big.NewInt(2), big.NewInt(-1), big.NewInt(7))
	})
}

func TestExtendedGCD_Bezout(t *testing.T) {
	a, b := big.NewInt(240), big.NewInt(46)
	d, s, u := field.ExtendedGCD(a, b)
	require.Equal(t, int64(2), d.Int64())

	lhs := new(big.Int).Mul(a, s)
	lhs.Add(lhs, new(big.Int).Mul(b, u))
	assert.Equal(t, 0, lhs.Cmp(d))
}

func TestInverse_RoundTrip(t *testing.T) {
	n := big.NewInt(985463)
	for _, v := range []int64{1, 2, 3, 1000, 985462, -5} {
		a := big.NewInt(v)
		inv, err := field.Inverse(a, n)
		require.NoError(t, err)

		prod := new(big.Int).Mul(a, inv)
		assert.Equal(t, int64(1), field.Reduce(prod, n).Int64(), "a=%d", v)
	}
}

func TestInverse_NoInverse(t *testing.T) {
	_, err := field.Inverse(big.NewInt(6), big.NewInt(9))
	assert.ErrorIs(t, err, field.ErrNoInverse)

	_, err = field.Inverse(big.NewInt(0), big.NewInt(47))
	assert.ErrorIs(t, err, field.ErrNoInverse)
}

func TestIsQuadraticResidue(t *testing.T) {
	p := big.NewInt(47)
	squares := map[int64]bool{}
	for y := int64(1); y < 47; y++ {
		squares[y*y%47] = true
	}
	for x := int64(1); x < 47; x++ {
		assert.Equal(t, squares[x], field.IsQuadraticResidue(big.NewInt(x), p), "x=%d", x)
	}
	assert.False(t, field.IsQuadraticResidue(big.NewInt(0), p))
}

func TestSqrt_RoundTrip(t *testing.T) {
	rng := seeded(1)
	for _, v := range []int64{47, 1319, 985463} {
		p := big.NewInt(v)
		for i := 0; i < 20; i++ {
			a, err := field.RandomResidue(rng, p)
			require.NoError(t, err)

			r, err := field.Sqrt(a, p)
			require.NoError(t, err)

			sq := new(big.Int).Mul(r, r)
			assert.Equal(t, 0, field.Reduce(sq, p).Cmp(a), "p=%d a=%s", v, a)
		}
	}
}

func TestSqrt_UnsupportedModulus(t *testing.T) {
	_, err := field.Sqrt(big.NewInt(4), big.NewInt(13))
	assert.ErrorIs(t, err, field.ErrUnsupportedModulus)
}

func TestRandomNonResidue(t *testing.T) {
	p := big.NewInt(1319)
	x, err := field.RandomNonResidue(seeded(2), p)
	require.NoError(t, err)
	assert.False(t, field.IsQuadraticResidue(x, p))
	assert.Positive(t, x.Sign())
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 41, 97, 101, 103, 10007, 986533, 1000003, 2147483647}
	for _, v := range primes {
		assert.True(t, field.IsPrime(big.NewInt(v)), "%d", v)
	}
	composites := []int64{-7, 0, 1, 4, 6, 100, 10201, 1018081, 999999999}
	for _, v := range composites {
		assert.False(t, field.IsPrime(big.NewInt(v)), "%d", v)
	}
}

func TestIsPrime_LargeFallsBackToMillerRabin(t *testing.T) {
	// secp256k1 group order.
	n, ok := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	require.True(t, ok)
	assert.True(t, field.IsPrime(n))
	assert.False(t, field.IsPrime(new(big.Int).Add(n, big.NewInt(2))))
}
