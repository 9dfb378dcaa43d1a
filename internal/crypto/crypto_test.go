package crypto_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spdhec/internal/crypto"
	"spdhec/internal/curve"
)

func toy(t *testing.T) *curve.Curve {
	t.Helper()
	c, err := curve.New(big.NewInt(34), big.NewInt(6), big.NewInt(47))
	require.NoError(t, err)
	return c
}

func TestFingerprint(t *testing.T) {
	c := toy(t)
	a := curve.NewPoint(big.NewInt(27), big.NewInt(16))
	b := curve.NewPoint(big.NewInt(39), big.NewInt(16))

	fa, err := crypto.Fingerprint(c, a)
	require.NoError(t, err)
	assert.Len(t, fa, 20)

	again, err := crypto.Fingerprint(c, a.Clone())
	require.NoError(t, err)
	assert.Equal(t, fa, again)

	fb, err := crypto.Fingerprint(c, b)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)

	_, err = crypto.Fingerprint(c, curve.NewPoint(big.NewInt(1), big.NewInt(1)))
	assert.ErrorIs(t, err, curve.ErrNotOnCurve)
}

func TestDeriveKey_DistinguishesPointsWithSameY(t *testing.T) {
	c := toy(t)
	// Both points have y = 16, so the y-coordinate secret cannot tell them apart.
	a := curve.NewPoint(big.NewInt(27), big.NewInt(16))
	b := curve.NewPoint(big.NewInt(39), big.NewInt(16))

	ka, err := crypto.DeriveKey(c, a, []byte(crypto.KeyInfo), 32)
	require.NoError(t, err)
	require.Len(t, ka, 32)

	ka2, err := crypto.DeriveKey(c, a, []byte(crypto.KeyInfo), 32)
	require.NoError(t, err)
	assert.Equal(t, ka, ka2)

	kb, err := crypto.DeriveKey(c, b, []byte(crypto.KeyInfo), 32)
	require.NoError(t, err)
	assert.NotEqual(t, ka, kb)

	_, err = crypto.DeriveKey(c, curve.Infinity(), nil, 32)
	assert.Error(t, err)
}
