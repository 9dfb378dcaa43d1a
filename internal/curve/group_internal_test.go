package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ready curves have prime order, so they never carry a point of order two.
// The vertical-tangent branch is exercised on y² = x³ + 1 over F_5 (order 6)
// by forcing the state.
func TestDouble_VerticalTangent(t *testing.T) {
	c := &Curve{a: big.NewInt(0), b: big.NewInt(1), p: big.NewInt(5), order: big.NewInt(6), state: stateReady}
	p := NewPoint(big.NewInt(4), big.NewInt(0))
	require.True(t, c.onCurve(p))

	d, err := c.Double(p)
	require.NoError(t, err)
	assert.True(t, d.IsInfinity())

	s, err := c.Add(p, p)
	require.NoError(t, err)
	assert.True(t, s.IsInfinity())

	p3, err := c.ScalarMult(p, big.NewInt(3))
	require.NoError(t, err)
	assert.True(t, p3.Equal(p))
}

func TestValidatedState_NotReady(t *testing.T) {
	c, err := newValidated(big.NewInt(34), big.NewInt(6), big.NewInt(47))
	require.NoError(t, err)
	assert.Equal(t, stateValidated, c.state)

	_, err = c.Add(Infinity(), Infinity())
	assert.ErrorIs(t, err, ErrEngineNotReady)
}

func TestMustInverse_PanicsOnZero(t *testing.T) {
	c := &Curve{a: big.NewInt(34), b: big.NewInt(6), p: big.NewInt(47), order: big.NewInt(41), state: stateReady}
	assert.Panics(t, func() { c.mustInverse(big.NewInt(0)) })
}

func TestWithinHasse(t *testing.T) {
	p := big.NewInt(47)
	assert.True(t, withinHasse(big.NewInt(41), p))
	assert.True(t, withinHasse(big.NewInt(61), p))
	assert.False(t, withinHasse(big.NewInt(62), p))
	assert.False(t, withinHasse(big.NewInt(34), p))
}
