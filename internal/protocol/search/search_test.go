package search_test

import (
	"context"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spdhec/internal/curve"
	"spdhec/internal/protocol/ecdh"
	"spdhec/internal/protocol/search"
)

func toy(t *testing.T) (*curve.Curve, curve.Point) {
	t.Helper()
	c, err := curve.New(big.NewInt(34), big.NewInt(6), big.NewInt(47))
	require.NoError(t, err)
	return c, curve.NewPoint(big.NewInt(0), big.NewInt(10))
}

func seeded(seed byte) *rand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return rand.NewChaCha8(s)
}

func targetOf(tr ecdh.Transcript) search.Target {
	return search.Target{
		Generator:   tr.Generator,
		AlicePublic: tr.Alice.Public,
		BobPublic:   tr.Bob.Public,
		Secret:      tr.Secret,
	}
}

func TestCheck(t *testing.T) {
	c, g := toy(t)
	tr, err := ecdh.Exchange(c, g, seeded(1), ecdh.Keys{Alice: big.NewInt(3), Bob: big.NewInt(5)})
	require.NoError(t, err)
	target := targetOf(tr)

	ok, err := search.Check(c, target, big.NewInt(3), big.NewInt(5))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = search.Check(c, target, big.NewInt(5), big.NewInt(3))
	require.NoError(t, err)
	assert.False(t, ok)

	target.Secret = big.NewInt(4)
	ok, err = search.Check(c, target, big.NewInt(3), big.NewInt(5))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun_KnownExchange(t *testing.T) {
	c, g := toy(t)
	tr, err := ecdh.Exchange(c, g, seeded(1), ecdh.Keys{Alice: big.NewInt(3), Bob: big.NewInt(5)})
	require.NoError(t, err)

	got, err := search.Run(context.Background(), c, targetOf(tr), search.Workers(4))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].Alice.Int64())
	assert.Equal(t, int64(5), got[0].Bob.Int64())
}

func TestRun_FindsRandomPair(t *testing.T) {
	c, _ := toy(t)
	r := seeded(9)

	for i := 0; i < 5; i++ {
		g, err := ecdh.RandomGenerator(c, r)
		require.NoError(t, err)
		tr, err := ecdh.Exchange(c, g, r, ecdh.Keys{})
		require.NoError(t, err)

		got, err := search.Run(context.Background(), c, targetOf(tr), search.Workers(3))
		require.NoError(t, err)

		var hit bool
		for _, cand := range got {
			if cand.Alice.Cmp(tr.Alice.Private) == 0 && cand.Bob.Cmp(tr.Bob.Private) == 0 {
				hit = true
			}
		}
		assert.True(t, hit, "true pair (%s, %s) missing from %v", tr.Alice.Private, tr.Bob.Private, got)
	}
}

func TestRun_MatchesPairwiseCheck(t *testing.T) {
	c, g := toy(t)
	tr, err := ecdh.Exchange(c, g, seeded(2), ecdh.Keys{})
	require.NoError(t, err)
	target := targetOf(tr)

	var want []search.Candidate
	for a := int64(1); a < 41; a++ {
		for b := int64(1); b < 41; b++ {
			ok, err := search.Check(c, target, big.NewInt(a), big.NewInt(b))
			require.NoError(t, err)
			if ok {
				want = append(want, search.Candidate{Alice: big.NewInt(a), Bob: big.NewInt(b)})
			}
		}
	}

	got, err := search.Run(context.Background(), c, target, search.Workers(1))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRun_OrderLimit(t *testing.T) {
	c, g := toy(t)
	tr, err := ecdh.Exchange(c, g, seeded(1), ecdh.Keys{})
	require.NoError(t, err)

	_, err = search.Run(context.Background(), c, targetOf(tr), search.MaxOrder(40))
	assert.ErrorIs(t, err, search.ErrSearchTooLarge)
}

func TestRun_Cancelled(t *testing.T) {
	c, g := toy(t)
	tr, err := ecdh.Exchange(c, g, seeded(1), ecdh.Keys{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.Run(ctx, c, targetOf(tr))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_NotReady(t *testing.T) {
	var c curve.Curve
	_, err := search.Run(context.Background(), &c, search.Target{})
	assert.ErrorIs(t, err, curve.ErrEngineNotReady)
}
