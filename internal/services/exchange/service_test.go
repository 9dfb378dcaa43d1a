package exchange_test

import (
	"context"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spdhec/internal/curve"
	"spdhec/internal/domain"
	"spdhec/internal/services/exchange"
	"spdhec/internal/store"
)

func seeded(seed byte) *rand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return rand.NewChaCha8(s)
}

func engines(t *testing.T) *store.EngineCache {
	t.Helper()
	e, err := store.NewEngineCache(store.DefaultCurves(), 0, false)
	require.NoError(t, err)
	return e
}

func intp(i int) *int { return &i }

func TestExchange_FixedCurveAndKeys(t *testing.T) {
	svc := exchange.New(engines(t), seeded(1), 2)

	res, err := svc.Exchange(context.Background(), domain.ExchangeRequest{
		CurveIndex: intp(0),
		AliceKey:   big.NewInt(3),
		BobKey:     big.NewInt(5),
		Search:     true,
		DeriveKey:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.CurveIndex)
	assert.Equal(t, int64(41), res.Curve.Order.Int64())
	assert.True(t, res.Alice.Shared.Equal(res.Bob.Shared))
	assert.Equal(t, res.Alice.Shared.Y(), res.Secret)
	assert.Equal(t, int64(3), res.Alice.Private.Int64(), "result keeps its own copy of the key")
	assert.Len(t, res.Alice.Fingerprint, 20)
	assert.Len(t, res.Key, 2*exchange.KeyLen)

	c, err := curve.FromParams(res.Curve)
	require.NoError(t, err)
	wantA, err := c.ScalarMult(res.Generator, big.NewInt(3))
	require.NoError(t, err)
	assert.True(t, wantA.Equal(res.Alice.Public))

	require.NotEmpty(t, res.Candidates)
	assert.Equal(t, int64(3), res.Candidates[0].Alice.Int64())
	assert.Equal(t, int64(5), res.Candidates[0].Bob.Int64())
}

func TestExchange_RandomCurve(t *testing.T) {
	svc := exchange.New(engines(t), seeded(5), 0)

	res, err := svc.Exchange(context.Background(), domain.ExchangeRequest{})
	require.NoError(t, err)
	assert.True(t, res.Alice.Shared.Equal(res.Bob.Shared))
	assert.Empty(t, res.Key)
	assert.Nil(t, res.Candidates)
}

func TestExchange_Errors(t *testing.T) {
	svc := exchange.New(engines(t), seeded(1), 1)
	ctx := context.Background()

	_, err := svc.Exchange(ctx, domain.ExchangeRequest{CurveIndex: intp(99)})
	assert.ErrorIs(t, err, store.ErrIndexOutOfRange)

	_, err = svc.Exchange(ctx, domain.ExchangeRequest{CurveIndex: intp(0), AliceKey: big.NewInt(41)})
	assert.ErrorIs(t, err, curve.ErrInvalidScalar)
}
