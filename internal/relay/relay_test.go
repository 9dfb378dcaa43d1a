package relay_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spdhec/internal/curve"
	"spdhec/internal/domain"
	"spdhec/internal/relay"
)

func newRelay(t *testing.T) *relay.HTTP {
	t.Helper()
	srv := httptest.NewServer(relay.NewServer().Handler())
	t.Cleanup(srv.Close)
	return relay.NewHTTP(srv.URL+"/", srv.Client())
}

func toyParams() domain.SessionParams {
	return domain.SessionParams{
		CurveIndex: 0,
		Curve: curve.Params{
			A: big.NewInt(34), B: big.NewInt(6), P: big.NewInt(47), Order: big.NewInt(41),
		},
		Generator: curve.NewPoint(big.NewInt(0), big.NewInt(10)),
	}
}

func compressed(t *testing.T, x, y int64) string {
	t.Helper()
	c, err := curve.New(big.NewInt(34), big.NewInt(6), big.NewInt(47))
	require.NoError(t, err)
	b, err := c.Compress(curve.NewPoint(big.NewInt(x), big.NewInt(y)))
	require.NoError(t, err)
	return hex.EncodeToString(b)
}

func TestParams_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newRelay(t)

	_, err := c.FetchParams(ctx, "s1")
	assert.ErrorIs(t, err, relay.ErrNotFound)

	require.NoError(t, c.PublishParams(ctx, "s1", toyParams()))
	got, err := c.FetchParams(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, toyParams().Curve.String(), got.Curve.String())
	assert.True(t, toyParams().Generator.Equal(got.Generator))

	err = c.PublishParams(ctx, "s1", toyParams())
	assert.ErrorIs(t, err, relay.ErrConflict)
}

func TestParams_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	c := newRelay(t)

	bad := toyParams()
	bad.Curve.Order = big.NewInt(42)
	assert.Error(t, c.PublishParams(ctx, "s1", bad))

	bad = toyParams()
	bad.Generator = curve.NewPoint(big.NewInt(1), big.NewInt(1))
	assert.Error(t, c.PublishParams(ctx, "s1", bad))

	_, err := c.FetchParams(ctx, "s1")
	assert.ErrorIs(t, err, relay.ErrNotFound)
}

func TestKeys_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newRelay(t)

	alice := domain.PublishedKey{Party: domain.Alice, Point: compressed(t, 27, 16)}
	assert.ErrorIs(t, c.PublishKey(ctx, "s1", alice), relay.ErrNotFound, "no session yet")

	require.NoError(t, c.PublishParams(ctx, "s1", toyParams()))
	require.NoError(t, c.PublishKey(ctx, "s1", alice))

	_, err := c.FetchKey(ctx, "s1", domain.Bob)
	assert.ErrorIs(t, err, relay.ErrNotFound)

	got, err := c.FetchKey(ctx, "s1", domain.Alice)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	assert.ErrorIs(t, c.PublishKey(ctx, "s1", alice), relay.ErrConflict)
}

func TestKeys_RejectsBadPoints(t *testing.T) {
	ctx := context.Background()
	c := newRelay(t)
	require.NoError(t, c.PublishParams(ctx, "s1", toyParams()))

	for name, point := range map[string]string{
		"not hex":       "zz",
		"infinity":      "00",
		"out of range":  "022f", // x = 47
		"non-residue x": "0201",
	} {
		t.Run(name, func(t *testing.T) {
			err := c.PublishKey(ctx, "s1", domain.PublishedKey{Party: domain.Bob, Point: point})
			assert.Error(t, err)
			assert.NotErrorIs(t, err, relay.ErrConflict)
		})
	}

	_, err := c.FetchKey(ctx, "s1", domain.Bob)
	assert.ErrorIs(t, err, relay.ErrNotFound)
}

func TestFetch_HonoursContext(t *testing.T) {
	c := newRelay(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchParams(ctx, "s1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(relay.NewServer().Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + relay.PingEndpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorBody(t *testing.T) {
	srv := httptest.NewServer(relay.NewServer().Handler())
	defer srv.Close()

	resp, err := srv.Client().Post(srv.URL+"/session/s1/params", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, relay.ErrMalformedBody.Code, body.Code)
	assert.Contains(t, body.Error, "malformed JSON body")
}
