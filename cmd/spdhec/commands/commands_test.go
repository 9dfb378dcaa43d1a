package commands

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spdhec/internal/app"
	"spdhec/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var seed [32]byte
	root := newRootCmd(app.Config{Rand: rand.NewChaCha8(seed)})
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExchangeCmd_KnownKeys(t *testing.T) {
	out, err := run(t, "exchange", "--curve-index", "0", "--alice-key", "3", "--bob-key", "5", "--check-all")
	require.NoError(t, err)

	assert.Contains(t, out, "Curve 0: y^2 = x^3 + 34x + 6 mod 47 (order 41)")
	assert.Contains(t, out, "Consistent private-key pairs: 1")
	assert.Contains(t, out, "alice=3 bob=5")
}

func TestExchangeCmd_JSON(t *testing.T) {
	out, err := run(t, "exchange", "--curve-index", "2", "--json", "--derive-key")
	require.NoError(t, err)

	var res domain.ExchangeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.CurveIndex)
	assert.True(t, res.Alice.Shared.Equal(res.Bob.Shared))
	assert.Len(t, res.Key, 64)
}

func TestExchangeCmd_BadKey(t *testing.T) {
	_, err := run(t, "exchange", "--curve-index", "0", "--alice-key", "three")
	assert.ErrorContains(t, err, "alice-key")

	_, err = run(t, "exchange", "--curve-index", "0", "--alice-key", "41")
	assert.Error(t, err)
}

func TestCurvesCmd(t *testing.T) {
	out, err := run(t, "curves")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 15)
}

func TestPointsCmd(t *testing.T) {
	out, err := run(t, "points", "0", "--verify-order")
	require.NoError(t, err)
	assert.Contains(t, out, "(0, 10)")
	assert.Contains(t, out, "40 affine points + infinity")

	_, err = run(t, "points", "14", "--limit", "100")
	assert.Error(t, err)
}

func TestGenerateCmd_Append(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "--tables", dir, "generate", "--append")
	require.NoError(t, err)
	assert.Contains(t, out, "appended as curve 15")

	b, err := os.ReadFile(filepath.Join(dir, "curves.txt"))
	require.NoError(t, err)
	assert.Equal(t, 17, strings.Count(string(b), "\n"), "header plus 16 rows")
}

func TestPartyCmd_RequiresSession(t *testing.T) {
	_, err := run(t, "party", "alice")
	assert.Error(t, err)

	_, err = run(t, "party", "bob", "--session", "x", "--curve-index", "1")
	assert.ErrorContains(t, err, "chosen by alice")
}
