package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseScalar reads a decimal private key; an empty string means "random".
func parseScalar(name, s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	k, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("--%s: %q is not a decimal integer", name, s)
	}
	return k, nil
}
