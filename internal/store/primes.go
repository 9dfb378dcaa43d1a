package store

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/big"

	"spdhec/internal/domain"
	"spdhec/internal/field"
)

// PrimesFile is the safe-prime table's file name inside a tables directory.
const PrimesFile = "safe_primes.txt"

var ErrNoPrimes = errors.New("store: prime table is empty")

//go:embed defaults/safe_primes.txt
var defaultPrimes []byte

// PrimeFileStore is a read-only table of safe primes p = 2q + 1.
type PrimeFileStore struct {
	primes []*big.Int
}

// NewPrimeFileStore loads the table at path, or the embedded defaults when
// path is empty or does not exist.
func NewPrimeFileStore(path string) (*PrimeFileStore, error) {
	raw := defaultPrimes
	if path != "" {
		b, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("read prime table: %w", err)
		}
		if b != nil {
			raw = b
		}
	}
	primes, err := parsePrimes(raw)
	if err != nil {
		return nil, fmt.Errorf("load prime table %s: %w", describe(path), err)
	}
	if len(primes) == 0 {
		return nil, fmt.Errorf("load prime table %s: %w", describe(path), ErrNoPrimes)
	}
	return &PrimeFileStore{primes: primes}, nil
}

// Primes returns copies of the table entries in file order.
func (s *PrimeFileStore) Primes() []*big.Int {
	out := make([]*big.Int, len(s.primes))
	for i, p := range s.primes {
		out[i] = new(big.Int).Set(p)
	}
	return out
}

// Random returns a uniformly chosen entry.
func (s *PrimeFileStore) Random(r io.Reader) (*big.Int, error) {
	i, err := randomIndex(r, len(s.primes))
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(s.primes[i]), nil
}

func parsePrimes(b []byte) ([]*big.Int, error) {
	var out []*big.Int
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w := sc.Text()
		p, ok := new(big.Int).SetString(w, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", w)
		}
		if !isSafePrime(p) {
			return nil, fmt.Errorf("%s is not a safe prime", p)
		}
		out = append(out, p)
	}
	return out, sc.Err()
}

func isSafePrime(p *big.Int) bool {
	if p.Cmp(big.NewInt(5)) < 0 || !field.IsPrime(p) {
		return false
	}
	q := new(big.Int).Rsh(p, 1)
	return field.IsPrime(q)
}

var _ domain.PrimeSource = (*PrimeFileStore)(nil)
