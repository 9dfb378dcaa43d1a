package store

import (
	"bufio"
	"bytes"
	"crypto/rand"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"path/filepath"
	"strings"
	"sync"

	"spdhec/internal/curve"
	"spdhec/internal/domain"
)

// CurvesFile is the curve table's file name inside a tables directory.
const CurvesFile = "curves.txt"

var (
	ErrNoCurves        = errors.New("store: curve table is empty")
	ErrIndexOutOfRange = errors.New("store: table index out of range")
)

//go:embed defaults/curves.txt
var defaultCurves []byte

// CurveFileStore is the curve table, loaded from disk or the embedded
// defaults. Every row has passed curve.FromParams.
type CurveFileStore struct {
	path string
	mu   sync.RWMutex
	rows []curve.Params
}

// NewCurveFileStore loads the table at path. An empty path uses the embedded
// defaults and makes the store read-only; a missing file starts from the
// defaults and is created on the first Append.
func NewCurveFileStore(path string) (*CurveFileStore, error) {
	raw := defaultCurves
	asJSON := false
	if path != "" {
		b, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("read curve table: %w", err)
		}
		if b != nil {
			raw = b
			asJSON = isJSON(path)
		}
	}

	var (
		rows []curve.Params
		err  error
	)
	if asJSON {
		rows, err = parseCurvesJSON(raw)
	} else {
		rows, err = parseCurves(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("load curve table %s: %w", describe(path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("load curve table %s: %w", describe(path), ErrNoCurves)
	}
	return &CurveFileStore{path: path, rows: rows}, nil
}

// DefaultCurves returns a store over the embedded table.
func DefaultCurves() *CurveFileStore {
	s, err := NewCurveFileStore("")
	if err != nil {
		panic(err)
	}
	return s
}

func (s *CurveFileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Curve returns a copy of row index.
func (s *CurveFileStore) Curve(index int) (curve.Params, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.rows) {
		return curve.Params{}, fmt.Errorf("%w: curve %d of %d", ErrIndexOutOfRange, index, len(s.rows))
	}
	return s.rows[index].Clone(), nil
}

// Random returns a uniformly chosen row and its index.
func (s *CurveFileStore) Random(r io.Reader) (int, curve.Params, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, err := randomIndex(r, len(s.rows))
	if err != nil {
		return 0, curve.Params{}, err
	}
	return i, s.rows[i].Clone(), nil
}

// All returns a copy of every row.
func (s *CurveFileStore) All() []curve.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]curve.Params, len(s.rows))
	for i, p := range s.rows {
		out[i] = p.Clone()
	}
	return out
}

// Append validates params, adds them to the table and rewrites the file. It
// returns the new row's index.
func (s *CurveFileStore) Append(params curve.Params) (int, error) {
	if s.path == "" {
		return 0, errors.New("store: embedded curve table is read-only")
	}
	if _, err := curve.FromParams(params); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := append(append([]curve.Params(nil), s.rows...), params.Clone())
	var err error
	if isJSON(s.path) {
		err = writeJSON(s.path, rows, 0o644)
	} else {
		err = writeFile(s.path, formatCurves(rows), 0o644)
	}
	if err != nil {
		return 0, fmt.Errorf("write curve table: %w", err)
	}
	s.rows = rows
	return len(rows) - 1, nil
}

func parseCurves(r io.Reader) ([]curve.Params, error) {
	var rows []curve.Params
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: want 4 fields (A B p order), got %d", n, len(fields))
		}
		var v [4]*big.Int
		for i, f := range fields {
			x, ok := new(big.Int).SetString(f, 10)
			if !ok {
				return nil, fmt.Errorf("line %d: %q is not an integer", n, f)
			}
			v[i] = x
		}
		params := curve.Params{A: v[0], B: v[1], P: v[2], Order: v[3]}
		if _, err := curve.FromParams(params); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		rows = append(rows, params)
	}
	return rows, sc.Err()
}

func parseCurvesJSON(b []byte) ([]curve.Params, error) {
	var rows []curve.Params
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, err
	}
	for i, params := range rows {
		if _, err := curve.FromParams(params); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return rows, nil
}

func formatCurves(rows []curve.Params) []byte {
	var buf bytes.Buffer
	buf.WriteString("# A B p order\n")
	for _, p := range rows {
		fmt.Fprintf(&buf, "%s %s %s %s\n", p.A, p.B, p.P, p.Order)
	}
	return buf.Bytes()
}

func randomIndex(r io.Reader, n int) (int, error) {
	if n == 0 {
		return 0, ErrNoCurves
	}
	i, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(i.Int64()), nil
}

func isJSON(path string) bool { return strings.EqualFold(filepath.Ext(path), ".json") }

func describe(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}

var _ domain.CurveTable = (*CurveFileStore)(nil)
