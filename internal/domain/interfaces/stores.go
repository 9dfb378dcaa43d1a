package interfaces

import (
	"io"
	"math/big"

	"spdhec/internal/curve"
)

// CurveSource is an ordered table of validated curve parameters.
type CurveSource interface {
	Len() int
	Curve(index int) (curve.Params, error)
	// Random picks a uniformly random row and returns its index too.
	Random(r io.Reader) (int, curve.Params, error)
}

// CurveTable is a CurveSource that can grow.
type CurveTable interface {
	CurveSource
	Append(params curve.Params) (int, error)
}

// PrimeSource is the safe-prime table used to seed curve generation.
type PrimeSource interface {
	Primes() []*big.Int
	Random(r io.Reader) (*big.Int, error)
}

// CurveEngines hands out Ready engines for the rows of a CurveSource.
type CurveEngines interface {
	CurveSource
	Engine(index int) (*curve.Curve, error)
	RandomEngine(r io.Reader) (int, *curve.Curve, error)
}
