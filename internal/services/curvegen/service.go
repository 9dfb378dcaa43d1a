package curvegen

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"spdhec/internal/curve"
	"spdhec/internal/domain"
	"spdhec/internal/log"
)

// DefaultMaxCoefficient bounds A and B unless overridden.
const DefaultMaxCoefficient = 9_000_000

var ErrExhausted = errors.New("curvegen: no prime-order curve found within the attempt limit")

type Option func(*Service)

// MaxCoefficient sets the upper bound for A and B.
func MaxCoefficient(n int64) Option {
	return func(s *Service) { s.maxCoefficient = big.NewInt(n) }
}

// MaxAttempts stops the search after n candidate curves. Zero means no limit.
func MaxAttempts(n int) Option {
	return func(s *Service) { s.maxAttempts = n }
}

// Service generates curves over the primes of a PrimeSource.
type Service struct {
	primes         domain.PrimeSource
	rand           io.Reader
	maxCoefficient *big.Int
	maxAttempts    int
}

// New constructs a curve generator drawing from rand.
func New(primes domain.PrimeSource, rand io.Reader, opts ...Option) *Service {
	s := &Service{
		primes:         primes,
		rand:           rand,
		maxCoefficient: big.NewInt(DefaultMaxCoefficient),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns the parameters of the first valid curve it finds.
func (s *Service) Generate(ctx context.Context) (curve.Params, error) {
	for attempt := 1; s.maxAttempts == 0 || attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return curve.Params{}, err
		}
		p, err := s.primes.Random(s.rand)
		if err != nil {
			return curve.Params{}, err
		}
		a, err := s.coefficient()
		if err != nil {
			return curve.Params{}, err
		}
		b, err := s.coefficient()
		if err != nil {
			return curve.Params{}, err
		}

		c, err := curve.New(a, b, p)
		switch {
		case errors.Is(err, curve.ErrSingularCurve), errors.Is(err, curve.ErrCompositeOrder):
			log.Debugw("curve rejected", "attempt", attempt, "a", a.String(), "b", b.String(), "p", p.String(), "reason", err.Error())
			continue
		case err != nil:
			return curve.Params{}, fmt.Errorf("attempt %d: %w", attempt, err)
		}

		params, err := c.Params()
		if err != nil {
			return curve.Params{}, err
		}
		log.Infow("curve found", "attempt", attempt, "curve", params.String())
		return params, nil
	}
	return curve.Params{}, fmt.Errorf("%w (%d attempts)", ErrExhausted, s.maxAttempts)
}

// coefficient draws uniformly from [1, maxCoefficient].
func (s *Service) coefficient() (*big.Int, error) {
	v, err := rand.Int(s.rand, s.maxCoefficient)
	if err != nil {
		return nil, err
	}
	return v.Add(v, big.NewInt(1)), nil
}

// Compile-time assertion that Service implements domain.CurveGenService.
var _ domain.CurveGenService = (*Service)(nil)
