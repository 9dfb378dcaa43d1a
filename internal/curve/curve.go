package curve

import (
	"errors"
	"fmt"
	"math/big"

	"spdhec/internal/field"
)

var (
	ErrInvalidModulus   = errors.New("curve: modulus is not a prime greater than 3")
	ErrSingularCurve    = errors.New("curve: singular curve")
	ErrCompositeOrder   = errors.New("curve: group order is not prime")
	ErrOrderMismatch    = errors.New("curve: group order does not match the curve")
	ErrIncompleteParams = errors.New("curve: incomplete parameters")
	ErrEngineNotReady   = errors.New("curve: engine not ready")
	ErrInvalidScalar    = errors.New("curve: invalid scalar")
)

type state uint8

const (
	stateUninitialized state = iota
	stateValidated
	stateReady
)

// Curve is a validated curve instance. Use New or FromParams; the zero value
// rejects every operation. A Ready Curve is read-only and safe for concurrent
// use.
type Curve struct {
	a, b, p, order *big.Int
	state          state
}

// Option adjusts FromParams.
type Option func(*options)

type options struct {
	verifyOrder bool
}

// VerifyOrder makes FromParams recount the points and compare the result with
// the tabulated order. Counting is O(p).
func VerifyOrder() Option {
	return func(o *options) { o.verifyOrder = true }
}

// New validates y² = x³ + ax + b over F_p, counts its points and returns a
// Ready curve when the count is prime.
func New(a, b, p *big.Int) (*Curve, error) {
	if a == nil || b == nil || p == nil {
		return nil, ErrIncompleteParams
	}
	c, err := newValidated(a, b, p)
	if err != nil {
		return nil, err
	}
	order := CountOrder(c.a, c.b, c.p)
	if !field.IsPrime(order) {
		return nil, fmt.Errorf("%w: %s", ErrCompositeOrder, order)
	}
	c.order = order
	c.state = stateReady
	return c, nil
}

// FromParams builds a Ready curve from a tabulated parameter set. The order
// must be prime and lie in the Hasse interval; with VerifyOrder it must also
// equal the counted order.
func FromParams(params Params, opts ...Option) (*Curve, error) {
	if params.A == nil || params.B == nil || params.P == nil || params.Order == nil {
		return nil, ErrIncompleteParams
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c, err := newValidated(params.A, params.B, params.P)
	if err != nil {
		return nil, err
	}
	if !field.IsPrime(params.Order) {
		return nil, fmt.Errorf("%w: %s", ErrCompositeOrder, params.Order)
	}
	if !withinHasse(params.Order, c.p) {
		return nil, fmt.Errorf("%w: %s outside the Hasse interval", ErrOrderMismatch, params.Order)
	}
	if o.verifyOrder {
		if counted := CountOrder(c.a, c.b, c.p); counted.Cmp(params.Order) != 0 {
			return nil, fmt.Errorf("%w: tabulated %s, counted %s", ErrOrderMismatch, params.Order, counted)
		}
	}
	c.order = new(big.Int).Set(params.Order)
	c.state = stateReady
	return c, nil
}

func newValidated(a, b, p *big.Int) (*Curve, error) {
	if err := validate(a, b, p); err != nil {
		return nil, err
	}
	return &Curve{
		a:     field.Reduce(a, p),
		b:     field.Reduce(b, p),
		p:     new(big.Int).Set(p),
		state: stateValidated,
	}, nil
}

// Ready reports whether c accepts group operations.
func (c *Curve) Ready() bool { return c != nil && c.state == stateReady }

func (c *Curve) ready() error {
	if !c.Ready() {
		return ErrEngineNotReady
	}
	return nil
}

// Params returns a copy of the curve parameters.
func (c *Curve) Params() (Params, error) {
	if err := c.ready(); err != nil {
		return Params{}, err
	}
	return Params{A: c.a, B: c.b, P: c.p, Order: c.order}.Clone(), nil
}

// Order returns a copy of the group order.
func (c *Curve) Order() (*big.Int, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return new(big.Int).Set(c.order), nil
}

// Modulus returns a copy of p.
func (c *Curve) Modulus() (*big.Int, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return new(big.Int).Set(c.p), nil
}

func (c *Curve) String() string {
	if !c.Ready() {
		return "curve(not ready)"
	}
	return Params{A: c.a, B: c.b, P: c.p, Order: c.order}.String()
}
