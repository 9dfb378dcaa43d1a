package search

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"spdhec/internal/curve"
)

// DefaultMaxOrder is the largest group order Run accepts unless overridden.
const DefaultMaxOrder = 65537

var ErrSearchTooLarge = errors.New("search: group order exceeds search limit")

// Target is the public material an observer of an exchange holds.
type Target struct {
	Generator   curve.Point
	AlicePublic curve.Point
	BobPublic   curve.Point
	Secret      *big.Int
}

// Candidate is one private-key pair consistent with a Target.
type Candidate struct {
	Alice *big.Int `json:"alice"`
	Bob   *big.Int `json:"bob"`
}

type options struct {
	workers  int
	maxOrder *big.Int
}

type Option func(*options)

// Workers sets the number of goroutines sharing the outer loop. Values below
// one are ignored.
func Workers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// MaxOrder overrides DefaultMaxOrder.
func MaxOrder(n int64) Option {
	return func(o *options) { o.maxOrder = big.NewInt(n) }
}

// Check reports whether (a, b) is consistent with t.
func Check(c *curve.Curve, t Target, a, b *big.Int) (bool, error) {
	aG, err := c.ScalarMult(t.Generator, a)
	if err != nil {
		return false, err
	}
	if !aG.Equal(t.AlicePublic) {
		return false, nil
	}
	bG, err := c.ScalarMult(t.Generator, b)
	if err != nil {
		return false, err
	}
	if !bG.Equal(t.BobPublic) {
		return false, nil
	}
	return sharesSecret(c, t, a, b)
}

func sharesSecret(c *curve.Curve, t Target, a, b *big.Int) (bool, error) {
	sa, err := c.ScalarMult(t.BobPublic, a)
	if err != nil {
		return false, err
	}
	sb, err := c.ScalarMult(t.AlicePublic, b)
	if err != nil {
		return false, err
	}
	return matchesY(sa, t.Secret) && matchesY(sb, t.Secret), nil
}

func matchesY(p curve.Point, y *big.Int) bool {
	return !p.IsInfinity() && y != nil && p.Y().Cmp(y) == 0
}

// Run checks every pair in [1, order-1]² and returns the consistent ones
// sorted by (Alice, Bob). The outer index is split across workers; a worker
// skips the inner loop for any a with a·G ≠ K_A.
func Run(ctx context.Context, c *curve.Curve, t Target, opts ...Option) ([]Candidate, error) {
	o := options{
		workers:  runtime.GOMAXPROCS(0),
		maxOrder: big.NewInt(DefaultMaxOrder),
	}
	for _, opt := range opts {
		opt(&o)
	}

	order, err := c.Order()
	if err != nil {
		return nil, err
	}
	if order.Cmp(o.maxOrder) > 0 {
		return nil, fmt.Errorf("%w: order %s > %s", ErrSearchTooLarge, order, o.maxOrder)
	}
	if t.Secret == nil {
		return nil, errors.New("search: target has no secret")
	}
	n := order.Int64()

	// b·G = K_B does not depend on a, so the inner candidates are shared.
	bobs, err := matching(ctx, c, t.Generator, t.BobPublic, n)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		found []Candidate
	)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < o.workers; w++ {
		g.Go(func() error {
			for i := int64(w) + 1; i < n; i += int64(o.workers) {
				if err := ctx.Err(); err != nil {
					return err
				}
				a := big.NewInt(i)
				aG, err := c.ScalarMult(t.Generator, a)
				if err != nil {
					return err
				}
				if !aG.Equal(t.AlicePublic) {
					continue
				}
				for _, b := range bobs {
					ok, err := sharesSecret(c, t, a, b)
					if err != nil {
						return err
					}
					if ok {
						mu.Lock()
						found = append(found, Candidate{Alice: a, Bob: new(big.Int).Set(b)})
						mu.Unlock()
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(found, func(x, y Candidate) int {
		if d := x.Alice.Cmp(y.Alice); d != 0 {
			return d
		}
		return x.Bob.Cmp(y.Bob)
	})
	return found, nil
}

func matching(ctx context.Context, c *curve.Curve, g, target curve.Point, n int64) ([]*big.Int, error) {
	var out []*big.Int
	for i := int64(1); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		k := big.NewInt(i)
		p, err := c.ScalarMult(g, k)
		if err != nil {
			return nil, err
		}
		if p.Equal(target) {
			out = append(out, k)
		}
	}
	return out, nil
}
