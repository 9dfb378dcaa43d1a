package store

import (
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"

	"spdhec/internal/curve"
	"spdhec/internal/domain"
)

// DefaultEngineCacheSize is the number of Ready engines kept by NewEngineCache
// when size is not positive.
const DefaultEngineCacheSize = 64

// EngineCache hands out Ready curve engines for the rows of a CurveSource,
// keeping the most recently used ones. Rows are append-only, so an index
// always names the same curve.
type EngineCache struct {
	domain.CurveSource
	cache  *lru.Cache[int, *curve.Curve]
	verify bool
}

// NewEngineCache wraps src. With verify set, each engine recounts its order
// once (O(p)) before it is cached.
func NewEngineCache(src domain.CurveSource, size int, verify bool) (*EngineCache, error) {
	if size <= 0 {
		size = DefaultEngineCacheSize
	}
	cache, err := lru.New[int, *curve.Curve](size)
	if err != nil {
		return nil, err
	}
	return &EngineCache{CurveSource: src, cache: cache, verify: verify}, nil
}

// Engine returns the Ready engine for row index.
func (e *EngineCache) Engine(index int) (*curve.Curve, error) {
	if c, ok := e.cache.Get(index); ok {
		return c, nil
	}
	params, err := e.Curve(index)
	if err != nil {
		return nil, err
	}
	var opts []curve.Option
	if e.verify {
		opts = append(opts, curve.VerifyOrder())
	}
	c, err := curve.FromParams(params, opts...)
	if err != nil {
		return nil, fmt.Errorf("curve %d: %w", index, err)
	}
	e.cache.Add(index, c)
	return c, nil
}

// RandomEngine picks a uniformly random row and returns its index and engine.
func (e *EngineCache) RandomEngine(r io.Reader) (int, *curve.Curve, error) {
	i, _, err := e.Random(r)
	if err != nil {
		return 0, nil, err
	}
	c, err := e.Engine(i)
	return i, c, err
}

var _ domain.CurveEngines = (*EngineCache)(nil)
