package exchange

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"spdhec/internal/crypto"
	"spdhec/internal/curve"
	"spdhec/internal/domain"
	"spdhec/internal/log"
	"spdhec/internal/protocol/ecdh"
	"spdhec/internal/protocol/search"
)

// KeyLen is the length of the optional HKDF output.
const KeyLen = 32

// Service runs local exchanges over a curve table.
type Service struct {
	curves  domain.CurveEngines
	rand    io.Reader
	workers int
}

// New constructs an exchange Service. workers bounds the search fan-out; zero
// lets the search pick.
func New(curves domain.CurveEngines, rand io.Reader, workers int) *Service {
	return &Service{curves: curves, rand: rand, workers: workers}
}

// Exchange runs one exchange.
//
// Steps:
//  1. Select the curve by index, or uniformly at random.
//  2. Take the row's engine from the cache and draw a generator.
//  3. Run the protocol with the requested or random private keys.
//  4. Optionally expand the shared point with HKDF and search for every
//     private-key pair consistent with the public values.
func (s *Service) Exchange(ctx context.Context, req domain.ExchangeRequest) (domain.ExchangeResult, error) {
	index, c, err := s.selectCurve(req.CurveIndex)
	if err != nil {
		return domain.ExchangeResult{}, err
	}
	params, err := c.Params()
	if err != nil {
		return domain.ExchangeResult{}, err
	}
	log.Debugw("curve selected", "index", index, "curve", params.String())

	g, err := ecdh.RandomGenerator(c, s.rand)
	if err != nil {
		return domain.ExchangeResult{}, err
	}
	log.Debugw("generator chosen", "generator", g.String())

	tr, err := ecdh.Exchange(c, g, s.rand, ecdh.Keys{Alice: req.AliceKey, Bob: req.BobKey})
	if err != nil {
		return domain.ExchangeResult{}, err
	}
	defer tr.Wipe()

	alice, err := view(c, tr.Alice)
	if err != nil {
		return domain.ExchangeResult{}, err
	}
	bob, err := view(c, tr.Bob)
	if err != nil {
		return domain.ExchangeResult{}, err
	}
	res := domain.ExchangeResult{
		CurveIndex: index,
		Curve:      params,
		Generator:  g,
		Alice:      alice,
		Bob:        bob,
		Secret:     tr.Secret,
	}
	log.Infow("exchange complete",
		"curve", index,
		"alice", alice.Fingerprint,
		"bob", bob.Fingerprint,
	)

	if req.DeriveKey {
		key, err := crypto.DeriveKey(c, tr.Alice.Shared, []byte(crypto.KeyInfo), KeyLen)
		if err != nil {
			return domain.ExchangeResult{}, err
		}
		res.Key = hex.EncodeToString(key)
	}

	if req.Search {
		target := search.Target{
			Generator:   g,
			AlicePublic: tr.Alice.Public,
			BobPublic:   tr.Bob.Public,
			Secret:      tr.Secret,
		}
		var opts []search.Option
		if s.workers > 0 {
			opts = append(opts, search.Workers(s.workers))
		}
		found, err := search.Run(ctx, c, target, opts...)
		if err != nil {
			return domain.ExchangeResult{}, fmt.Errorf("key search: %w", err)
		}
		log.Infow("key search complete", "candidates", len(found))
		res.Candidates = found
	}
	return res, nil
}

func (s *Service) selectCurve(index *int) (int, *curve.Curve, error) {
	if index != nil {
		c, err := s.curves.Engine(*index)
		return *index, c, err
	}
	return s.curves.RandomEngine(s.rand)
}

func view(c *curve.Curve, p ecdh.Party) (domain.PartyView, error) {
	fp, err := crypto.Fingerprint(c, p.Public)
	if err != nil {
		return domain.PartyView{}, err
	}
	return domain.PartyView{
		Private:     new(big.Int).Set(p.Private),
		Public:      p.Public,
		Fingerprint: domain.Fingerprint(fp),
		Shared:      p.Shared,
	}, nil
}

// Compile-time assertion that Service implements domain.ExchangeService.
var _ domain.ExchangeService = (*Service)(nil)
