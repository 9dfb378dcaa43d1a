package party

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"spdhec/internal/crypto"
	"spdhec/internal/curve"
	"spdhec/internal/domain"
	"spdhec/internal/log"
	"spdhec/internal/protocol/ecdh"
	"spdhec/internal/relay"
)

// DefaultPollInterval is how often a party asks the relay for missing values.
const DefaultPollInterval = 250 * time.Millisecond

// KeyLen is the length of the optional HKDF output.
const KeyLen = 32

// Service runs a single party against a relay.
type Service struct {
	curves domain.CurveEngines
	relay  domain.RelayClient
	rand   io.Reader
	poll   time.Duration
}

// New constructs a party Service. A zero poll interval means
// DefaultPollInterval.
func New(curves domain.CurveEngines, rc domain.RelayClient, rand io.Reader, poll time.Duration) *Service {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Service{curves: curves, relay: rc, rand: rand, poll: poll}
}

// Run plays req.Party in session req.Session until the secret is derived or
// ctx ends.
func (s *Service) Run(ctx context.Context, req domain.PartyRequest) (domain.PartyResult, error) {
	if _, err := domain.ParseParty(req.Party.String()); err != nil {
		return domain.PartyResult{}, err
	}

	params, err := s.sessionParams(ctx, req)
	if err != nil {
		return domain.PartyResult{}, err
	}
	c, err := curve.FromParams(params.Curve)
	if err != nil {
		return domain.PartyResult{}, fmt.Errorf("session curve: %w", err)
	}
	if err := ecdh.ValidateGenerator(c, params.Generator); err != nil {
		return domain.PartyResult{}, err
	}

	var kp ecdh.KeyPair
	if req.PrivateKey != nil {
		kp, err = ecdh.NewKeyPair(c, params.Generator, req.PrivateKey)
	} else {
		kp, err = ecdh.GenerateKeyPair(c, params.Generator, s.rand)
	}
	if err != nil {
		return domain.PartyResult{}, err
	}
	defer kp.Wipe()

	enc, err := c.Compress(kp.Public)
	if err != nil {
		return domain.PartyResult{}, err
	}
	own := domain.PublishedKey{Party: req.Party, Point: hex.EncodeToString(enc)}
	if err := s.relay.PublishKey(ctx, req.Session, own); err != nil {
		return domain.PartyResult{}, fmt.Errorf("publish key: %w", err)
	}
	log.Infow("public key published", "session", req.Session, "party", req.Party, "point", kp.Public.String())

	peer, err := s.peerKey(ctx, c, req.Session, req.Party.Peer())
	if err != nil {
		return domain.PartyResult{}, err
	}
	shared, err := ecdh.DeriveSharedSecret(c, peer, kp.Private)
	if err != nil {
		return domain.PartyResult{}, err
	}
	secret, err := ecdh.Secret(shared)
	if err != nil {
		return domain.PartyResult{}, err
	}
	fp, err := crypto.Fingerprint(c, peer)
	if err != nil {
		return domain.PartyResult{}, err
	}

	res := domain.PartyResult{
		Session:   req.Session,
		Party:     req.Party,
		Params:    params,
		Public:    kp.Public,
		Peer:      peer,
		PeerPrint: domain.Fingerprint(fp),
		Secret:    secret,
	}
	if req.DeriveKey {
		key, err := crypto.DeriveKey(c, shared, []byte(crypto.KeyInfo), KeyLen)
		if err != nil {
			return domain.PartyResult{}, err
		}
		res.Key = hex.EncodeToString(key)
	}
	log.Infow("shared secret derived", "session", req.Session, "party", req.Party, "peer", res.PeerPrint)
	return res, nil
}

// sessionParams opens the session as Alice or waits for it as Bob.
func (s *Service) sessionParams(ctx context.Context, req domain.PartyRequest) (domain.SessionParams, error) {
	if req.Party == domain.Bob {
		var params domain.SessionParams
		err := s.waitFor(ctx, func() (err error) {
			params, err = s.relay.FetchParams(ctx, req.Session)
			return err
		})
		if err != nil {
			return domain.SessionParams{}, fmt.Errorf("fetch session params: %w", err)
		}
		return params, nil
	}

	var (
		index int
		c     *curve.Curve
		err   error
	)
	if req.CurveIndex != nil {
		index = *req.CurveIndex
		c, err = s.curves.Engine(index)
	} else {
		index, c, err = s.curves.RandomEngine(s.rand)
	}
	if err != nil {
		return domain.SessionParams{}, err
	}
	params, err := c.Params()
	if err != nil {
		return domain.SessionParams{}, err
	}
	g, err := ecdh.RandomGenerator(c, s.rand)
	if err != nil {
		return domain.SessionParams{}, err
	}
	sp := domain.SessionParams{CurveIndex: index, Curve: params, Generator: g}
	if err := s.relay.PublishParams(ctx, req.Session, sp); err != nil {
		return domain.SessionParams{}, fmt.Errorf("publish session params: %w", err)
	}
	log.Infow("session opened", "session", req.Session, "curve", index, "generator", g.String())
	return sp, nil
}

func (s *Service) peerKey(ctx context.Context, c *curve.Curve, id domain.SessionID, peer domain.Party) (curve.Point, error) {
	var key domain.PublishedKey
	err := s.waitFor(ctx, func() (err error) {
		key, err = s.relay.FetchKey(ctx, id, peer)
		return err
	})
	if err != nil {
		return curve.Point{}, fmt.Errorf("fetch %s key: %w", peer, err)
	}
	raw, err := hex.DecodeString(key.Point)
	if err != nil {
		return curve.Point{}, fmt.Errorf("%s key: %w", peer, err)
	}
	p, err := c.Decompress(raw)
	if err != nil {
		return curve.Point{}, fmt.Errorf("%s key: %w", peer, err)
	}
	return p, nil
}

// waitFor calls fetch until it stops returning relay.ErrNotFound.
func (s *Service) waitFor(ctx context.Context, fetch func() error) error {
	t := time.NewTicker(s.poll)
	defer t.Stop()
	for {
		err := fetch()
		if !errors.Is(err, relay.ErrNotFound) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Compile-time assertion that Service implements domain.PartyService.
var _ domain.PartyService = (*Service)(nil)
