package ecdh

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"spdhec/internal/curve"
	"spdhec/internal/util/memzero"
)

var (
	// ErrInvalidScalar is curve.ErrInvalidScalar, so errors.Is matches either.
	ErrInvalidScalar    = curve.ErrInvalidScalar
	ErrInvalidGenerator = errors.New("ecdh: generator must be a non-identity point on the curve")
	ErrInvalidPublicKey = errors.New("ecdh: public key must be a non-identity point on the curve")
	ErrDegenerateSecret = errors.New("ecdh: shared point is the point at infinity")
	ErrSecretMismatch   = errors.New("ecdh: parties derived different shared points")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// KeyPair is an ephemeral private scalar and its public point.
type KeyPair struct {
	Private *big.Int    `json:"private"`
	Public  curve.Point `json:"public"`
}

// Wipe zeroes the private scalar.
func (k *KeyPair) Wipe() { memzero.Int(k.Private) }

// GeneratePrivateKey returns a uniform integer in [1, order-1].
func GeneratePrivateKey(r io.Reader, order *big.Int) (*big.Int, error) {
	if order == nil || order.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: order %v leaves no private keys", ErrInvalidScalar, order)
	}
	k, err := rand.Int(r, new(big.Int).Sub(order, one))
	if err != nil {
		return nil, fmt.Errorf("sampling private key: %w", err)
	}
	return k.Add(k, one), nil
}

// ValidatePrivateKey checks 1 <= k <= order-1.
func ValidatePrivateKey(k, order *big.Int) error {
	if k == nil || k.Sign() <= 0 || k.Cmp(order) >= 0 {
		return fmt.Errorf("%w: private key %v outside [1, %s]", ErrInvalidScalar, k, new(big.Int).Sub(order, one))
	}
	return nil
}

// RandomGenerator picks a random non-identity point. With a prime group order
// every such point generates the whole group.
func RandomGenerator(c *curve.Curve, r io.Reader) (curve.Point, error) {
	for {
		g, err := c.RandomPoint(r)
		if err != nil {
			return curve.Point{}, err
		}
		if !g.IsInfinity() {
			return g, nil
		}
	}
}

// ValidateGenerator checks that g is a non-identity point on c.
func ValidateGenerator(c *curve.Curve, g curve.Point) error {
	if err := checkPoint(c, g); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGenerator, g)
	}
	return nil
}

// ValidatePublicKey checks that k is a non-identity point on c.
func ValidatePublicKey(c *curve.Curve, k curve.Point) error {
	if err := checkPoint(c, k); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPublicKey, k)
	}
	return nil
}

func checkPoint(c *curve.Curve, p curve.Point) error {
	on, err := c.IsOnCurve(p)
	if err != nil {
		return err
	}
	if !on || p.IsInfinity() {
		return curve.ErrNotOnCurve
	}
	return nil
}

// DerivePublicKey returns k·g.
func DerivePublicKey(c *curve.Curve, g curve.Point, k *big.Int) (curve.Point, error) {
	order, err := c.Order()
	if err != nil {
		return curve.Point{}, err
	}
	if err := ValidatePrivateKey(k, order); err != nil {
		return curve.Point{}, err
	}
	return c.ScalarMult(g, k)
}

// DeriveSharedSecret returns ownPrivate·peerPublic.
func DeriveSharedSecret(c *curve.Curve, peerPublic curve.Point, ownPrivate *big.Int) (curve.Point, error) {
	order, err := c.Order()
	if err != nil {
		return curve.Point{}, err
	}
	if err := ValidatePrivateKey(ownPrivate, order); err != nil {
		return curve.Point{}, err
	}
	if err := ValidatePublicKey(c, peerPublic); err != nil {
		return curve.Point{}, err
	}
	s, err := c.ScalarMult(peerPublic, ownPrivate)
	if err != nil {
		return curve.Point{}, err
	}
	if s.IsInfinity() {
		return curve.Point{}, ErrDegenerateSecret
	}
	return s, nil
}

// Secret returns the exported secret, the y-coordinate of the shared point.
func Secret(shared curve.Point) (*big.Int, error) {
	if shared.IsInfinity() {
		return nil, ErrDegenerateSecret
	}
	return shared.Y(), nil
}

// NewKeyPair derives the key pair for an explicit private scalar. The scalar
// is copied.
func NewKeyPair(c *curve.Curve, g curve.Point, k *big.Int) (KeyPair, error) {
	pub, err := DerivePublicKey(c, g, k)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{Private: new(big.Int).Set(k), Public: pub}, nil
}

// GenerateKeyPair draws a private scalar from r and derives its public point.
func GenerateKeyPair(c *curve.Curve, g curve.Point, r io.Reader) (KeyPair, error) {
	order, err := c.Order()
	if err != nil {
		return KeyPair{}, err
	}
	k, err := GeneratePrivateKey(r, order)
	if err != nil {
		return KeyPair{}, err
	}
	defer memzero.Int(k)
	return NewKeyPair(c, g, k)
}
