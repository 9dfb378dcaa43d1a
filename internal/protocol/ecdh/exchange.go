package ecdh

import (
	"fmt"
	"io"
	"math/big"

	"spdhec/internal/curve"
)

// Keys optionally fixes the private scalars of an Exchange. A nil entry is
// drawn at random.
type Keys struct {
	Alice *big.Int
	Bob   *big.Int
}

// Party is one side of a finished exchange.
type Party struct {
	KeyPair
	Shared curve.Point `json:"shared"`
}

// Transcript records a two-party exchange.
type Transcript struct {
	Generator curve.Point `json:"generator"`
	Alice     Party       `json:"alice"`
	Bob       Party       `json:"bob"`
	Secret    *big.Int    `json:"secret"`
}

// Wipe zeroes both private scalars.
func (t *Transcript) Wipe() {
	t.Alice.Wipe()
	t.Bob.Wipe()
}

// Exchange runs a full exchange between Alice and Bob over generator g.
func Exchange(c *curve.Curve, g curve.Point, r io.Reader, keys Keys) (Transcript, error) {
	if err := ValidateGenerator(c, g); err != nil {
		return Transcript{}, err
	}

	alice, err := keyPair(c, g, r, keys.Alice)
	if err != nil {
		return Transcript{}, fmt.Errorf("alice: %w", err)
	}
	bob, err := keyPair(c, g, r, keys.Bob)
	if err != nil {
		return Transcript{}, fmt.Errorf("bob: %w", err)
	}

	sharedAlice, err := DeriveSharedSecret(c, bob.Public, alice.Private)
	if err != nil {
		return Transcript{}, fmt.Errorf("alice: %w", err)
	}
	sharedBob, err := DeriveSharedSecret(c, alice.Public, bob.Private)
	if err != nil {
		return Transcript{}, fmt.Errorf("bob: %w", err)
	}
	if !sharedAlice.Equal(sharedBob) {
		return Transcript{}, fmt.Errorf("%w: %s vs %s", ErrSecretMismatch, sharedAlice, sharedBob)
	}

	secret, err := Secret(sharedAlice)
	if err != nil {
		return Transcript{}, err
	}
	return Transcript{
		Generator: g,
		Alice:     Party{KeyPair: alice, Shared: sharedAlice},
		Bob:       Party{KeyPair: bob, Shared: sharedBob},
		Secret:    secret,
	}, nil
}

func keyPair(c *curve.Curve, g curve.Point, r io.Reader, k *big.Int) (KeyPair, error) {
	if k != nil {
		return NewKeyPair(c, g, k)
	}
	return GenerateKeyPair(c, g, r)
}
