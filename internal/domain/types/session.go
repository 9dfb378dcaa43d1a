package types

import (
	"math/big"

	"spdhec/internal/curve"
	"spdhec/internal/protocol/search"
)

// SessionParams is what the initiator of a relayed exchange publishes: the
// curve and the generator both parties use.
type SessionParams struct {
	CurveIndex int          `json:"curve_index"`
	Curve      curve.Params `json:"curve"`
	Generator  curve.Point  `json:"generator"`
}

// PublishedKey is a party's public point as it crosses the relay.
type PublishedKey struct {
	Party Party  `json:"party"`
	Point string `json:"point"` // hex of the compressed encoding
}

// ExchangeRequest drives a local two-party exchange. A nil field means
// "choose at random".
type ExchangeRequest struct {
	CurveIndex *int
	AliceKey   *big.Int
	BobKey     *big.Int
	Search     bool
	DeriveKey  bool
}

// PartyView is the printable half of one side of an exchange.
type PartyView struct {
	Private     *big.Int    `json:"private"`
	Public      curve.Point `json:"public"`
	Fingerprint Fingerprint `json:"fingerprint"`
	Shared      curve.Point `json:"shared"`
}

// ExchangeResult is the outcome of a local exchange.
type ExchangeResult struct {
	CurveIndex int                `json:"curve_index"`
	Curve      curve.Params       `json:"curve"`
	Generator  curve.Point        `json:"generator"`
	Alice      PartyView          `json:"alice"`
	Bob        PartyView          `json:"bob"`
	Secret     *big.Int           `json:"secret"`
	Key        string             `json:"derived_key,omitempty"`
	Candidates []search.Candidate `json:"candidates,omitempty"`
}

// PartyRequest drives one side of a relayed exchange.
type PartyRequest struct {
	Session    SessionID
	Party      Party
	CurveIndex *int
	PrivateKey *big.Int
	DeriveKey  bool
}

// PartyResult is what one side learns from a relayed exchange.
type PartyResult struct {
	Session   SessionID     `json:"session"`
	Party     Party         `json:"party"`
	Params    SessionParams `json:"params"`
	Public    curve.Point   `json:"public"`
	Peer      curve.Point   `json:"peer"`
	PeerPrint Fingerprint   `json:"peer_fingerprint"`
	Secret    *big.Int      `json:"secret"`
	Key       string        `json:"derived_key,omitempty"`
}
