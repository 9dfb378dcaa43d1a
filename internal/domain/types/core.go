package types

import "fmt"

// SessionID names a two-party exchange on the relay.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// Fingerprint is a short identifier for public points presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Party is one side of an exchange.
type Party string

const (
	Alice Party = "alice"
	Bob   Party = "bob"
)

// String returns the string form of the party.
func (p Party) String() string { return string(p) }

// Peer returns the other side.
func (p Party) Peer() Party {
	if p == Alice {
		return Bob
	}
	return Alice
}

// ParseParty accepts "alice" or "bob".
func ParseParty(s string) (Party, error) {
	switch Party(s) {
	case Alice, Bob:
		return Party(s), nil
	}
	return "", fmt.Errorf("unknown party %q (want alice or bob)", s)
}
