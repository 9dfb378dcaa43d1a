package domain

import (
	interfaces "spdhec/internal/domain/interfaces"
	types "spdhec/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID       = types.SessionID
	Fingerprint     = types.Fingerprint
	Party           = types.Party
	SessionParams   = types.SessionParams
	PublishedKey    = types.PublishedKey
	ExchangeRequest = types.ExchangeRequest
	ExchangeResult  = types.ExchangeResult
	PartyView       = types.PartyView
	PartyRequest    = types.PartyRequest
	PartyResult     = types.PartyResult
)

const (
	Alice = types.Alice
	Bob   = types.Bob
)

// ParseParty accepts "alice" or "bob".
var ParseParty = types.ParseParty

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CurveSource     = interfaces.CurveSource
	CurveTable      = interfaces.CurveTable
	PrimeSource     = interfaces.PrimeSource
	CurveEngines    = interfaces.CurveEngines
	RelayClient     = interfaces.RelayClient
	ExchangeService = interfaces.ExchangeService
	CurveGenService = interfaces.CurveGenService
	PartyService    = interfaces.PartyService
)
