package interfaces

import (
	"context"

	"spdhec/internal/curve"
	domaintypes "spdhec/internal/domain/types"
)

// ExchangeService runs both parties of an exchange in one process.
type ExchangeService interface {
	Exchange(ctx context.Context, req domaintypes.ExchangeRequest) (domaintypes.ExchangeResult, error)
}

// CurveGenService searches for new curves with prime order.
type CurveGenService interface {
	Generate(ctx context.Context) (curve.Params, error)
}

// PartyService runs one side of an exchange through the relay.
type PartyService interface {
	Run(ctx context.Context, req domaintypes.PartyRequest) (domaintypes.PartyResult, error)
}
