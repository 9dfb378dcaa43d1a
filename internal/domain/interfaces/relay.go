package interfaces

import (
	"context"

	domaintypes "spdhec/internal/domain/types"
)

// RelayClient is how two parties swap public material, all with context.
type RelayClient interface {
	PublishParams(ctx context.Context, id domaintypes.SessionID, params domaintypes.SessionParams) error
	FetchParams(ctx context.Context, id domaintypes.SessionID) (domaintypes.SessionParams, error)

	PublishKey(ctx context.Context, id domaintypes.SessionID, key domaintypes.PublishedKey) error
	FetchKey(
		ctx context.Context,
		id domaintypes.SessionID,
		party domaintypes.Party,
	) (domaintypes.PublishedKey, error)
}
