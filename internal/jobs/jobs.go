package jobs

import (
	"context"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
)

type Subscriber interface {
	Subscribe(topic string, msgFunc func([]byte) error) error
}

type CompletionVerifier interface {
	VerifyCompletion(ctx context.Context, id int64, action escrow.ActionType, txID string, expect ...escrow.StatusType) (*store.AppendResult, error)
}

type ExpiryNotifier interface {
	AppealWindowOpen(ctx context.Context, order escrow.Order)
}
