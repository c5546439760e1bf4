package postgresql

import (
	"context"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/tracing"
)

// GetStatusHistory returns the statuses of an order, oldest first.
func (p *PostgreSQL) GetStatusHistory(ctx context.Context, orderID int64) (history []escrow.Status, err error) {
	ctx, span := tracing.StartTracing(ctx, "GetStatusHistory", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	return getStatusHistory(ctx, p.db, orderID)
}
