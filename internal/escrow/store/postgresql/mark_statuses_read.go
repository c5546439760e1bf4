package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/tracing"
)

// MarkStatusesRead sets the read timestamp of the given peer on all unread statuses of the order.
func (p *PostgreSQL) MarkStatusesRead(ctx context.Context, orderID int64, role escrow.Role) (rowsAffected int64, err error) {
	ctx, span := tracing.StartTracing(ctx, "MarkStatusesRead", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	var q string
	switch role {
	case escrow.RoleSeller:
		q = `UPDATE escrow.statuses SET seller_read_at = $2 WHERE order_id = $1 AND seller_read_at IS NULL`
	case escrow.RoleBuyer:
		q = `UPDATE escrow.statuses SET buyer_read_at = $2 WHERE order_id = $1 AND buyer_read_at IS NULL`
	default:
		return 0, fmt.Errorf("%w: only buyer and seller track read statuses", escrow.ErrPermissionDenied)
	}

	res, err := p.db.ExecContext(ctx, q, orderID, p.now().UTC())
	if err != nil {
		return 0, errors.Join(store.ErrFailedToAppendStatus, err)
	}

	return res.RowsAffected()
}
