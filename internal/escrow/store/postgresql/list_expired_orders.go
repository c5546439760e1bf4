package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/tracing"
)

// ListExpiredOrders returns orders whose payment window closed at or before now and whose current status is
// one of statuses, ordered by expiry and id. A non-nil after continues past that position.
func (p *PostgreSQL) ListExpiredOrders(ctx context.Context, now time.Time, statuses []escrow.StatusType, after *store.ExpiryCursor, limit int) (orders []escrow.Order, err error) {
	ctx, span := tracing.StartTracing(ctx, "ListExpiredOrders", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	codes := make([]string, len(statuses))
	for i, s := range statuses {
		codes[i] = string(s)
	}

	var cursor store.ExpiryCursor
	if after != nil {
		cursor = *after
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM escrow.orders o
		WHERE o.expires_at IS NOT NULL AND o.expires_at <= $1
		AND (
			SELECT s.status FROM escrow.statuses s
			WHERE s.order_id = o.id
			ORDER BY s.created_at DESC, s.id DESC
			LIMIT 1
		) = ANY($2::TEXT[])
		AND (o.expires_at, o.id) > ($3::TIMESTAMPTZ, $4::BIGINT)
		ORDER BY o.expires_at ASC, o.id ASC
		LIMIT $5
	`, now.UTC(), pq.Array(codes), cursor.ExpiresAt.UTC(), cursor.ID, limit)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}
	defer rows.Close()

	orders = make([]escrow.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, errors.Join(store.ErrFailedToGetRows, err)
		}
		orders = append(orders, *o)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}

	return orders, nil
}
