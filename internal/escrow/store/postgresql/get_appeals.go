package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/tracing"
)

func (p *PostgreSQL) GetAppeal(ctx context.Context, orderID int64) (appeal *escrow.Appeal, err error) {
	ctx, span := tracing.StartTracing(ctx, "GetAppeal", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	row := p.db.QueryRowContext(ctx, `SELECT `+appealColumns+` FROM escrow.appeals a WHERE a.order_id = $1`, orderID)

	appeal, err = scanAppeal(row)
	if err != nil {
		return nil, notFound(err)
	}

	return appeal, nil
}

// ListAppeals returns a page of appeals, newest first, and the number of appeals matching the filter.
func (p *PostgreSQL) ListAppeals(ctx context.Context, filter store.AppealFilter) (appeals []escrow.Appeal, count int64, err error) {
	ctx, span := tracing.StartTracing(ctx, "ListAppeals", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	const where = `
		FROM escrow.appeals a
		JOIN escrow.orders o ON o.id = a.order_id
		WHERE ($1::TEXT = '' OR o.arbiter_wallet_hash = $1::TEXT)
		AND (
			$2::TEXT = ''
			OR ($2::TEXT = 'PENDING' AND a.resolved_at IS NULL)
			OR ($2::TEXT = 'RESOLVED' AND a.resolved_at IS NOT NULL)
		)`

	err = p.db.QueryRowContext(ctx, `SELECT COUNT(*) `+where, filter.Arbiter, string(filter.State)).Scan(&count)
	if err != nil {
		return nil, 0, errors.Join(store.ErrFailedToGetRows, err)
	}

	limit := sql.NullInt64{Int64: int64(filter.Limit), Valid: filter.Limit > 0}
	rows, err := p.db.QueryContext(ctx, `SELECT `+appealColumns+where+`
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $3 OFFSET $4
	`, filter.Arbiter, string(filter.State), limit, filter.Offset)
	if err != nil {
		return nil, 0, errors.Join(store.ErrFailedToGetRows, err)
	}
	defer rows.Close()

	appeals = make([]escrow.Appeal, 0)
	for rows.Next() {
		a, err := scanAppeal(rows)
		if err != nil {
			return nil, 0, errors.Join(store.ErrFailedToGetRows, err)
		}
		appeals = append(appeals, *a)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, errors.Join(store.ErrFailedToGetRows, err)
	}

	return appeals, count, nil
}
