package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/tracing"
)

// AppendStatus locks the order row, validates the transition against the locked history and writes the
// status with all side effects of the update in a single transaction.
func (p *PostgreSQL) AppendStatus(ctx context.Context, update store.StatusUpdate) (result *store.AppendResult, err error) {
	ctx, span := tracing.StartTracing(ctx, "AppendStatus", p.tracingEnabled,
		append(p.tracingAttributes, attribute.Int64("order", update.OrderID), attribute.String("status", string(update.Status)))...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToBeginTx, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var lockedID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM escrow.orders WHERE id = $1 FOR UPDATE`, update.OrderID).Scan(&lockedID)
	if err != nil {
		return nil, notFound(err)
	}

	history, err := getStatusHistory(ctx, tx, update.OrderID)
	if err != nil {
		return nil, err
	}

	var contract *escrow.Contract
	if update.Settlement != nil || update.Pending != "" {
		contract, err = getContract(ctx, tx, update.OrderID)
		if err != nil {
			return nil, err
		}
	}

	if update.Settlement != nil {
		existing, err := getTransaction(ctx, tx, contract.ID, update.Settlement.Action, update.Settlement.TxID)
		if err == nil {
			latest := escrow.Latest(history)
			if latest == nil {
				return nil, fmt.Errorf("%w: order has no status", escrow.ErrUnexpectedStatus)
			}
			return &store.AppendResult{Status: *latest, Transaction: existing, Replayed: true}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	err = escrow.CheckCurrent(history, update.Expect...)
	if err != nil {
		return nil, err
	}

	err = escrow.ValidateTransition(history, update.Status)
	if err != nil {
		return nil, err
	}

	now := p.now().UTC()
	result = &store.AppendResult{}

	status, err := insertStatus(ctx, tx, update.OrderID, update.Status, now)
	if err != nil {
		return nil, err
	}
	result.Status = *status

	if update.ExpiresAt != nil {
		_, err = tx.ExecContext(ctx, `UPDATE escrow.orders SET expires_at = $2 WHERE id = $1`, update.OrderID, update.ExpiresAt.UTC())
		if err != nil {
			return nil, errors.Join(store.ErrFailedToUpdateOrder, err)
		}
	}

	if update.Pending != "" {
		result.Transaction, err = ensurePlaceholder(ctx, tx, contract.ID, update.Pending, now)
		if err != nil {
			return nil, err
		}
	}

	if update.Settlement != nil {
		result.Transaction, err = upsertSettlement(ctx, tx, contract.ID, update.Settlement, now)
		if err != nil {
			return nil, err
		}
	}

	if update.Appeal != nil {
		result.Appeal, err = insertAppeal(ctx, tx, update.OrderID, update.Appeal, now)
		if err != nil {
			return nil, err
		}
	}

	if update.ResolveAppeal {
		result.Appeal, err = resolveAppeal(ctx, tx, update.OrderID, now)
		if err != nil {
			return nil, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, errors.Join(store.ErrFailedToCommitTx, err)
	}

	return result, nil
}

func insertStatus(ctx context.Context, q querier, orderID int64, status escrow.StatusType, now time.Time) (*escrow.Status, error) {
	row := q.QueryRowContext(ctx, `
		INSERT INTO escrow.statuses AS s (order_id, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING `+statusColumns,
		orderID, status, now)

	s, err := scanStatus(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", escrow.ErrDuplicateStatus, status)
		}
		return nil, errors.Join(store.ErrFailedToAppendStatus, err)
	}

	return s, nil
}

func ensurePlaceholder(ctx context.Context, tx *sql.Tx, contractID int64, action escrow.ActionType, now time.Time) (*escrow.Transaction, error) {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO escrow.transactions (contract_id, action, txid, created_at)
		VALUES ($1, $2, NULL, $3)
		ON CONFLICT (contract_id, action) WHERE txid IS NULL DO NOTHING
	`, contractID, action, now)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToUpsertTx, err)
	}

	row := tx.QueryRowContext(ctx, `
		SELECT `+transactionColumns+`
		FROM escrow.transactions t
		WHERE t.contract_id = $1 AND t.action = $2 AND t.txid IS NULL
	`, contractID, action)

	t, err := scanTransaction(row)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToUpsertTx, err)
	}

	return t, nil
}

// upsertSettlement fills the pending placeholder of the action with the txid, or inserts a new transaction
// if there is none, and records its recipients.
func upsertSettlement(ctx context.Context, tx *sql.Tx, contractID int64, settlement *store.Settlement, now time.Time) (*escrow.Transaction, error) {
	row := tx.QueryRowContext(ctx, `
		UPDATE escrow.transactions AS t SET txid = $3
		WHERE t.contract_id = $1 AND t.action = $2 AND t.txid IS NULL
		RETURNING `+transactionColumns,
		contractID, settlement.Action, settlement.TxID)

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		row = tx.QueryRowContext(ctx, `
			INSERT INTO escrow.transactions AS t (contract_id, action, txid, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING `+transactionColumns,
			contractID, settlement.Action, settlement.TxID, now)

		t, err = scanTransaction(row)
	}
	if err != nil {
		return nil, errors.Join(store.ErrFailedToUpsertTx, err)
	}

	if len(settlement.Recipients) == 0 {
		return t, nil
	}

	addresses := make([]string, len(settlement.Recipients))
	amounts := make([]int64, len(settlement.Recipients))
	for i, r := range settlement.Recipients {
		addresses[i] = r.Address
		amounts[i], err = safecast.ToInt64(r.Amount)
		if err != nil {
			return nil, errors.Join(store.ErrFailedToInsertRecipients, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO escrow.recipients (transaction_id, address, amount, created_at)
		SELECT $1::BIGINT, r.address, r.amount, $4::TIMESTAMPTZ
		FROM UNNEST($2::TEXT[], $3::BIGINT[]) AS r(address, amount)
	`, t.ID, pq.Array(addresses), pq.Array(amounts), now)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToInsertRecipients, err)
	}

	return t, nil
}

func insertAppeal(ctx context.Context, tx *sql.Tx, orderID int64, appeal *escrow.Appeal, now time.Time) (*escrow.Appeal, error) {
	reasons := appeal.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	row := tx.QueryRowContext(ctx, `
		INSERT INTO escrow.appeals AS a (order_id, owner, type, reasons, created_at)
		VALUES ($1, $2, $3, $4::TEXT[], $5)
		RETURNING `+appealColumns,
		orderID, appeal.Owner, appeal.Type, pq.Array(reasons), now)

	a, err := scanAppeal(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Join(store.ErrAppealExists, err)
		}
		return nil, errors.Join(store.ErrFailedToInsertAppeal, err)
	}

	return a, nil
}

// resolveAppeal marks the open appeal of the order as resolved. It returns nil if there is none.
func resolveAppeal(ctx context.Context, tx *sql.Tx, orderID int64, now time.Time) (*escrow.Appeal, error) {
	row := tx.QueryRowContext(ctx, `
		UPDATE escrow.appeals AS a SET resolved_at = $2
		WHERE a.order_id = $1 AND a.resolved_at IS NULL
		RETURNING `+appealColumns,
		orderID, now)

	a, err := scanAppeal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(store.ErrFailedToInsertAppeal, err)
	}

	return a, nil
}
