package postgresql

import (
	"context"
	"errors"

	"github.com/ccoveille/go-safecast"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/tracing"
)

func (p *PostgreSQL) GetTransaction(ctx context.Context, contractID int64, action escrow.ActionType, txID string) (transaction *escrow.Transaction, err error) {
	ctx, span := tracing.StartTracing(ctx, "GetTransaction", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	return getTransaction(ctx, p.db, contractID, action, txID)
}

// ListTransactions returns all transactions of a contract including pending placeholders.
func (p *PostgreSQL) ListTransactions(ctx context.Context, contractID int64) (transactions []escrow.Transaction, err error) {
	ctx, span := tracing.StartTracing(ctx, "ListTransactions", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	rows, err := p.db.QueryContext(ctx, `
		SELECT `+transactionColumns+`
		FROM escrow.transactions t
		WHERE t.contract_id = $1
		ORDER BY t.created_at ASC, t.id ASC
	`, contractID)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}
	defer rows.Close()

	transactions = make([]escrow.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, errors.Join(store.ErrFailedToGetRows, err)
		}
		transactions = append(transactions, *t)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}

	return transactions, nil
}

func (p *PostgreSQL) GetRecipients(ctx context.Context, transactionID int64) (recipients []escrow.Recipient, err error) {
	ctx, span := tracing.StartTracing(ctx, "GetRecipients", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	rows, err := p.db.QueryContext(ctx, `
		SELECT id, transaction_id, address, amount, created_at
		FROM escrow.recipients
		WHERE transaction_id = $1
		ORDER BY id ASC
	`, transactionID)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}
	defer rows.Close()

	recipients = make([]escrow.Recipient, 0)
	for rows.Next() {
		var r escrow.Recipient
		var amount int64

		err = rows.Scan(&r.ID, &r.TransactionID, &r.Address, &amount, &r.CreatedAt)
		if err != nil {
			return nil, errors.Join(store.ErrFailedToGetRows, err)
		}

		r.Amount, err = safecast.ToUint64(amount)
		if err != nil {
			return nil, errors.Join(store.ErrFailedToGetRows, err)
		}
		r.CreatedAt = r.CreatedAt.UTC()

		recipients = append(recipients, r)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}

	return recipients, nil
}
