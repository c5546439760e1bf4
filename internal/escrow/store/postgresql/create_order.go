package postgresql

import (
	"context"
	"errors"

	"github.com/ccoveille/go-safecast"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/tracing"
)

// CreateOrder inserts the order, its contract and the initial SBM status in one transaction.
func (p *PostgreSQL) CreateOrder(ctx context.Context, order escrow.Order, contract escrow.Contract) (record *store.OrderRecord, err error) {
	ctx, span := tracing.StartTracing(ctx, "CreateOrder", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	amount, err := safecast.ToInt64(order.CryptoAmount)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToInsertOrder, err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToBeginTx, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := p.now().UTC()
	order.CreatedAt = now
	order.ExpiresAt = nil

	err = tx.QueryRowContext(ctx, `
		INSERT INTO escrow.orders (
			owner_wallet_hash, owner_public_key, owner_address,
			counterparty_wallet_hash, counterparty_public_key, counterparty_address,
			arbiter_wallet_hash, arbiter_public_key, arbiter_address,
			crypto_amount, fiat_currency, trade_type, time_duration, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		order.Owner.WalletHash, order.Owner.PublicKey, order.Owner.Address,
		order.Counterparty.WalletHash, order.Counterparty.PublicKey, order.Counterparty.Address,
		order.Arbiter.WalletHash, order.Arbiter.PublicKey, order.Arbiter.Address,
		amount, order.FiatCurrency, order.TradeType, order.TimeDuration, now,
	).Scan(&order.ID)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToInsertOrder, err)
	}

	contract.OrderID = order.ID
	contract.CreatedAt = now
	err = tx.QueryRowContext(ctx, `
		INSERT INTO escrow.contracts (order_id, address, version, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, contract.OrderID, contract.Address, contract.Version, now).Scan(&contract.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Join(store.ErrContractExists, err)
		}
		return nil, errors.Join(store.ErrFailedToInsertOrder, err)
	}

	status, err := insertStatus(ctx, tx, order.ID, escrow.StatusSubmitted, now)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, errors.Join(store.ErrFailedToCommitTx, err)
	}

	return &store.OrderRecord{Order: order, Contract: contract, Status: *status}, nil
}
