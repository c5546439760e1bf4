package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

const orderColumns = `
	o.id,
	o.owner_wallet_hash, o.owner_public_key, o.owner_address,
	o.counterparty_wallet_hash, o.counterparty_public_key, o.counterparty_address,
	o.arbiter_wallet_hash, o.arbiter_public_key, o.arbiter_address,
	o.crypto_amount, o.fiat_currency, o.trade_type, o.time_duration,
	o.created_at, o.expires_at`

func scanOrder(row scanner) (*escrow.Order, error) {
	var o escrow.Order
	var amount int64
	var expiresAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.Owner.WalletHash, &o.Owner.PublicKey, &o.Owner.Address,
		&o.Counterparty.WalletHash, &o.Counterparty.PublicKey, &o.Counterparty.Address,
		&o.Arbiter.WalletHash, &o.Arbiter.PublicKey, &o.Arbiter.Address,
		&amount, &o.FiatCurrency, &o.TradeType, &o.TimeDuration,
		&o.CreatedAt, &expiresAt,
	)
	if err != nil {
		return nil, err
	}

	o.CryptoAmount, err = safecast.ToUint64(amount)
	if err != nil {
		return nil, err
	}

	o.CreatedAt = o.CreatedAt.UTC()
	o.ExpiresAt = nullTime(expiresAt)

	return &o, nil
}

const contractColumns = `c.id, c.order_id, c.address, c.version, c.created_at`

func scanContract(row scanner) (*escrow.Contract, error) {
	var c escrow.Contract

	err := row.Scan(&c.ID, &c.OrderID, &c.Address, &c.Version, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()

	return &c, nil
}

const statusColumns = `s.id, s.order_id, s.status, s.created_at, s.seller_read_at, s.buyer_read_at`

func scanStatus(row scanner) (*escrow.Status, error) {
	var s escrow.Status
	var sellerReadAt, buyerReadAt sql.NullTime

	err := row.Scan(&s.ID, &s.OrderID, &s.Status, &s.CreatedAt, &sellerReadAt, &buyerReadAt)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = s.CreatedAt.UTC()
	s.SellerReadAt = nullTime(sellerReadAt)
	s.BuyerReadAt = nullTime(buyerReadAt)

	return &s, nil
}

const transactionColumns = `t.id, t.contract_id, t.action, t.txid, t.created_at`

func scanTransaction(row scanner) (*escrow.Transaction, error) {
	var t escrow.Transaction
	var txID sql.NullString

	err := row.Scan(&t.ID, &t.ContractID, &t.Action, &txID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = t.CreatedAt.UTC()
	if txID.Valid {
		t.TxID = &txID.String
	}

	return &t, nil
}

const appealColumns = `a.id, a.order_id, a.owner, a.type, a.reasons, a.created_at, a.resolved_at`

func scanAppeal(row scanner) (*escrow.Appeal, error) {
	var a escrow.Appeal
	var reasons pq.StringArray
	var resolvedAt sql.NullTime

	err := row.Scan(&a.ID, &a.OrderID, &a.Owner, &a.Type, &reasons, &a.CreatedAt, &resolvedAt)
	if err != nil {
		return nil, err
	}

	a.Reasons = []string(reasons)
	if a.Reasons == nil {
		a.Reasons = []string{}
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.ResolvedAt = nullTime(resolvedAt)

	return &a, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	utc := t.Time.UTC()
	return &utc
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// notFound translates sql.ErrNoRows into store.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func getStatusHistory(ctx context.Context, q querier, orderID int64) ([]escrow.Status, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT `+statusColumns+`
		FROM escrow.statuses s
		WHERE s.order_id = $1
		ORDER BY s.created_at ASC, s.id ASC
	`, orderID)
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}
	defer rows.Close()

	history := make([]escrow.Status, 0)
	for rows.Next() {
		s, err := scanStatus(rows)
		if err != nil {
			return nil, errors.Join(store.ErrFailedToGetRows, err)
		}
		history = append(history, *s)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}

	return history, nil
}

func getContract(ctx context.Context, q querier, orderID int64) (*escrow.Contract, error) {
	row := q.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM escrow.contracts c WHERE c.order_id = $1`, orderID)

	c, err := scanContract(row)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func getTransaction(ctx context.Context, q querier, contractID int64, action escrow.ActionType, txID string) (*escrow.Transaction, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+transactionColumns+`
		FROM escrow.transactions t
		WHERE t.contract_id = $1 AND t.action = $2 AND t.txid = $3
	`, contractID, action, txID)

	t, err := scanTransaction(row)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}
