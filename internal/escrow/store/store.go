package store

import (
	"context"
	"errors"
	"time"

	"github.com/rampp2p/escrow/internal/escrow"
)

var (
	ErrNotFound                 = errors.New("not found")
	ErrFailedToOpenDB           = errors.New("failed to open postgres database")
	ErrUnableToGetSQLConnection = errors.New("unable to get or create sql connection")
	ErrFailedToBeginTx          = errors.New("failed to begin transaction")
	ErrFailedToCommitTx         = errors.New("failed to commit transaction")
	ErrFailedToInsertOrder      = errors.New("failed to insert order")
	ErrFailedToAppendStatus     = errors.New("failed to append status")
	ErrFailedToGetRows          = errors.New("failed to get rows")
	ErrFailedToUpdateOrder      = errors.New("failed to update order")
	ErrFailedToUpsertTx         = errors.New("failed to upsert transaction")
	ErrFailedToInsertRecipients = errors.New("failed to insert recipients")
	ErrFailedToInsertAppeal     = errors.New("failed to insert appeal")
	ErrContractExists           = errors.New("contract address already in use")
	ErrAppealExists             = errors.New("order already has an appeal")
)

type AppealState string

const (
	AppealStateAny      AppealState = ""
	AppealStatePending  AppealState = "PENDING"
	AppealStateResolved AppealState = "RESOLVED"
)

// Settlement is a verified transaction and the outputs it pays.
type Settlement struct {
	Action     escrow.ActionType
	TxID       string
	Recipients []escrow.Recipient
}

// StatusUpdate is a status append together with the side effects that must commit with it.
type StatusUpdate struct {
	OrderID int64
	Status  escrow.StatusType
	// Expect restricts the current status the append may apply to. Empty accepts any status.
	Expect []escrow.StatusType
	// Pending creates a transaction placeholder without txid for the action, unless one exists.
	Pending       escrow.ActionType
	Settlement    *Settlement
	Appeal        *escrow.Appeal
	ResolveAppeal bool
	ExpiresAt     *time.Time
}

type AppendResult struct {
	Status      escrow.Status
	Transaction *escrow.Transaction
	Appeal      *escrow.Appeal
	// Replayed is set when the settlement transaction was already recorded and nothing was written.
	Replayed bool
}

type OrderRecord struct {
	Order    escrow.Order
	Contract escrow.Contract
	Status   escrow.Status
}

type AppealFilter struct {
	Arbiter string
	State   AppealState
	Limit   int
	Offset  int
}

// ExpiryCursor is the position of the last order of a page of expired orders. Orders are ordered by
// (ExpiresAt, ID).
type ExpiryCursor struct {
	ExpiresAt time.Time
	ID        int64
}

type EscrowStore interface {
	CreateOrder(ctx context.Context, order escrow.Order, contract escrow.Contract) (*OrderRecord, error)
	GetOrder(ctx context.Context, id int64) (*escrow.Order, error)
	GetContract(ctx context.Context, orderID int64) (*escrow.Contract, error)
	GetContractByAddress(ctx context.Context, address string) (*escrow.Contract, error)
	GetStatusHistory(ctx context.Context, orderID int64) ([]escrow.Status, error)
	AppendStatus(ctx context.Context, update StatusUpdate) (*AppendResult, error)
	MarkStatusesRead(ctx context.Context, orderID int64, role escrow.Role) (int64, error)
	GetTransaction(ctx context.Context, contractID int64, action escrow.ActionType, txID string) (*escrow.Transaction, error)
	ListTransactions(ctx context.Context, contractID int64) ([]escrow.Transaction, error)
	GetRecipients(ctx context.Context, transactionID int64) ([]escrow.Recipient, error)
	GetAppeal(ctx context.Context, orderID int64) (*escrow.Appeal, error)
	ListAppeals(ctx context.Context, filter AppealFilter) ([]escrow.Appeal, int64, error)
	ListExpiredOrders(ctx context.Context, now time.Time, statuses []escrow.StatusType, after *ExpiryCursor, limit int) ([]escrow.Order, error)
	Ping(ctx context.Context) error
	Close() error
}
