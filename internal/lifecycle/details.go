package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/fees"
	"github.com/rampp2p/escrow/internal/tracing"
)

type TransactionDetails struct {
	escrow.Transaction
	Recipients []escrow.Recipient `json:"recipients"`
}

type OrderDetails struct {
	Order        escrow.Order         `json:"order"`
	Contract     escrow.Contract      `json:"contract"`
	Statuses     []escrow.Status      `json:"statuses"`
	Transactions []TransactionDetails `json:"transactions"`
	Appeal       *escrow.Appeal       `json:"appeal"`
	Fees         fees.Breakdown       `json:"fees"`
	EscrowAmount uint64               `json:"escrow_amount"`
	Expired      bool                 `json:"expired"`
}

// GetOrderDetails returns the order with everything recorded for it. Only the peers and the arbiter may
// view an order.
func (o *Orchestrator) GetOrderDetails(ctx context.Context, id int64, caller string) (details *OrderDetails, err error) {
	ctx, span := tracing.StartTracing(ctx, "Orchestrator_GetOrderDetails", o.tracingEnabled, o.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	order, err := o.Authorize(ctx, id, caller, escrow.RoleBuyer, escrow.RoleSeller, escrow.RoleArbiter)
	if err != nil {
		return nil, err
	}

	contract, err := o.store.GetContract(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	history, err := o.history(ctx, id)
	if err != nil {
		return nil, err
	}

	txs, err := o.store.ListTransactions(ctx, contract.ID)
	if err != nil {
		return nil, storeError(err)
	}

	transactions := make([]TransactionDetails, 0, len(txs))
	for _, tx := range txs {
		recipients, err := o.store.GetRecipients(ctx, tx.ID)
		if err != nil {
			return nil, storeError(err)
		}
		transactions = append(transactions, TransactionDetails{Transaction: tx, Recipients: recipients})
	}

	appeal, err := o.store.GetAppeal(ctx, id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, storeError(err)
	}

	breakdown, err := o.fees.Fees(order.CryptoAmount, contract.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", escrow.ErrInvalidOrder, err)
	}

	escrowAmount, err := o.fees.EscrowAmount(order.CryptoAmount, contract.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", escrow.ErrInvalidOrder, err)
	}

	return &OrderDetails{
		Order:        *order,
		Contract:     *contract,
		Statuses:     history,
		Transactions: transactions,
		Appeal:       appeal,
		Fees:         breakdown,
		EscrowAmount: escrowAmount,
		Expired:      o.IsOrderExpired(order),
	}, nil
}

// IsOrderExpired reports whether the payment window of the order has elapsed.
func (o *Orchestrator) IsOrderExpired(order *escrow.Order) bool {
	return order.IsExpired(o.now())
}

// MarkStatusesRead marks the statuses of the order read by the calling peer.
func (o *Orchestrator) MarkStatusesRead(ctx context.Context, id int64, caller string) (int64, error) {
	order, err := o.Authorize(ctx, id, caller, escrow.RoleBuyer, escrow.RoleSeller)
	if err != nil {
		return 0, err
	}

	n, err := o.store.MarkStatusesRead(ctx, id, order.RoleOf(caller))
	if err != nil {
		return 0, storeError(err)
	}

	return n, nil
}
