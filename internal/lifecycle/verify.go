package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"

	"github.com/rampp2p/escrow/internal/chain"
	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/tracing"
)

// ValidateTxID checks that txID is a hex encoded 32 byte hash.
func ValidateTxID(txID string) error {
	if len(txID) != 2*chainhash.HashSize {
		return escrow.ErrInvalidTxID
	}

	_, err := chainhash.NewHashFromStr(txID)
	if err != nil {
		return fmt.Errorf("%w: %v", escrow.ErrInvalidTxID, err)
	}

	return nil
}

// VerifyEscrow verifies the escrow transaction of an order waiting for it and marks the order ESCROWED.
func (o *Orchestrator) VerifyEscrow(ctx context.Context, id int64, txID string) (*store.AppendResult, error) {
	return o.VerifyCompletion(ctx, id, escrow.ActionEscrow, txID, escrow.StatusEscrowPending)
}

// VerifyCompletion verifies a transaction of the action against the order's contract and appends the status
// that completes the action together with the transaction and its recipients. A txid that was verified for the
// action before returns the current status without writing. When expect is set, the current status must be
// one of it.
func (o *Orchestrator) VerifyCompletion(ctx context.Context, id int64, action escrow.ActionType, txID string, expect ...escrow.StatusType) (result *store.AppendResult, err error) {
	ctx, span := tracing.StartTracing(ctx, "Orchestrator_VerifyCompletion", o.tracingEnabled, o.tracingAttributes...)
	next := action.CompletedStatus()
	defer func() {
		if result != nil {
			next = result.Status.Status
		}
		o.notifier.Result(ctx, id, next, err)
		tracing.EndTracing(span, err)
	}()

	if !action.Valid() {
		return nil, fmt.Errorf("%w: %s", escrow.ErrInvalidAction, action)
	}

	err = ValidateTxID(txID)
	if err != nil {
		return nil, err
	}

	order, err := o.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	contract, err := o.store.GetContract(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	replayed, err := o.replay(ctx, id, contract.ID, action, txID)
	if err != nil || replayed != nil {
		return replayed, err
	}

	history, err := o.history(ctx, id)
	if err != nil {
		return nil, err
	}

	err = escrow.CheckCurrent(history, expect...)
	if err == nil {
		err = escrow.ValidateTransition(history, next)
	}
	if err != nil {
		o.stats.statusAppended(next, err)
		return nil, err
	}

	tx, err := o.fetch(ctx, txID)
	if err != nil {
		o.stats.verified(action, outcomeFailed)
		return nil, err
	}

	verdict, err := o.verifier.Verify(o.target(order, contract, action), tx)
	if err != nil {
		o.stats.verified(action, outcome(err))
		return nil, err
	}

	if !verdict.Valid {
		o.stats.verified(action, outcomeInvalid)
		o.logger.Warn("transaction rejected", slog.Int64("id", id), slog.String("action", string(action)),
			slog.String("txid", txID), slog.String("reason", verdict.Reason))
		return nil, fmt.Errorf("%w: %s", escrow.ErrInvalidTransaction, verdict.Reason)
	}

	recipients := make([]escrow.Recipient, 0, len(verdict.Outputs))
	for _, out := range verdict.Outputs {
		recipients = append(recipients, escrow.Recipient{Address: out.Address, Amount: out.Amount})
	}

	update := store.StatusUpdate{
		OrderID:       id,
		Status:        next,
		Expect:        expect,
		Settlement:    &store.Settlement{Action: action, TxID: txID, Recipients: recipients},
		ResolveAppeal: action != escrow.ActionEscrow,
	}

	if action == escrow.ActionEscrow {
		expiresAt := o.now().UTC().Add(order.Duration(o.appealCooldown))
		update.ExpiresAt = &expiresAt
	}

	result, err = o.store.AppendStatus(ctx, update)
	o.stats.statusAppended(next, err)
	if err != nil {
		return nil, storeError(err)
	}

	if result.Replayed {
		o.stats.verified(action, outcomeReplayed)
		return result, nil
	}

	o.stats.verified(action, outcomeSuccess)
	o.pushStatus(ctx, order, result.Status.Status, "")
	o.logger.Info("transaction verified", slog.Int64("id", id), slog.String("action", string(action)), slog.String("txid", txID))

	return result, nil
}

// replay returns the current state when the txid is already recorded for the action, nil otherwise.
func (o *Orchestrator) replay(ctx context.Context, id, contractID int64, action escrow.ActionType, txID string) (*store.AppendResult, error) {
	tx, err := o.store.GetTransaction(ctx, contractID, action, txID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err)
	}

	history, err := o.history(ctx, id)
	if err != nil {
		return nil, err
	}

	latest := escrow.Latest(history)
	if latest == nil {
		return nil, fmt.Errorf("%w: order has no status", escrow.ErrUnexpectedStatus)
	}

	o.stats.verified(action, outcomeReplayed)

	return &store.AppendResult{Status: *latest, Transaction: tx, Replayed: true}, nil
}

func (o *Orchestrator) fetch(ctx context.Context, txID string) (*chain.TxDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, o.chainTimeout)
	defer cancel()

	tx, err := o.txSource.GetTransaction(ctx, txID)
	switch {
	case err == nil:
		return tx, nil
	case errors.Is(err, escrow.ErrTransientInfra):
		return nil, err
	case errors.Is(err, chain.ErrTxNotFound):
		return nil, errors.Join(escrow.ErrTxUnconfirmed, err)
	}

	return nil, errors.Join(escrow.ErrChainUnavailable, err)
}
