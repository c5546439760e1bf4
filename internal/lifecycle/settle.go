package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/gateway"
	"github.com/rampp2p/escrow/internal/tracing"
)

// SpendAuthorization is the caller's signature over a release or refund of the contract.
type SpendAuthorization struct {
	CallerPubKey string `json:"caller_pubkey"`
	CallerSig    string `json:"caller_sig"`
}

// Settle has the gateway sign and broadcast the release or refund of an order waiting for it and queues
// the resulting transaction for verification. The status does not change until that verification succeeds.
func (o *Orchestrator) Settle(ctx context.Context, id int64, caller string, action escrow.ActionType, auth SpendAuthorization) (result *gateway.SpendResult, err error) {
	ctx, span := tracing.StartTracing(ctx, "Orchestrator_Settle", o.tracingEnabled, o.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	var (
		roles     []escrow.Role
		pending   escrow.StatusType
		recipient func(*escrow.Order) escrow.Party
	)

	switch action {
	case escrow.ActionRelease:
		roles = []escrow.Role{escrow.RoleSeller, escrow.RoleArbiter}
		pending = escrow.StatusReleasePending
		recipient = (*escrow.Order).Buyer
	case escrow.ActionRefund:
		roles = []escrow.Role{escrow.RoleArbiter}
		pending = escrow.StatusRefundPending
		recipient = (*escrow.Order).Seller
	default:
		return nil, fmt.Errorf("%w: %s", escrow.ErrInvalidAction, action)
	}

	if auth.CallerPubKey == "" || auth.CallerSig == "" {
		return nil, fmt.Errorf("%w: missing caller signature", escrow.ErrValidation)
	}

	order, err := o.Authorize(ctx, id, caller, roles...)
	if err != nil {
		return nil, err
	}

	history, err := o.history(ctx, id)
	if err != nil {
		return nil, err
	}

	err = escrow.CheckCurrent(history, pending)
	if err != nil {
		return nil, err
	}

	result, err = o.gateway.SignSpend(ctx, gateway.SpendRequest{
		Action:           action,
		Keys:             contractParties(order),
		CallerPubKey:     auth.CallerPubKey,
		CallerSig:        auth.CallerSig,
		RecipientAddress: recipient(order).Address,
		ArbiterAddress:   order.Arbiter.Address,
		Amount:           order.CryptoAmount,
	})
	if err != nil {
		return nil, err
	}

	o.enqueueVerification(ctx, VerifyJob{OrderID: id, Action: action, TxID: result.TxID})

	return result, nil
}

// EnqueueVerification queues a transaction for asynchronous verification.
func (o *Orchestrator) EnqueueVerification(ctx context.Context, job VerifyJob) error {
	if !job.Action.Valid() {
		return fmt.Errorf("%w: %s", escrow.ErrInvalidAction, job.Action)
	}

	err := ValidateTxID(job.TxID)
	if err != nil {
		return err
	}

	if o.jobs == nil {
		return fmt.Errorf("%w: no job queue configured", escrow.ErrTransientInfra)
	}

	err = o.jobs.PublishJSON(ctx, VerifyTopic, job)
	if err != nil {
		return fmt.Errorf("%w: %v", escrow.ErrTransientInfra, err)
	}

	return nil
}

func (o *Orchestrator) enqueueVerification(ctx context.Context, job VerifyJob) {
	err := o.EnqueueVerification(ctx, job)
	if err != nil {
		o.logger.Warn("failed to queue verification", slog.Int64("id", job.OrderID), slog.String("txid", job.TxID), slog.String("err", err.Error()))
	}
}

// JobForAddress resolves a transaction seen on a contract address to the verification it completes. The
// action follows from the status the order is waiting in.
func (o *Orchestrator) JobForAddress(ctx context.Context, address, txID string) (*VerifyJob, error) {
	err := ValidateTxID(txID)
	if err != nil {
		return nil, err
	}

	contract, err := o.store.GetContractByAddress(ctx, address)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown contract address %s", escrow.ErrOrderNotFound, address)
	}
	if err != nil {
		return nil, storeError(err)
	}

	history, err := o.history(ctx, contract.OrderID)
	if err != nil {
		return nil, err
	}

	latest := escrow.Latest(history)
	if latest == nil {
		return nil, fmt.Errorf("%w: order has no status", escrow.ErrUnexpectedStatus)
	}

	job := &VerifyJob{OrderID: contract.OrderID, TxID: txID}
	switch latest.Status {
	case escrow.StatusEscrowPending:
		job.Action = escrow.ActionEscrow
	case escrow.StatusReleasePending, escrow.StatusReleased:
		job.Action = escrow.ActionRelease
	case escrow.StatusRefundPending, escrow.StatusRefunded:
		job.Action = escrow.ActionRefund
	default:
		return nil, fmt.Errorf("%w: no transaction expected in status %s", escrow.ErrUnexpectedStatus, latest.Status)
	}

	return job, nil
}
