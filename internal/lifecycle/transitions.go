package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/gateway"
	"github.com/rampp2p/escrow/internal/tracing"
)

// NewOrder is an order request of the owner against an ad of the counterparty.
type NewOrder struct {
	Owner        escrow.Party     `json:"owner"`
	Counterparty escrow.Party     `json:"counterparty"`
	Arbiter      escrow.Party     `json:"arbiter"`
	CryptoAmount uint64           `json:"crypto_amount"`
	FiatCurrency string           `json:"fiat_currency"`
	TradeType    escrow.TradeType `json:"trade_type"`
	TimeDuration int64            `json:"time_duration"`
}

// CreateOrder compiles the escrow contract of a new order and stores the order as SUBMITTED. Caller must be
// the order owner, the peer taking the counterparty's ad. The owner is the buyer of a SELL ad and the seller of
// a BUY ad.
func (o *Orchestrator) CreateOrder(ctx context.Context, caller string, req NewOrder) (record *store.OrderRecord, err error) {
	ctx, span := tracing.StartTracing(ctx, "Orchestrator_CreateOrder", o.tracingEnabled, o.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	order := escrow.Order{
		Owner:        req.Owner,
		Counterparty: req.Counterparty,
		Arbiter:      req.Arbiter,
		CryptoAmount: req.CryptoAmount,
		FiatCurrency: req.FiatCurrency,
		TradeType:    req.TradeType,
		TimeDuration: req.TimeDuration,
	}

	err = order.Validate()
	if err != nil {
		return nil, err
	}

	if caller == "" || caller != order.Owner.WalletHash {
		return nil, escrow.ErrPermissionDenied
	}

	for _, p := range []escrow.Party{order.Owner, order.Counterparty, order.Arbiter} {
		if p.PublicKey == "" || p.Address == "" {
			return nil, fmt.Errorf("%w: missing public key or address of %s", escrow.ErrInvalidOrder, p.WalletHash)
		}
	}

	compiled, err := o.gateway.Compile(ctx, contractParties(&order))
	if err != nil {
		return nil, err
	}

	_, err = o.fees.Fees(order.CryptoAmount, compiled.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", escrow.ErrInvalidOrder, err)
	}

	record, err = o.store.CreateOrder(ctx, order, escrow.Contract{Address: compiled.Address, Version: compiled.Version})
	if err != nil {
		return nil, storeError(err)
	}

	o.stats.statusAppended(escrow.StatusSubmitted, nil)
	o.notifier.Result(ctx, record.Order.ID, escrow.StatusSubmitted, nil)
	o.notifier.Push(ctx, fmt.Sprintf("New order #%d", record.Order.ID), map[string]any{"order_id": record.Order.ID},
		record.Order.Counterparty.WalletHash)

	o.logger.Info("order created", slog.Int64("id", record.Order.ID), slog.String("contract", compiled.Address))

	return record, nil
}

// MarkConfirmed is the ad owner accepting the order.
func (o *Orchestrator) MarkConfirmed(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return o.transition(ctx, "MarkConfirmed", id, caller, isCounterparty, store.StatusUpdate{Status: escrow.StatusConfirmed})
}

// MarkEscrowPending is the seller announcing the escrow transaction. It creates the pending escrow transaction.
func (o *Orchestrator) MarkEscrowPending(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return o.transition(ctx, "MarkEscrowPending", id, caller, hasRole(escrow.RoleSeller), store.StatusUpdate{
		Status:  escrow.StatusEscrowPending,
		Pending: escrow.ActionEscrow,
	})
}

// MarkPaidPending is the buyer announcing the fiat payment.
func (o *Orchestrator) MarkPaidPending(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return o.transition(ctx, "MarkPaidPending", id, caller, hasRole(escrow.RoleBuyer), store.StatusUpdate{Status: escrow.StatusPaidPending})
}

// MarkPaid is the seller confirming receipt of the fiat payment.
func (o *Orchestrator) MarkPaid(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return o.transition(ctx, "MarkPaid", id, caller, hasRole(escrow.RoleSeller), store.StatusUpdate{Status: escrow.StatusPaid})
}

func (o *Orchestrator) Cancel(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return o.transition(ctx, "Cancel", id, caller, hasRole(escrow.RoleBuyer, escrow.RoleSeller), store.StatusUpdate{Status: escrow.StatusCanceled})
}

// RequestRelease moves the order to RELEASE_PENDING. The seller may release a paid order, the arbiter only an
// appealed one.
func (o *Orchestrator) RequestRelease(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return o.transitionFunc(ctx, "RequestRelease", id, caller, func(order *escrow.Order) (*store.StatusUpdate, error) {
		update := &store.StatusUpdate{Status: escrow.StatusReleasePending, Pending: escrow.ActionRelease}

		switch order.RoleOf(caller) {
		case escrow.RoleSeller:
			update.Expect = []escrow.StatusType{escrow.StatusPaid}
		case escrow.RoleArbiter:
			update.Expect = []escrow.StatusType{escrow.StatusAppealed}
		default:
			return nil, escrow.ErrPermissionDenied
		}

		return update, nil
	})
}

// RequestRefund moves an appealed order to REFUND_PENDING. Only the arbiter may refund.
func (o *Orchestrator) RequestRefund(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return o.transition(ctx, "RequestRefund", id, caller, hasRole(escrow.RoleArbiter), store.StatusUpdate{
		Status:  escrow.StatusRefundPending,
		Pending: escrow.ActionRefund,
		Expect:  []escrow.StatusType{escrow.StatusAppealed},
	})
}

// Transition appends update on behalf of caller. Callers that authorize themselves pass an empty caller.
func (o *Orchestrator) Transition(ctx context.Context, update store.StatusUpdate, caller string) (*store.AppendResult, error) {
	var result *store.AppendResult
	_, err := o.transitionFunc(ctx, "Transition", update.OrderID, caller, func(*escrow.Order) (*store.StatusUpdate, error) {
		return &update, nil
	}, func(r *store.AppendResult) {
		result = r
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type permission func(order *escrow.Order, caller string) error

func hasRole(roles ...escrow.Role) permission {
	return func(order *escrow.Order, caller string) error {
		return permit(order, caller, roles...)
	}
}

func isCounterparty(order *escrow.Order, caller string) error {
	if caller == "" || caller != order.Counterparty.WalletHash {
		return escrow.ErrPermissionDenied
	}
	return nil
}

func (o *Orchestrator) transition(ctx context.Context, name string, id int64, caller string, allowed permission, update store.StatusUpdate) (*escrow.Status, error) {
	return o.transitionFunc(ctx, name, id, caller, func(order *escrow.Order) (*store.StatusUpdate, error) {
		err := allowed(order, caller)
		if err != nil {
			return nil, err
		}
		return &update, nil
	})
}

// transitionFunc loads the order, builds the update for it and appends it. The outcome is published once.
func (o *Orchestrator) transitionFunc(ctx context.Context, name string, id int64, caller string,
	build func(order *escrow.Order) (*store.StatusUpdate, error), done ...func(*store.AppendResult)) (status *escrow.Status, err error) {
	ctx, span := tracing.StartTracing(ctx, "Orchestrator_"+name, o.tracingEnabled, o.tracingAttributes...)
	var next escrow.StatusType
	defer func() {
		o.stats.statusAppended(next, err)
		o.notifier.Result(ctx, id, next, err)
		tracing.EndTracing(span, err)
	}()

	order, err := o.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	update, err := build(order)
	if err != nil {
		return nil, err
	}
	update.OrderID = id
	next = update.Status

	result, err := o.store.AppendStatus(ctx, *update)
	if err != nil {
		return nil, storeError(err)
	}

	for _, d := range done {
		d(result)
	}

	o.pushStatus(ctx, order, result.Status.Status, caller)
	o.logger.Info("status appended", slog.Int64("id", id), slog.String("status", string(result.Status.Status)))

	return &result.Status, nil
}

func contractParties(order *escrow.Order) gateway.ContractParties {
	return gateway.ContractParties{
		ArbiterPubKey: order.Arbiter.PublicKey,
		BuyerPubKey:   order.Buyer().PublicKey,
		SellerPubKey:  order.Seller().PublicKey,
	}
}
