package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/chain"
	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/fees"
	"github.com/rampp2p/escrow/internal/gateway"
	"github.com/rampp2p/escrow/internal/verifier"
)

const (
	VerifyTopic = "verify-tx"

	defaultChainTimeout   = 10 * time.Second
	defaultAppealCooldown = 60 * time.Minute
)

// Notifier receives the outcome of every attempted transition.
type Notifier interface {
	Result(ctx context.Context, orderID int64, status escrow.StatusType, err error)
	Push(ctx context.Context, message string, extra map[string]any, walletHashes ...string)
}

type JobPublisher interface {
	PublishJSON(ctx context.Context, topic string, v any) error
}

// VerifyJob asks a worker to verify a settlement transaction of an order.
type VerifyJob struct {
	OrderID int64             `json:"order_id"`
	Action  escrow.ActionType `json:"action"`
	TxID    string            `json:"txid"`
}

type Orchestrator struct {
	store    store.EscrowStore
	gateway  gateway.ContractGateway
	txSource chain.TxSource
	verifier *verifier.Verifier
	notifier Notifier
	fees     fees.Schedule
	logger   *slog.Logger

	jobs           JobPublisher
	stats          *Stats
	now            func() time.Time
	chainTimeout   time.Duration
	appealCooldown time.Duration

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func New(logger *slog.Logger, s store.EscrowStore, gw gateway.ContractGateway, txSource chain.TxSource, v *verifier.Verifier,
	n Notifier, schedule fees.Schedule, opts ...func(*Orchestrator)) *Orchestrator {
	o := &Orchestrator{
		store:          s,
		gateway:        gw,
		txSource:       txSource,
		verifier:       v,
		notifier:       n,
		fees:           schedule,
		logger:         logger.With(slog.String("module", "lifecycle")),
		now:            time.Now,
		chainTimeout:   defaultChainTimeout,
		appealCooldown: defaultAppealCooldown,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Now is the orchestrator's clock.
func (o *Orchestrator) Now() time.Time {
	return o.now()
}

// Authorize loads the order and checks that caller plays one of roles in it.
func (o *Orchestrator) Authorize(ctx context.Context, id int64, caller string, roles ...escrow.Role) (*escrow.Order, error) {
	order, err := o.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	err = permit(order, caller, roles...)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (o *Orchestrator) loadOrder(ctx context.Context, id int64) (*escrow.Order, error) {
	order, err := o.store.GetOrder(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return order, nil
}

func (o *Orchestrator) history(ctx context.Context, id int64) ([]escrow.Status, error) {
	history, err := o.store.GetStatusHistory(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return history, nil
}

func permit(order *escrow.Order, caller string, roles ...escrow.Role) error {
	role := order.RoleOf(caller)
	if role == escrow.RoleNone {
		return escrow.ErrPermissionDenied
	}

	for _, r := range roles {
		if r == role {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", escrow.ErrPermissionDenied, role)
}

// storeError maps store failures onto the error taxonomy. Errors that already carry a category pass through.
func storeError(err error) error {
	switch {
	case errors.Is(err, escrow.ErrStateConflict), errors.Is(err, escrow.ErrValidation), errors.Is(err, escrow.ErrTransientInfra):
		return err
	case errors.Is(err, store.ErrNotFound):
		return escrow.ErrOrderNotFound
	case errors.Is(err, store.ErrAppealExists):
		return fmt.Errorf("%w: %v", escrow.ErrDuplicateStatus, err)
	case errors.Is(err, store.ErrContractExists):
		return fmt.Errorf("%w: %v", escrow.ErrInvalidOrder, err)
	}

	return errors.Join(escrow.ErrStoreUnavailable, err)
}

func (o *Orchestrator) target(order *escrow.Order, contract *escrow.Contract, action escrow.ActionType) verifier.Target {
	return verifier.Target{
		Action:          action,
		ContractAddress: contract.Address,
		ContractVersion: contract.Version,
		Amount:          order.CryptoAmount,
		ArbiterAddress:  order.Arbiter.Address,
		BuyerAddress:    order.Buyer().Address,
		SellerAddress:   order.Seller().Address,
	}
}

// pushStatus notifies the peers of the order about a new status, except the wallet that caused it.
func (o *Orchestrator) pushStatus(ctx context.Context, order *escrow.Order, status escrow.StatusType, caller string) {
	recipients := make([]string, 0, 2)
	for _, p := range []escrow.Party{order.Buyer(), order.Seller()} {
		if p.WalletHash != caller {
			recipients = append(recipients, p.WalletHash)
		}
	}

	o.notifier.Push(ctx, fmt.Sprintf("Order #%d %s", order.ID, status.String()),
		map[string]any{"order_id": order.ID, "status": status}, recipients...)
}
