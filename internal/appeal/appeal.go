package appeal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/lifecycle"
	"github.com/rampp2p/escrow/internal/tracing"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

var (
	ErrAppealNotFound = fmt.Errorf("%w: appeal not found", escrow.ErrValidation)
	ErrInvalidPage    = fmt.Errorf("%w: invalid page", escrow.ErrValidation)
	ErrInvalidState   = fmt.Errorf("%w: invalid appeal state", escrow.ErrValidation)
)

type Page struct {
	Appeals    []escrow.Appeal `json:"appeals"`
	Count      int64           `json:"count"`
	TotalPages int64           `json:"total_pages"`
}

// Handler runs the appeal process of expired orders and the arbiter's decisions on them.
type Handler struct {
	orchestrator *lifecycle.Orchestrator
	store        store.EscrowStore
	notifier     lifecycle.Notifier
	logger       *slog.Logger

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithTracer(attr ...attribute.KeyValue) func(*Handler) {
	return func(h *Handler) {
		h.tracingEnabled = true
		h.tracingAttributes = tracing.CallerAttributes(attr...)
	}
}

func New(logger *slog.Logger, o *lifecycle.Orchestrator, s store.EscrowStore, n lifecycle.Notifier, opts ...func(*Handler)) *Handler {
	h := &Handler{
		orchestrator: o,
		store:        s,
		notifier:     n,
		logger:       logger.With(slog.String("module", "appeal")),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// CreateAppeal appeals an expired order on behalf of one of its peers. The seller may not appeal an order they
// already marked paid.
func (h *Handler) CreateAppeal(ctx context.Context, id int64, caller string, appealType escrow.AppealType, reasons []string) (result *store.AppendResult, err error) {
	ctx, span := tracing.StartTracing(ctx, "Handler_CreateAppeal", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	order, err := h.precheckAppeal(ctx, id, caller, appealType)
	if err != nil {
		h.notifier.Result(ctx, id, escrow.StatusAppealed, err)
		return nil, err
	}

	result, err = h.orchestrator.Transition(ctx, store.StatusUpdate{
		OrderID: id,
		Status:  escrow.StatusAppealed,
		Expect:  escrow.AppealableStatuses,
		Appeal: &escrow.Appeal{
			Owner:   caller,
			Type:    appealType,
			Reasons: cleanReasons(reasons),
		},
	}, caller)
	if err != nil {
		return nil, err
	}

	recipients := []string{order.Arbiter.WalletHash}
	if other := order.Other(caller); other != nil {
		recipients = append(recipients, other.WalletHash)
	}
	h.notifier.Push(ctx, fmt.Sprintf("Order #%d appealed", id), map[string]any{"order_id": id, "appeal_type": appealType},
		recipients...)
	h.logger.Info("order appealed", slog.Int64("id", id), slog.String("type", string(appealType)))

	return result, nil
}

func (h *Handler) precheckAppeal(ctx context.Context, id int64, caller string, appealType escrow.AppealType) (*escrow.Order, error) {
	if !appealType.Valid() {
		return nil, fmt.Errorf("%w: %s", escrow.ErrInvalidAppealType, appealType)
	}

	order, err := h.orchestrator.Authorize(ctx, id, caller, escrow.RoleBuyer, escrow.RoleSeller)
	if err != nil {
		return nil, err
	}

	if !h.orchestrator.IsOrderExpired(order) {
		return nil, escrow.ErrOrderNotExpired
	}

	history, err := h.store.GetStatusHistory(ctx, id)
	if err != nil {
		return nil, errors.Join(escrow.ErrStoreUnavailable, err)
	}

	latest := escrow.Latest(history)
	if latest != nil && latest.Status == escrow.StatusPaid && order.RoleOf(caller) == escrow.RoleSeller {
		return nil, fmt.Errorf("%w: seller confirmed the payment", escrow.ErrPermissionDenied)
	}

	return order, nil
}

// MarkPendingRelease is the arbiter deciding an appeal for the buyer.
func (h *Handler) MarkPendingRelease(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return h.decide(ctx, id, caller, escrow.StatusReleasePending, escrow.ActionRelease)
}

// MarkPendingRefund is the arbiter deciding an appeal for the seller.
func (h *Handler) MarkPendingRefund(ctx context.Context, id int64, caller string) (*escrow.Status, error) {
	return h.decide(ctx, id, caller, escrow.StatusRefundPending, escrow.ActionRefund)
}

func (h *Handler) decide(ctx context.Context, id int64, caller string, status escrow.StatusType, action escrow.ActionType) (s *escrow.Status, err error) {
	ctx, span := tracing.StartTracing(ctx, "Handler_decide", h.tracingEnabled, append(h.tracingAttributes, attribute.String("status", string(status)))...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	_, err = h.orchestrator.Authorize(ctx, id, caller, escrow.RoleArbiter)
	if err != nil {
		h.notifier.Result(ctx, id, status, err)
		return nil, err
	}

	result, err := h.orchestrator.Transition(ctx, store.StatusUpdate{
		OrderID: id,
		Status:  status,
		Expect:  []escrow.StatusType{escrow.StatusAppealed},
		Pending: action,
	}, caller)
	if err != nil {
		return nil, err
	}

	return &result.Status, nil
}

// VerifyRelease verifies the release transaction of an order the arbiter or the seller released.
func (h *Handler) VerifyRelease(ctx context.Context, id int64, caller, txID string) (*store.AppendResult, error) {
	_, err := h.orchestrator.Authorize(ctx, id, caller, escrow.RoleArbiter, escrow.RoleSeller)
	if err != nil {
		h.notifier.Result(ctx, id, escrow.StatusReleased, err)
		return nil, err
	}

	return h.orchestrator.VerifyCompletion(ctx, id, escrow.ActionRelease, txID, escrow.StatusReleasePending, escrow.StatusPaid)
}

// VerifyRefund verifies the refund transaction of an order the arbiter refunded.
func (h *Handler) VerifyRefund(ctx context.Context, id int64, caller, txID string) (*store.AppendResult, error) {
	_, err := h.orchestrator.Authorize(ctx, id, caller, escrow.RoleArbiter)
	if err != nil {
		h.notifier.Result(ctx, id, escrow.StatusRefunded, err)
		return nil, err
	}

	return h.orchestrator.VerifyCompletion(ctx, id, escrow.ActionRefund, txID, escrow.StatusRefundPending)
}

func (h *Handler) GetAppeal(ctx context.Context, id int64, caller string) (*escrow.Appeal, error) {
	_, err := h.orchestrator.Authorize(ctx, id, caller, escrow.RoleBuyer, escrow.RoleSeller, escrow.RoleArbiter)
	if err != nil {
		return nil, err
	}

	a, err := h.store.GetAppeal(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrAppealNotFound
	}
	if err != nil {
		return nil, errors.Join(escrow.ErrStoreUnavailable, err)
	}

	return a, nil
}

// ListAppeals returns a page of the appeals the caller arbitrates. Pages start at 1.
func (h *Handler) ListAppeals(ctx context.Context, caller string, state store.AppealState, limit, page int) (*Page, error) {
	if caller == "" {
		return nil, escrow.ErrPermissionDenied
	}

	switch state {
	case store.AppealStateAny, store.AppealStatePending, store.AppealStateResolved:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, state)
	}

	if page == 0 {
		page = 1
	}
	if page < 0 || limit < 0 {
		return nil, ErrInvalidPage
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)

	appeals, count, err := h.store.ListAppeals(ctx, store.AppealFilter{
		Arbiter: caller,
		State:   state,
		Limit:   limit,
		Offset:  (page - 1) * limit,
	})
	if err != nil {
		return nil, errors.Join(escrow.ErrStoreUnavailable, err)
	}

	l := int64(limit)
	return &Page{
		Appeals:    appeals,
		Count:      count,
		TotalPages: (count + l - 1) / l,
	}, nil
}

func cleanReasons(reasons []string) []string {
	cleaned := make([]string, 0, len(reasons))
	for _, r := range reasons {
		r = strings.TrimSpace(r)
		if r != "" {
			cleaned = append(cleaned, r)
		}
	}
	return cleaned
}
