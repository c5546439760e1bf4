package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/appeal"
	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/gateway"
	"github.com/rampp2p/escrow/internal/lifecycle"
	"github.com/rampp2p/escrow/internal/tracing"
)

var (
	ErrInvalidOrderID     = fmt.Errorf("%w: invalid order id", escrow.ErrValidation)
	ErrInvalidRequestBody = fmt.Errorf("%w: invalid request body", escrow.ErrValidation)
	ErrInvalidQuery       = fmt.Errorf("%w: invalid query parameter", escrow.ErrValidation)
)

var (
	_ OrderService  = (*lifecycle.Orchestrator)(nil)
	_ AppealService = (*appeal.Handler)(nil)
)

type OrderService interface {
	CreateOrder(ctx context.Context, caller string, req lifecycle.NewOrder) (*store.OrderRecord, error)
	GetOrderDetails(ctx context.Context, id int64, caller string) (*lifecycle.OrderDetails, error)
	Authorize(ctx context.Context, id int64, caller string, roles ...escrow.Role) (*escrow.Order, error)
	MarkConfirmed(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	MarkEscrowPending(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	MarkPaidPending(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	MarkPaid(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	Cancel(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	RequestRelease(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	RequestRefund(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	VerifyEscrow(ctx context.Context, id int64, txID string) (*store.AppendResult, error)
	Settle(ctx context.Context, id int64, caller string, action escrow.ActionType, auth lifecycle.SpendAuthorization) (*gateway.SpendResult, error)
	MarkStatusesRead(ctx context.Context, id int64, caller string) (int64, error)
	JobForAddress(ctx context.Context, address, txID string) (*lifecycle.VerifyJob, error)
	EnqueueVerification(ctx context.Context, job lifecycle.VerifyJob) error
}

type AppealService interface {
	CreateAppeal(ctx context.Context, id int64, caller string, appealType escrow.AppealType, reasons []string) (*store.AppendResult, error)
	GetAppeal(ctx context.Context, id int64, caller string) (*escrow.Appeal, error)
	ListAppeals(ctx context.Context, caller string, state store.AppealState, limit, page int) (*appeal.Page, error)
	MarkPendingRelease(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	MarkPendingRefund(ctx context.Context, id int64, caller string) (*escrow.Status, error)
	VerifyRelease(ctx context.Context, id int64, caller, txID string) (*store.AppendResult, error)
	VerifyRefund(ctx context.Context, id int64, caller, txID string) (*store.AppendResult, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type EscrowHandler struct {
	orders  OrderService
	appeals AppealService
	health  HealthChecker
	logger  *slog.Logger
	stats   *Stats

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithTracer(attr ...attribute.KeyValue) func(*EscrowHandler) {
	return func(h *EscrowHandler) {
		h.tracingEnabled = true
		h.tracingAttributes = tracing.CallerAttributes(attr...)
	}
}

func WithStats(stats *Stats) func(*EscrowHandler) {
	return func(h *EscrowHandler) {
		h.stats = stats
	}
}

type Option func(h *EscrowHandler)

func New(logger *slog.Logger, orders OrderService, appeals AppealService, health HealthChecker, opts ...Option) *EscrowHandler {
	h := &EscrowHandler{
		orders:  orders,
		appeals: appeals,
		health:  health,
		logger:  logger.With(slog.String("module", "api")),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// RegisterRoutes adds all endpoints to e. Every endpoint except health and the transaction webhook
// requires the caller to pass auth.
func (h *EscrowHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", h.GETHealth)
	e.POST("/webhooks/transactions", h.POSTTransactionWebhook)

	e.POST("/orders", h.POSTOrder, auth)
	e.GET("/orders/:id", h.GETOrder, auth)
	e.POST("/orders/:id/confirm", h.statusChange("POSTConfirm", h.orders.MarkConfirmed), auth)
	e.POST("/orders/:id/escrow-pending", h.statusChange("POSTEscrowPending", h.orders.MarkEscrowPending), auth)
	e.POST("/orders/:id/paid-pending", h.statusChange("POSTPaidPending", h.orders.MarkPaidPending), auth)
	e.POST("/orders/:id/paid", h.statusChange("POSTPaid", h.orders.MarkPaid), auth)
	e.POST("/orders/:id/cancel", h.statusChange("POSTCancel", h.orders.Cancel), auth)
	e.POST("/orders/:id/release", h.statusChange("POSTRelease", h.orders.RequestRelease), auth)
	e.POST("/orders/:id/refund", h.statusChange("POSTRefund", h.orders.RequestRefund), auth)
	e.POST("/orders/:id/verify-escrow", h.POSTVerifyEscrow, auth)
	e.POST("/orders/:id/settle", h.POSTSettle, auth)
	e.POST("/orders/:id/statuses/read", h.POSTStatusesRead, auth)

	e.POST("/orders/:id/appeal", h.POSTAppeal, auth)
	e.GET("/orders/:id/appeal", h.GETAppeal, auth)
	e.GET("/appeals", h.GETAppeals, auth)
	e.POST("/orders/:id/appeal/pending-release", h.statusChange("POSTPendingRelease", h.appeals.MarkPendingRelease), auth)
	e.POST("/orders/:id/appeal/pending-refund", h.statusChange("POSTPendingRefund", h.appeals.MarkPendingRefund), auth)
	e.POST("/orders/:id/verify-release", h.verifySettlement("POSTVerifyRelease", h.appeals.VerifyRelease), auth)
	e.POST("/orders/:id/verify-refund", h.verifySettlement("POSTVerifyRefund", h.appeals.VerifyRefund), auth)
}

func (h *EscrowHandler) GETHealth(ctx echo.Context) error {
	err := h.health.Ping(ctx.Request().Context())
	if err != nil {
		return h.fail(ctx, "GETHealth", errors.Join(escrow.ErrStoreUnavailable, err))
	}

	return h.respond(ctx, "GETHealth", http.StatusOK, HealthResponse{Status: "ok"})
}

// respond writes a successful response and counts it.
func (h *EscrowHandler) respond(ctx echo.Context, operation string, code int, body any) error {
	h.stats.request(operation, code)
	if body == nil {
		return ctx.NoContent(code)
	}
	return ctx.JSON(code, body)
}

// fail writes err as a structured error response.
func (h *EscrowHandler) fail(ctx echo.Context, operation string, err error) error {
	code, body := errorResponse(err)
	h.stats.request(operation, code)

	if code >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx.Request().Context(), "request failed", slog.String("operation", operation), slog.Int("code", code), slog.String("err", err.Error()))
	} else {
		h.logger.DebugContext(ctx.Request().Context(), "request rejected", slog.String("operation", operation), slog.Int("code", code), slog.String("err", err.Error()))
	}

	return ctx.JSON(code, body)
}

func orderID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrderID, ctx.Param("id"))
	}
	return id, nil
}

func bind(ctx echo.Context, v any) error {
	err := ctx.Bind(v)
	if err != nil {
		return errors.Join(ErrInvalidRequestBody, err)
	}
	return nil
}
