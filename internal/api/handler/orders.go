package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/lifecycle"
	"github.com/rampp2p/escrow/internal/tracing"
)

type OrderResponse struct {
	Order    escrow.Order    `json:"order"`
	Contract escrow.Contract `json:"contract"`
	Status   escrow.Status   `json:"status"`
}

type StatusResponse struct {
	Success bool           `json:"success"`
	Status  *escrow.Status `json:"status"`
}

type TxRequest struct {
	TxID string `json:"txid"`
}

type SettleRequest struct {
	Action       escrow.ActionType `json:"action"`
	CallerPubKey string            `json:"caller_pubkey"`
	CallerSig    string            `json:"caller_sig"`
}

type SettleResponse struct {
	TxID string `json:"txid"`
}

type StatusesReadResponse struct {
	Updated int64 `json:"updated"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *EscrowHandler) POSTOrder(ctx echo.Context) (err error) {
	const operation = "POSTOrder"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	var req lifecycle.NewOrder
	err = bind(ctx, &req)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	record, err := h.orders.CreateOrder(reqCtx, callerFrom(ctx), req)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	return h.respond(ctx, operation, http.StatusOK, OrderResponse{
		Order:    record.Order,
		Contract: record.Contract,
		Status:   record.Status,
	})
}

func (h *EscrowHandler) GETOrder(ctx echo.Context) (err error) {
	const operation = "GETOrder"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	id, err := orderID(ctx)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	details, err := h.orders.GetOrderDetails(reqCtx, id, callerFrom(ctx))
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	return h.respond(ctx, operation, http.StatusOK, details)
}

// statusChange serves an endpoint that appends a status without a request body.
func (h *EscrowHandler) statusChange(operation string, change func(ctx context.Context, id int64, caller string) (*escrow.Status, error)) echo.HandlerFunc {
	return func(ctx echo.Context) (err error) {
		reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
		defer func() {
			tracing.EndTracing(span, err)
		}()

		id, err := orderID(ctx)
		if err != nil {
			return h.fail(ctx, operation, err)
		}

		status, err := change(reqCtx, id, callerFrom(ctx))
		if err != nil {
			return h.fail(ctx, operation, err)
		}

		return h.respond(ctx, operation, http.StatusOK, StatusResponse{Success: true, Status: status})
	}
}

// POSTVerifyEscrow checks the funding transaction of an order. Any party of the order may submit it.
func (h *EscrowHandler) POSTVerifyEscrow(ctx echo.Context) (err error) {
	const operation = "POSTVerifyEscrow"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	id, err := orderID(ctx)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	var req TxRequest
	err = bind(ctx, &req)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	_, err = h.orders.Authorize(reqCtx, id, callerFrom(ctx), escrow.RoleBuyer, escrow.RoleSeller, escrow.RoleArbiter)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	result, err := h.orders.VerifyEscrow(reqCtx, id, req.TxID)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	return h.respond(ctx, operation, http.StatusOK, StatusResponse{Success: true, Status: &result.Status})
}

func (h *EscrowHandler) POSTSettle(ctx echo.Context) (err error) {
	const operation = "POSTSettle"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	id, err := orderID(ctx)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	var req SettleRequest
	err = bind(ctx, &req)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	result, err := h.orders.Settle(reqCtx, id, callerFrom(ctx), req.Action, lifecycle.SpendAuthorization{
		CallerPubKey: req.CallerPubKey,
		CallerSig:    req.CallerSig,
	})
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	return h.respond(ctx, operation, http.StatusAccepted, SettleResponse{TxID: result.TxID})
}

func (h *EscrowHandler) POSTStatusesRead(ctx echo.Context) (err error) {
	const operation = "POSTStatusesRead"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	id, err := orderID(ctx)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	updated, err := h.orders.MarkStatusesRead(reqCtx, id, callerFrom(ctx))
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	return h.respond(ctx, operation, http.StatusOK, StatusesReadResponse{Updated: updated})
}

// verifySettlement serves the arbitration endpoints that check a release or refund transaction.
func (h *EscrowHandler) verifySettlement(operation string, verify func(ctx context.Context, id int64, caller, txID string) (*store.AppendResult, error)) echo.HandlerFunc {
	return func(ctx echo.Context) (err error) {
		reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
		defer func() {
			tracing.EndTracing(span, err)
		}()

		id, err := orderID(ctx)
		if err != nil {
			return h.fail(ctx, operation, err)
		}

		var req TxRequest
		err = bind(ctx, &req)
		if err != nil {
			return h.fail(ctx, operation, err)
		}

		_, err = verify(reqCtx, id, callerFrom(ctx), req.TxID)
		if err != nil {
			return h.fail(ctx, operation, err)
		}

		return h.respond(ctx, operation, http.StatusOK, nil)
	}
}
