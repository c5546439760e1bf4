package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/tracing"
)

type AppealRequest struct {
	Type    escrow.AppealType `json:"type"`
	Reasons []string          `json:"reasons"`
}

type AppealResponse struct {
	Appeal *escrow.Appeal `json:"appeal"`
	Status *escrow.Status `json:"status,omitempty"`
}

func (h *EscrowHandler) POSTAppeal(ctx echo.Context) (err error) {
	const operation = "POSTAppeal"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	id, err := orderID(ctx)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	var req AppealRequest
	err = bind(ctx, &req)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	result, err := h.appeals.CreateAppeal(reqCtx, id, callerFrom(ctx), req.Type, req.Reasons)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	return h.respond(ctx, operation, http.StatusOK, AppealResponse{Appeal: result.Appeal, Status: &result.Status})
}

func (h *EscrowHandler) GETAppeal(ctx echo.Context) (err error) {
	const operation = "GETAppeal"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	id, err := orderID(ctx)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	a, err := h.appeals.GetAppeal(reqCtx, id, callerFrom(ctx))
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	return h.respond(ctx, operation, http.StatusOK, AppealResponse{Appeal: a})
}

// GETAppeals lists the appeals arbitrated by the caller.
func (h *EscrowHandler) GETAppeals(ctx echo.Context) (err error) {
	const operation = "GETAppeals"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	limit, err := intQuery(ctx, "limit")
	if err != nil {
		return h.fail(ctx, operation, err)
	}
	page, err := intQuery(ctx, "page")
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	result, err := h.appeals.ListAppeals(reqCtx, callerFrom(ctx), store.AppealState(ctx.QueryParam("state")), limit, page)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	return h.respond(ctx, operation, http.StatusOK, result)
}

func intQuery(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, name, raw)
	}
	return v, nil
}
