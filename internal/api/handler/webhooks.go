package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rampp2p/escrow/internal/lifecycle"
	"github.com/rampp2p/escrow/internal/tracing"
)

type TransactionWebhookRequest struct {
	Address string `json:"address"`
	TxID    string `json:"txid"`
}

// POSTTransactionWebhook receives address activity from the chain watcher. The transaction is queued
// for verification against the order owning the contract address.
func (h *EscrowHandler) POSTTransactionWebhook(ctx echo.Context) (err error) {
	const operation = "POSTTransactionWebhook"
	reqCtx, span := tracing.StartTracing(ctx.Request().Context(), operation, h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	var req TransactionWebhookRequest
	err = bind(ctx, &req)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	err = lifecycle.ValidateTxID(req.TxID)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	job, err := h.orders.JobForAddress(reqCtx, req.Address, req.TxID)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	err = h.orders.EnqueueVerification(reqCtx, *job)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	h.logger.InfoContext(reqCtx, "transaction queued for verification", slog.Int64("order", job.OrderID), slog.String("action", string(job.Action)), slog.String("txid", job.TxID))

	return h.respond(ctx, operation, http.StatusAccepted, nil)
}
