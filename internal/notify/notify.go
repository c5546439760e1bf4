package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/tracing"
)

const (
	PushTopic        = "push-notifications"
	orderTopicPrefix = "order-update-"
)

// OrderTopic is the subject that receives the updates of one order.
func OrderTopic(orderID int64) string {
	return orderTopicPrefix + strconv.FormatInt(orderID, 10)
}

type Publisher interface {
	PublishJSON(ctx context.Context, topic string, v any) error
}

type OrderUpdate struct {
	Success bool              `json:"success"`
	Status  escrow.StatusType `json:"status,omitempty"`
	Error   string            `json:"error,omitempty"`
	Extra   map[string]any    `json:"extra,omitempty"`
}

type Push struct {
	Recipients []string       `json:"recipients"`
	Message    string         `json:"message"`
	Extra      map[string]any `json:"extra,omitempty"`
}

// Notifier publishes order updates and push notifications. Delivery is best effort: publish failures are logged
// and never fail the operation that triggered them.
type Notifier struct {
	publisher Publisher
	logger    *slog.Logger

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithTracer(attr ...attribute.KeyValue) func(*Notifier) {
	return func(n *Notifier) {
		n.tracingEnabled = true
		n.tracingAttributes = tracing.CallerAttributes(attr...)
	}
}

func New(publisher Publisher, logger *slog.Logger, opts ...func(*Notifier)) *Notifier {
	n := &Notifier{
		publisher: publisher,
		logger:    logger.With(slog.String("module", "notify")),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// StatusChanged announces a new status of the order.
func (n *Notifier) StatusChanged(ctx context.Context, orderID int64, status escrow.StatusType) {
	n.publish(ctx, OrderTopic(orderID), OrderUpdate{Success: true, Status: status})
}

// Failed announces that an attempted transition of the order failed.
func (n *Notifier) Failed(ctx context.Context, orderID int64, err error) {
	n.publish(ctx, OrderTopic(orderID), OrderUpdate{Success: false, Error: err.Error()})
}

// Result publishes exactly one update for an attempted transition.
func (n *Notifier) Result(ctx context.Context, orderID int64, status escrow.StatusType, err error) {
	if err != nil {
		n.Failed(ctx, orderID, err)
		return
	}
	n.StatusChanged(ctx, orderID, status)
}

// AppealWindowOpen announces that the payment window of the order elapsed.
func (n *Notifier) AppealWindowOpen(ctx context.Context, order escrow.Order) {
	n.publish(ctx, OrderTopic(order.ID), OrderUpdate{Success: true, Extra: map[string]any{"appealable": true}})
	n.Push(ctx, fmt.Sprintf("Order #%d can now be appealed", order.ID), map[string]any{"order_id": order.ID},
		order.Owner.WalletHash, order.Counterparty.WalletHash)
}

// Push sends a push notification to the wallets. Empty wallet hashes are dropped.
func (n *Notifier) Push(ctx context.Context, message string, extra map[string]any, walletHashes ...string) {
	recipients := make([]string, 0, len(walletHashes))
	for _, w := range walletHashes {
		if w != "" {
			recipients = append(recipients, w)
		}
	}

	if len(recipients) == 0 {
		return
	}

	n.publish(ctx, PushTopic, Push{Recipients: recipients, Message: message, Extra: extra})
}

func (n *Notifier) publish(ctx context.Context, topic string, v any) {
	var err error
	ctx, span := tracing.StartTracing(ctx, "Notifier_publish", n.tracingEnabled, append(n.tracingAttributes, attribute.String("topic", topic))...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	err = n.publisher.PublishJSON(ctx, topic, v)
	if err != nil {
		n.logger.Warn("failed to publish notification", slog.String("topic", topic), slog.String("err", err.Error()))
	}
}
