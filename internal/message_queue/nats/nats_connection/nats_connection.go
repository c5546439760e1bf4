package nats_connection

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	ErrNatsConnectionFailed = errors.New("failed to connect to NATS server")
	ErrMissingURL           = errors.New("message queue url is empty")
)

// Options control how a connection reconnects. A negative MaxReconnects retries forever.
type Options struct {
	MaxReconnects  int
	ReconnectWait  time.Duration
	PingInterval   time.Duration
	FailFast       bool
	OnClosed       func()
	reconnectBufMB int
}

func defaultOptions() Options {
	return Options{
		MaxReconnects:  -1,
		ReconnectWait:  2 * time.Second,
		PingInterval:   15 * time.Second,
		reconnectBufMB: 8,
	}
}

// WithReconnects limits reconnect attempts to maxReconnects, waiting wait between them.
func WithReconnects(maxReconnects int, wait time.Duration) func(*Options) {
	return func(o *Options) {
		o.MaxReconnects = maxReconnects
		if wait > 0 {
			o.ReconnectWait = wait
		}
	}
}

// WithFailFast makes Connect return an error when the server is not reachable instead of retrying in the
// background. Short-lived commands use it.
func WithFailFast() func(*Options) {
	return func(o *Options) {
		o.FailFast = true
	}
}

// WithOnClosed registers a hook run once the connection is closed for good.
func WithOnClosed(hook func()) func(*Options) {
	return func(o *Options) {
		o.OnClosed = hook
	}
}

// Connect opens a connection named after the escrow component and host. Unless fail fast is requested, a
// server that is not up yet is retried in the background.
func Connect(url string, component string, logger *slog.Logger, opts ...func(*Options)) (*nats.Conn, error) {
	if url == "" {
		return nil, errors.Join(ErrNatsConnectionFailed, ErrMissingURL)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	h := connectionLogger{logger: logger.With(slog.String("module", "nats"), slog.String("component", component))}

	nc, err := nats.Connect(url,
		nats.Name(fmt.Sprintf("escrow-%s-%s", component, hostname)),
		nats.ErrorHandler(h.asyncError),
		nats.DisconnectErrHandler(h.disconnected),
		nats.ReconnectHandler(h.reconnected),
		nats.ClosedHandler(h.closed(o.OnClosed)),
		nats.RetryOnFailedConnect(!o.FailFast),
		nats.MaxReconnects(o.MaxReconnects),
		nats.ReconnectWait(o.ReconnectWait),
		nats.PingInterval(o.PingInterval),
		nats.ReconnectBufSize(o.reconnectBufMB*1024*1024),
	)
	if err != nil {
		return nil, errors.Join(ErrNatsConnectionFailed, err)
	}

	return nc, nil
}

type connectionLogger struct {
	logger *slog.Logger
}

func (c connectionLogger) asyncError(_ *nats.Conn, sub *nats.Subscription, err error) {
	if err == nil {
		return
	}

	args := []any{slog.String("err", err.Error())}
	if sub != nil {
		args = append(args, slog.String("subject", sub.Subject))
	}
	c.logger.Error("async error", args...)
}

func (c connectionLogger) disconnected(nc *nats.Conn, err error) {
	args := []any{slog.String("url", nc.ConnectedUrlRedacted())}
	if err != nil {
		args = append(args, slog.String("err", err.Error()))
	}
	if buffered, bufErr := nc.Buffered(); bufErr == nil {
		args = append(args, slog.Int("buffered", buffered))
	}
	c.logger.Warn("disconnected, order updates are buffered until reconnect", args...)
}

func (c connectionLogger) reconnected(nc *nats.Conn) {
	c.logger.Info("reconnected", slog.String("url", nc.ConnectedUrlRedacted()))
}

func (c connectionLogger) closed(hook func()) nats.ConnHandler {
	return func(_ *nats.Conn) {
		c.logger.Warn("connection closed")
		if hook != nil {
			hook()
		}
	}
}
