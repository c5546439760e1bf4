package lifecycle

import (
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/tracing"
)

func WithNow(nowFunc func() time.Time) func(*Orchestrator) {
	return func(o *Orchestrator) {
		o.now = nowFunc
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*Orchestrator) {
	return func(o *Orchestrator) {
		o.tracingEnabled = true
		o.tracingAttributes = tracing.CallerAttributes(attr...)
	}
}

// WithJobPublisher enables queueing verification jobs for transactions produced by Settle.
func WithJobPublisher(jobs JobPublisher) func(*Orchestrator) {
	return func(o *Orchestrator) {
		o.jobs = jobs
	}
}

func WithStats(stats *Stats) func(*Orchestrator) {
	return func(o *Orchestrator) {
		o.stats = stats
	}
}

func WithChainTimeout(d time.Duration) func(*Orchestrator) {
	return func(o *Orchestrator) {
		if d > 0 {
			o.chainTimeout = d
		}
	}
}

// WithAppealCooldown sets the payment window of orders that did not choose one.
func WithAppealCooldown(d time.Duration) func(*Orchestrator) {
	return func(o *Orchestrator) {
		if d > 0 {
			o.appealCooldown = d
		}
	}
}
