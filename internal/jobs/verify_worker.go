package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/lifecycle"
)

const (
	defaultVerifyWorkers   = 4
	defaultMaxRetryElapsed = 30 * time.Minute
	initialRetryInterval   = 5 * time.Second
)

var ErrFailedToParseJob = errors.New("failed to parse verification job")

// VerifyWorker consumes verification jobs from the queue and retries them while the failure is transient.
type VerifyWorker struct {
	subscriber Subscriber
	verifier   CompletionVerifier
	logger     *slog.Logger

	workers         int
	maxRetryElapsed time.Duration
	initialInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

func WithWorkers(n int) func(*VerifyWorker) {
	return func(w *VerifyWorker) {
		if n > 0 {
			w.workers = n
		}
	}
}

func WithMaxRetryElapsed(d time.Duration) func(*VerifyWorker) {
	return func(w *VerifyWorker) {
		if d > 0 {
			w.maxRetryElapsed = d
		}
	}
}

func WithRetryInterval(d time.Duration) func(*VerifyWorker) {
	return func(w *VerifyWorker) {
		w.initialInterval = d
	}
}

func NewVerifyWorker(logger *slog.Logger, subscriber Subscriber, verifier CompletionVerifier, opts ...func(*VerifyWorker)) *VerifyWorker {
	w := &VerifyWorker{
		subscriber:      subscriber,
		verifier:        verifier,
		logger:          logger.With(slog.String("module", "verify-worker")),
		workers:         defaultVerifyWorkers,
		maxRetryElapsed: defaultMaxRetryElapsed,
		initialInterval: initialRetryInterval,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.group = &errgroup.Group{}
	w.group.SetLimit(w.workers)

	return w
}

func (w *VerifyWorker) Start() error {
	return w.subscriber.Subscribe(lifecycle.VerifyTopic, w.handle)
}

// handle parses a job and schedules it. It blocks while all workers are busy.
func (w *VerifyWorker) handle(data []byte) error {
	var job lifecycle.VerifyJob
	err := json.Unmarshal(data, &job)
	if err != nil {
		return errors.Join(ErrFailedToParseJob, err)
	}

	if w.ctx.Err() != nil {
		return w.ctx.Err()
	}

	w.group.Go(func() error {
		w.Process(w.ctx, job)
		return nil
	})

	return nil
}

// Process verifies the job, retrying with exponential backoff until it succeeds, fails permanently or the
// retry budget is spent.
func (w *VerifyWorker) Process(ctx context.Context, job lifecycle.VerifyJob) {
	logger := w.logger.With(slog.Int64("id", job.OrderID), slog.String("action", string(job.Action)), slog.String("txid", job.TxID))

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = w.initialInterval
	policy.MaxElapsedTime = w.maxRetryElapsed

	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		_, err := w.verifier.VerifyCompletion(ctx, job.OrderID, job.Action, job.TxID)
		if err != nil && !escrow.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		logger.Warn("verification failed", slog.Int("attempts", attempts), slog.String("err", err.Error()))
		return
	}

	logger.Info("verification completed", slog.Int("attempts", attempts))
}

// Shutdown stops retries in progress and waits for the workers to return.
func (w *VerifyWorker) Shutdown() {
	w.cancel()
	err := w.group.Wait()
	if err != nil {
		w.logger.Error("failed to stop workers", slog.String("err", err.Error()))
	}
}
