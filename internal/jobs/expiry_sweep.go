package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rampp2p/escrow/internal/cache"
	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
)

const (
	defaultSweepBatch = 500
	sweepDedupeTTL    = 7 * 24 * time.Hour
	sweepKeyPrefix    = "appeal-window-"
)

// ExpirySweep periodically announces orders whose payment window elapsed while they are still appealable.
// Each order is announced once.
type ExpirySweep struct {
	store    store.EscrowStore
	cache    cache.Store
	notifier ExpiryNotifier
	logger   *slog.Logger

	schedule string
	batch    int
	now      func() time.Time

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

func WithSweepNow(nowFunc func() time.Time) func(*ExpirySweep) {
	return func(s *ExpirySweep) {
		s.now = nowFunc
	}
}

func WithSweepBatch(n int) func(*ExpirySweep) {
	return func(s *ExpirySweep) {
		if n > 0 {
			s.batch = n
		}
	}
}

func NewExpirySweep(logger *slog.Logger, s store.EscrowStore, c cache.Store, n ExpiryNotifier, schedule string, opts ...func(*ExpirySweep)) *ExpirySweep {
	sweep := &ExpirySweep{
		store:    s,
		cache:    c,
		notifier: n,
		logger:   logger.With(slog.String("module", "expiry-sweep")),
		schedule: schedule,
		batch:    defaultSweepBatch,
		now:      time.Now,
		cron:     cron.New(),
	}

	for _, opt := range opts {
		opt(sweep)
	}

	sweep.ctx, sweep.cancel = context.WithCancel(context.Background())

	return sweep
}

func (s *ExpirySweep) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		n, err := s.Sweep(s.ctx)
		if err != nil {
			s.logger.Error("sweep failed", slog.String("err", err.Error()))
			return
		}
		if n > 0 {
			s.logger.Info("expired orders announced", slog.Int("count", n))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Sweep announces the expired appealable orders not announced before and returns how many it announced. It
// pages through all expired orders so announced ones never hide later expirations.
func (s *ExpirySweep) Sweep(ctx context.Context) (int, error) {
	now := s.now()
	announced := 0

	var after *store.ExpiryCursor
	for {
		orders, err := s.store.ListExpiredOrders(ctx, now, escrow.AppealableStatuses, after, s.batch)
		if err != nil {
			return announced, err
		}

		for _, order := range orders {
			if s.announce(ctx, order) {
				announced++
			}
		}

		if len(orders) < s.batch {
			return announced, nil
		}

		last := orders[len(orders)-1]
		after = &store.ExpiryCursor{ExpiresAt: *last.ExpiresAt, ID: last.ID}

		if ctx.Err() != nil {
			return announced, ctx.Err()
		}
	}
}

func (s *ExpirySweep) announce(ctx context.Context, order escrow.Order) bool {
	first, err := s.cache.SetIfAbsent(fmt.Sprintf("%s%d", sweepKeyPrefix, order.ID), []byte{1}, sweepDedupeTTL)
	if err != nil {
		s.logger.Warn("failed to mark order announced", slog.Int64("id", order.ID), slog.String("err", err.Error()))
		return false
	}
	if !first {
		return false
	}

	s.notifier.AppealWindowOpen(ctx, order)
	return true
}

func (s *ExpirySweep) Shutdown() {
	s.cancel()
	<-s.cron.Stop().Done()
}
