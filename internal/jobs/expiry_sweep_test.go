package jobs_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rampp2p/escrow/internal/cache"
	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/escrow/store/memorystore"
	"github.com/rampp2p/escrow/internal/jobs"
	"github.com/rampp2p/escrow/internal/jobs/mocks"
	testutils "github.com/rampp2p/escrow/internal/test_utils"
)

var sweepStart = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// seedOrder stores an order and walks it through the given statuses. ESCROWED sets the expiry.
func seedOrder(t *testing.T, s *memorystore.MemoryStore, n int, expiresAt time.Time, statuses ...escrow.StatusType) int64 {
	t.Helper()
	ctx := context.Background()

	record, err := s.CreateOrder(ctx, escrow.Order{
		Owner:        escrow.Party{WalletHash: fmt.Sprintf("owner-%d", n)},
		Counterparty: escrow.Party{WalletHash: "ad-owner"},
		Arbiter:      escrow.Party{WalletHash: "arbiter"},
		CryptoAmount: 10_000,
		TradeType:    escrow.TradeTypeSell,
	}, escrow.Contract{Address: fmt.Sprintf("contract-%d", n), Version: "v1"})
	require.NoError(t, err)

	for _, status := range statuses {
		update := store.StatusUpdate{OrderID: record.Order.ID, Status: status}
		if status == escrow.StatusEscrowed {
			update.ExpiresAt = testutils.PtrTo(expiresAt)
		}
		_, err = s.AppendStatus(ctx, update)
		require.NoError(t, err)
	}

	return record.Order.ID
}

func TestExpirySweep_Sweep(t *testing.T) {
	// given
	s := memorystore.New()
	escrowed := []escrow.StatusType{escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed}

	expired := seedOrder(t, s, 1, sweepStart.Add(-time.Minute), escrowed...)
	paid := seedOrder(t, s, 2, sweepStart, append(escrowed, escrow.StatusPaid)...)
	seedOrder(t, s, 3, sweepStart.Add(time.Minute), escrowed...)
	seedOrder(t, s, 4, sweepStart.Add(-time.Hour), append(escrowed, escrow.StatusAppealed)...)
	seedOrder(t, s, 5, sweepStart, escrow.StatusConfirmed)

	notifier := &mocks.ExpiryNotifierMock{
		AppealWindowOpenFunc: func(context.Context, escrow.Order) {},
	}

	sut := jobs.NewExpirySweep(slog.Default(), s, cache.NewMemoryStore(), notifier, "@every 1h",
		jobs.WithSweepNow(func() time.Time { return sweepStart }),
		jobs.WithSweepBatch(10),
	)

	// when
	first, err := sut.Sweep(context.Background())
	require.NoError(t, err)
	second, err := sut.Sweep(context.Background())
	require.NoError(t, err)

	// then
	require.Equal(t, 2, first)
	require.Zero(t, second)

	calls := notifier.AppealWindowOpenCalls()
	require.Len(t, calls, 2)
	require.Equal(t, expired, calls[0].Order.ID)
	require.Equal(t, paid, calls[1].Order.ID)
}

func TestExpirySweep_MoreExpiredThanBatch(t *testing.T) {
	tt := []struct {
		name  string
		batch int
	}{
		{
			name:  "batch of one",
			batch: 1,
		},
		{
			name:  "batch of two",
			batch: 2,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := memorystore.New()
			escrowed := []escrow.StatusType{escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed}

			oldest := seedOrder(t, s, 1, sweepStart.Add(-time.Hour), escrowed...)
			middle := seedOrder(t, s, 2, sweepStart.Add(-time.Minute), escrowed...)

			notifier := &mocks.ExpiryNotifierMock{
				AppealWindowOpenFunc: func(context.Context, escrow.Order) {},
			}
			clock := sweepStart
			sut := jobs.NewExpirySweep(slog.Default(), s, cache.NewMemoryStore(), notifier, "@every 1h",
				jobs.WithSweepNow(func() time.Time { return clock }),
				jobs.WithSweepBatch(tc.batch),
			)

			// when
			first, err := sut.Sweep(context.Background())
			require.NoError(t, err)

			newest := seedOrder(t, s, 3, sweepStart.Add(time.Minute), escrowed...)
			clock = sweepStart.Add(time.Hour)
			second, err := sut.Sweep(context.Background())
			require.NoError(t, err)
			third, err := sut.Sweep(context.Background())
			require.NoError(t, err)

			// then
			require.Equal(t, 2, first)
			require.Equal(t, 1, second)
			require.Zero(t, third)

			calls := notifier.AppealWindowOpenCalls()
			require.Len(t, calls, 3)
			require.Equal(t, oldest, calls[0].Order.ID)
			require.Equal(t, middle, calls[1].Order.ID)
			require.Equal(t, newest, calls[2].Order.ID)
		})
	}
}

func TestExpirySweep_Start(t *testing.T) {
	tt := []struct {
		name     string
		schedule string

		expectErr bool
	}{
		{
			name:     "valid schedule",
			schedule: "@every 1m",
		},
		{
			name:      "invalid schedule",
			schedule:  "every minute",
			expectErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sut := jobs.NewExpirySweep(slog.Default(), memorystore.New(), cache.NewMemoryStore(), &mocks.ExpiryNotifierMock{}, tc.schedule)

			// when
			err := sut.Start()

			// then
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			sut.Shutdown()
		})
	}
}
