package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/jobs"
	"github.com/rampp2p/escrow/internal/jobs/mocks"
	"github.com/rampp2p/escrow/internal/lifecycle"
)

var job = lifecycle.VerifyJob{OrderID: 7, Action: escrow.ActionRelease, TxID: strings.Repeat("d", 64)}

func TestVerifyWorker_Process(t *testing.T) {
	tt := []struct {
		name            string
		errs            []error
		maxRetryElapsed time.Duration

		expectedCalls    int
		expectedMinCalls int
	}{
		{
			name:          "verified at first attempt",
			expectedCalls: 1,
		},
		{
			name:          "retries while unconfirmed",
			errs:          []error{escrow.ErrTxUnconfirmed, escrow.ErrChainUnavailable},
			expectedCalls: 3,
		},
		{
			name:          "stops at invalid transaction",
			errs:          []error{escrow.ErrTxUnconfirmed, escrow.ErrInvalidTransaction},
			expectedCalls: 2,
		},
		{
			name:          "stops at state conflict",
			errs:          []error{escrow.ErrConflictingStatus},
			expectedCalls: 1,
		},
		{
			name: "gives up when the retry budget is spent",
			errs: []error{
				escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed,
				escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed,
				escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed, escrow.ErrTxUnconfirmed,
			},
			maxRetryElapsed:  20 * time.Millisecond,
			expectedMinCalls: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var calls atomic.Int32
			verifier := &mocks.CompletionVerifierMock{
				VerifyCompletionFunc: func(_ context.Context, _ int64, _ escrow.ActionType, _ string, _ ...escrow.StatusType) (*store.AppendResult, error) {
					n := int(calls.Add(1))
					if n <= len(tc.errs) {
						return nil, tc.errs[n-1]
					}
					return &store.AppendResult{Status: escrow.Status{Status: escrow.StatusReleased}}, nil
				},
			}

			opts := []func(*jobs.VerifyWorker){jobs.WithRetryInterval(time.Millisecond)}
			if tc.maxRetryElapsed > 0 {
				opts = append(opts, jobs.WithMaxRetryElapsed(tc.maxRetryElapsed))
			}
			sut := jobs.NewVerifyWorker(slog.Default(), &mocks.SubscriberMock{}, verifier, opts...)

			// when
			sut.Process(context.Background(), job)

			// then
			if tc.expectedMinCalls > 0 {
				require.GreaterOrEqual(t, len(verifier.VerifyCompletionCalls()), tc.expectedMinCalls)
				require.Less(t, len(verifier.VerifyCompletionCalls()), len(tc.errs)+1)
				return
			}
			require.Len(t, verifier.VerifyCompletionCalls(), tc.expectedCalls)
			require.Equal(t, job.OrderID, verifier.VerifyCompletionCalls()[0].ID)
			require.Equal(t, job.TxID, verifier.VerifyCompletionCalls()[0].TxID)
		})
	}
}

func TestVerifyWorker_Start(t *testing.T) {
	// given
	var handler func([]byte) error
	subscriber := &mocks.SubscriberMock{
		SubscribeFunc: func(topic string, msgFunc func([]byte) error) error {
			require.Equal(t, lifecycle.VerifyTopic, topic)
			handler = msgFunc
			return nil
		},
	}

	var calls atomic.Int32
	verifier := &mocks.CompletionVerifierMock{
		VerifyCompletionFunc: func(_ context.Context, _ int64, _ escrow.ActionType, _ string, _ ...escrow.StatusType) (*store.AppendResult, error) {
			calls.Add(1)
			return &store.AppendResult{}, nil
		},
	}

	sut := jobs.NewVerifyWorker(slog.Default(), subscriber, verifier, jobs.WithWorkers(2))

	// when
	err := sut.Start()
	require.NoError(t, err)
	require.NotNil(t, handler)

	data, err := json.Marshal(job)
	require.NoError(t, err)

	// then
	require.NoError(t, handler(data))
	require.NoError(t, handler(data))
	require.ErrorIs(t, handler([]byte("not json")), jobs.ErrFailedToParseJob)

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 10*time.Millisecond)

	sut.Shutdown()
	require.ErrorIs(t, handler(data), context.Canceled)
	require.Equal(t, int32(2), calls.Load())
}

func TestVerifyWorker_StartFails(t *testing.T) {
	subscriber := &mocks.SubscriberMock{
		SubscribeFunc: func(string, func([]byte) error) error {
			return errors.New("no connection")
		},
	}

	sut := jobs.NewVerifyWorker(slog.Default(), subscriber, &mocks.CompletionVerifierMock{})

	require.Error(t, sut.Start())
	sut.Shutdown()
}
