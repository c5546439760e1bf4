package nats_core_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	natscore "github.com/rampp2p/escrow/internal/message_queue/nats/client/nats_core"
	"github.com/rampp2p/escrow/internal/message_queue/nats/client/nats_core/mocks"
)

const verifyTopic = "verify-tx"

func TestPublishJSON(t *testing.T) {
	type job struct {
		OrderID int64  `json:"order_id"`
		TxID    string `json:"txid"`
	}

	tt := []struct {
		name       string
		value      any
		publishErr error

		expectedError        error
		expectedPublishCalls int
	}{
		{
			name:  "success",
			value: job{OrderID: 7, TxID: "aa"},

			expectedPublishCalls: 1,
		},
		{
			name:       "publish err",
			value:      job{OrderID: 7, TxID: "aa"},
			publishErr: errors.New("connection closed"),

			expectedError:        natscore.ErrFailedToPublish,
			expectedPublishCalls: 1,
		},
		{
			name:  "value cannot be marshalled",
			value: make(chan int),

			expectedError:        natscore.ErrFailedToMarshal,
			expectedPublishCalls: 0,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var published []byte
			natsMock := &mocks.NatsConnectionMock{
				PublishFunc: func(subj string, data []byte) error {
					require.Equal(t, verifyTopic, subj)
					published = data
					return tc.publishErr
				},
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
			sut := natscore.New(natsMock, natscore.WithLogger(logger))

			// when
			err := sut.PublishJSON(context.TODO(), verifyTopic, tc.value)

			// then
			require.Equal(t, tc.expectedPublishCalls, len(natsMock.PublishCalls()))
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)

			var decoded job
			require.NoError(t, json.Unmarshal(published, &decoded))
			require.Equal(t, tc.value, decoded)
		})
	}
}

func TestPublish(t *testing.T) {
	tt := []struct {
		name       string
		publishErr error

		expectedError error
	}{
		{
			name: "success",
		},
		{
			name:       "error - publish",
			publishErr: nats.ErrConnectionClosed,

			expectedError: natscore.ErrFailedToPublish,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			natsMock := &mocks.NatsConnectionMock{
				PublishFunc: func(_ string, _ []byte) error {
					return tc.publishErr
				},
			}

			sut := natscore.New(natsMock)

			// when
			err := sut.Publish(context.TODO(), verifyTopic, []byte("job"))

			// then
			require.Len(t, natsMock.PublishCalls(), 1)
			if tc.expectedError == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expectedError)
			require.ErrorIs(t, err, tc.publishErr)
		})
	}
}

func TestSubscribe(t *testing.T) {
	tt := []struct {
		name         string
		subscribeErr error
		msgFuncErr   error
		runFunc      bool

		expectedError error
	}{
		{
			name:    "success",
			runFunc: true,
		},
		{
			name:         "error - subscribe",
			subscribeErr: errors.New("no responders"),

			expectedError: natscore.ErrFailedToSubscribe,
		},
		{
			name:       "error - msg function",
			msgFuncErr: errors.New("function failed"),
			runFunc:    true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var msgHandler nats.MsgHandler
			var received []byte

			natsMock := &mocks.NatsConnectionMock{
				QueueSubscribeFunc: func(subj string, queue string, cb nats.MsgHandler) (*nats.Subscription, error) {
					require.Equal(t, verifyTopic, subj)
					require.Equal(t, "verify-tx-group", queue)
					msgHandler = cb
					return nil, tc.subscribeErr
				},
			}

			sut := natscore.New(natsMock)

			// when
			err := sut.Subscribe(verifyTopic, func(data []byte) error {
				received = data
				return tc.msgFuncErr
			})

			// then
			require.Len(t, natsMock.QueueSubscribeCalls(), 1)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)

			if tc.runFunc {
				msgHandler(&nats.Msg{Data: []byte("payload")})
				require.Equal(t, []byte("payload"), received)
			}
		})
	}
}

func TestShutdown(t *testing.T) {
	tt := []struct {
		name     string
		drainErr error
	}{
		{
			name: "drains connection",
		},
		{
			name:     "drain error is logged",
			drainErr: nats.ErrConnectionDraining,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			natsMock := &mocks.NatsConnectionMock{
				DrainFunc: func() error {
					return tc.drainErr
				},
			}
			sut := natscore.New(natsMock)

			// when
			sut.Shutdown()

			// then
			require.Len(t, natsMock.DrainCalls(), 1)
		})
	}
}
