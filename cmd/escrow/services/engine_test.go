package cmd

import (
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/rampp2p/escrow/config"
	"github.com/rampp2p/escrow/internal/cache"
	"github.com/rampp2p/escrow/internal/escrow/store/memorystore"
	"github.com/rampp2p/escrow/internal/gateway"
)

func TestEngineFactories(t *testing.T) {
	tt := []struct {
		name  string
		build func() error

		expectedErr error
		expectedMsg string
	}{
		{
			name: "memory store",
			build: func() error {
				s, err := newEscrowStore(&config.DbConfig{Mode: config.DbModeMemory}, nil)
				if err == nil {
					_, ok := s.(*memorystore.MemoryStore)
					require.True(t, ok)
				}
				return err
			},
		},
		{
			name: "unknown db mode",
			build: func() error {
				_, err := newEscrowStore(&config.DbConfig{Mode: "sqlite"}, nil)
				return err
			},
			expectedErr: ErrUnknownDbMode,
			expectedMsg: `mode "sqlite": unknown db mode`,
		},
		{
			name: "unknown chain source",
			build: func() error {
				_, err := newTxSource(slog.Default(), &config.ChainConfig{Source: "oracle"}, cache.NewMemoryStore(), nil, false)
				return err
			},
			expectedErr: ErrUnknownChainSource,
			expectedMsg: `source "oracle": unknown chain source`,
		},
		{
			name: "memory gateway",
			build: func() error {
				gw, err := newGateway(slog.Default(), &config.GatewayConfig{Mode: config.GatewayModeMemory, ContractVersion: "v1"})
				if err == nil {
					_, ok := gw.(*gateway.InMemory)
					require.True(t, ok)
				}
				return err
			},
		},
		{
			name: "unknown gateway mode",
			build: func() error {
				_, err := newGateway(slog.Default(), &config.GatewayConfig{Mode: "rpc"})
				return err
			},
			expectedErr: ErrUnknownGatewayMode,
			expectedMsg: `mode "rpc": unknown gateway mode`,
		},
		{
			name: "unknown cache engine",
			build: func() error {
				_, err := NewCacheStore(&config.CacheConfig{Engine: "memcached"})
				return err
			},
			expectedErr: ErrCacheUnknownType,
			expectedMsg: `engine "memcached": unknown cache type`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.build()

			// then
			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tc.expectedErr)
			require.Equal(t, tc.expectedErr, errors.Cause(err))
			require.EqualError(t, err, tc.expectedMsg)
		})
	}
}
