package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/fees"
	"github.com/rampp2p/escrow/internal/lifecycle"
)

func TestFeeTable(t *testing.T) {
	tt := []struct {
		name     string
		schedule fees.Schedule
		amount   uint64

		expectedRows []string
		expectedErr  error
	}{
		{
			name:     "flat fees",
			schedule: fees.Schedule{ArbitrationFee: 1000, TradingFee: 500, DefaultContractFee: 1500},
			amount:   1_00000000,
			expectedRows: []string{
				"escrow amount",
				"100003000",
				"1.00003000",
				"counterparty payout",
			},
		},
		{
			name:        "invalid bps",
			schedule:    fees.Schedule{TradingFeeBps: 20_000},
			amount:      1000,
			expectedErr: fees.ErrInvalidBps,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			out, err := feeTable(tc.schedule, tc.amount, "")

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			for _, row := range tc.expectedRows {
				require.True(t, strings.Contains(out, row), "missing %q in\n%s", row, out)
			}
		})
	}
}

func TestParseVerifyJob(t *testing.T) {
	txID := strings.Repeat("0f", 32)

	tt := []struct {
		name string
		args []string

		expectedJob lifecycle.VerifyJob
		expectedErr error
	}{
		{
			name:        "release job",
			args:        []string{"42", "RELEASE", txID},
			expectedJob: lifecycle.VerifyJob{OrderID: 42, Action: escrow.ActionRelease, TxID: txID},
		},
		{
			name:        "order id with trailing text",
			args:        []string{"42abc", "RELEASE", txID},
			expectedErr: escrow.ErrValidation,
		},
		{
			name:        "unknown action",
			args:        []string{"42", "SWAP", txID},
			expectedErr: escrow.ErrInvalidAction,
		},
		{
			name:        "short txid",
			args:        []string{"42", "ESCROW", "abcd"},
			expectedErr: escrow.ErrInvalidTxID,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			job, err := parseVerifyJob(tc.args)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedJob, job)
		})
	}
}
