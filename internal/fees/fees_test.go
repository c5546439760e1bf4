package fees

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchedule_Fees(t *testing.T) {
	tt := []struct {
		name     string
		schedule Schedule
		amount   uint64
		version  string

		expected    Breakdown
		expectedErr error
	}{
		{
			name:     "flat fees",
			schedule: Schedule{ArbitrationFee: 500, TradingFee: 300},
			amount:   100_000_000,
			expected: Breakdown{ArbitrationFee: 500, ServiceFee: 300, Total: 800},
		},
		{
			name:     "flat and basis points",
			schedule: Schedule{ArbitrationFee: 500, TradingFee: 300, ArbitrationFeeBps: 10, TradingFeeBps: 25},
			amount:   100_000_000,
			expected: Breakdown{ArbitrationFee: 500 + 100_000, ServiceFee: 300 + 250_000, Total: 350_800},
		},
		{
			name:     "basis points are floored",
			schedule: Schedule{TradingFeeBps: 1},
			amount:   9_999,
			expected: Breakdown{ServiceFee: 0, Total: 0},
		},
		{
			name:     "versioned contract fee",
			schedule: Schedule{ArbitrationFee: 500, TradingFee: 300, DefaultContractFee: 1000, ContractFees: map[string]uint64{"v2": 700}},
			amount:   1_000,
			version:  "v2",
			expected: Breakdown{ContractFee: 700, ArbitrationFee: 500, ServiceFee: 300, Total: 1500},
		},
		{
			name:     "default contract fee for unknown version",
			schedule: Schedule{DefaultContractFee: 1000, ContractFees: map[string]uint64{"v2": 700}},
			amount:   1_000,
			version:  "v1",
			expected: Breakdown{ContractFee: 1000, Total: 1000},
		},
		{
			name:        "zero amount",
			schedule:    Schedule{ArbitrationFee: 1},
			expectedErr: ErrZeroAmount,
		},
		{
			name:        "invalid bps",
			schedule:    Schedule{TradingFeeBps: 10_001},
			amount:      1,
			expectedErr: ErrInvalidBps,
		},
		{
			name:        "overflow",
			schedule:    Schedule{ArbitrationFee: math.MaxUint64, TradingFee: 1},
			amount:      1,
			expectedErr: ErrFeeOverflow,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// when
			actual, err := tc.schedule.Fees(tc.amount, tc.version)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestSchedule_EscrowAmountAndPayouts(t *testing.T) {
	// given
	sut := Schedule{ArbitrationFee: 500, TradingFee: 300}

	// when
	escrowAmount, err := sut.EscrowAmount(100_000_000, "")
	require.NoError(t, err)
	payouts, err := sut.Payouts(100_000_000, "")
	require.NoError(t, err)

	// then
	require.Equal(t, uint64(100_000_800), escrowAmount)
	require.Equal(t, Payouts{Arbiter: 500, Servicer: 300, Counterparty: 100_000_000}, payouts)
	require.Equal(t, escrowAmount, payouts.Arbiter+payouts.Servicer+payouts.Counterparty)
}

func TestSchedule_BpsLargeAmount(t *testing.T) {
	// amount * bps exceeds 64 bits, the share does not
	sut := Schedule{TradingFeeBps: 10_000}

	fee, err := sut.ServiceFeeFor(math.MaxUint64 / 2)

	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64/2), fee)
}
