package fees

import (
	"errors"
	"fmt"
	"math/bits"
)

const bpsDenominator = 10_000

var (
	ErrFeeOverflow = errors.New("fee computation overflows")
	ErrInvalidBps  = errors.New("basis points must not exceed 10000")
	ErrZeroAmount  = errors.New("amount must be greater than zero")
)

// Schedule holds the fee settings in satoshis. Each fee is a flat part plus an optional share of the order
// amount in basis points, rounded down.
type Schedule struct {
	ArbitrationFee     uint64
	TradingFee         uint64
	ArbitrationFeeBps  uint64
	TradingFeeBps      uint64
	DefaultContractFee uint64
	ContractFees       map[string]uint64
}

// Breakdown is the fee split of one order.
type Breakdown struct {
	ContractFee    uint64 `json:"contract_fee"`
	ArbitrationFee uint64 `json:"arbitration_fee"`
	ServiceFee     uint64 `json:"service_fee"`
	Total          uint64 `json:"total"`
}

func (s Schedule) Validate() error {
	if s.ArbitrationFeeBps > bpsDenominator || s.TradingFeeBps > bpsDenominator {
		return ErrInvalidBps
	}
	return nil
}

// ContractFee returns the fee reserved for the contract of the given version.
func (s Schedule) ContractFee(version string) uint64 {
	if fee, ok := s.ContractFees[version]; ok {
		return fee
	}
	return s.DefaultContractFee
}

func (s Schedule) ArbitrationFeeFor(amount uint64) (uint64, error) {
	return feeFor(amount, s.ArbitrationFee, s.ArbitrationFeeBps)
}

func (s Schedule) ServiceFeeFor(amount uint64) (uint64, error) {
	return feeFor(amount, s.TradingFee, s.TradingFeeBps)
}

// Fees computes the complete breakdown for an order amount and contract version.
func (s Schedule) Fees(amount uint64, contractVersion string) (Breakdown, error) {
	if amount == 0 {
		return Breakdown{}, ErrZeroAmount
	}

	err := s.Validate()
	if err != nil {
		return Breakdown{}, err
	}

	arbitration, err := s.ArbitrationFeeFor(amount)
	if err != nil {
		return Breakdown{}, err
	}

	service, err := s.ServiceFeeFor(amount)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		ContractFee:    s.ContractFee(contractVersion),
		ArbitrationFee: arbitration,
		ServiceFee:     service,
	}

	b.Total, err = sum(b.ContractFee, b.ArbitrationFee, b.ServiceFee)
	if err != nil {
		return Breakdown{}, err
	}

	return b, nil
}

// EscrowAmount is the exact value the contract address must receive to escrow amount.
func (s Schedule) EscrowAmount(amount uint64, contractVersion string) (uint64, error) {
	b, err := s.Fees(amount, contractVersion)
	if err != nil {
		return 0, err
	}

	return sum(amount, b.Total)
}

// Payouts are the outputs a release or refund must pay out of the contract.
type Payouts struct {
	Arbiter      uint64 `json:"arbiter"`
	Servicer     uint64 `json:"servicer"`
	Counterparty uint64 `json:"counterparty"`
}

func (s Schedule) Payouts(amount uint64, contractVersion string) (Payouts, error) {
	b, err := s.Fees(amount, contractVersion)
	if err != nil {
		return Payouts{}, err
	}

	return Payouts{
		Arbiter:      b.ArbitrationFee,
		Servicer:     b.ServiceFee,
		Counterparty: amount,
	}, nil
}

func feeFor(amount, flat, bps uint64) (uint64, error) {
	if bps == 0 {
		return flat, nil
	}
	if bps > bpsDenominator {
		return 0, ErrInvalidBps
	}

	hi, lo := bits.Mul64(amount, bps)
	share, _ := bits.Div64(hi, lo, bpsDenominator)

	return sum(flat, share)
}

func sum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		var carry uint64
		total, carry = bits.Add64(total, v, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: adding %d", ErrFeeOverflow, v)
		}
	}
	return total, nil
}
