package fees

import (
	"errors"
	"fmt"
	"math"

	"github.com/ccoveille/go-safecast"
	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places of one coin.
const Decimals = 8

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

var maxSatoshis = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts a decimal coin amount into satoshis, rounding half to even at the eighth place.
func ParseAmount(value string) (uint64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, errors.Join(ErrInvalidAmount, err)
	}

	return ToSatoshis(d)
}

func ToSatoshis(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}

	sats := d.Shift(Decimals).RoundBank(0)
	if sats.GreaterThan(maxSatoshis) {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidAmount, d.String())
	}

	return safecast.ToUint64(sats.IntPart())
}

func FromSatoshis(sats uint64) (decimal.Decimal, error) {
	v, err := safecast.ToInt64(sats)
	if err != nil {
		return decimal.Zero, errors.Join(ErrInvalidAmount, err)
	}

	return decimal.New(v, -Decimals), nil
}

// FormatAmount renders satoshis as a coin amount with eight decimal places.
func FormatAmount(sats uint64) string {
	d, err := FromSatoshis(sats)
	if err != nil {
		return fmt.Sprintf("%d sats", sats)
	}

	return d.StringFixed(Decimals)
}
