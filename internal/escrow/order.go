package escrow

import (
	"time"
)

type Role string

const (
	RoleNone    Role = ""
	RoleBuyer   Role = "buyer"
	RoleSeller  Role = "seller"
	RoleArbiter Role = "arbiter"
)

// Seller is the ad owner when the ad sells crypto, otherwise the order owner.
func (o *Order) Seller() Party {
	if o.TradeType == TradeTypeSell {
		return o.Counterparty
	}
	return o.Owner
}

func (o *Order) Buyer() Party {
	if o.TradeType == TradeTypeSell {
		return o.Owner
	}
	return o.Counterparty
}

// RoleOf returns the role the wallet plays in this order.
func (o *Order) RoleOf(walletHash string) Role {
	if walletHash == "" {
		return RoleNone
	}

	switch walletHash {
	case o.Arbiter.WalletHash:
		return RoleArbiter
	case o.Seller().WalletHash:
		return RoleSeller
	case o.Buyer().WalletHash:
		return RoleBuyer
	}
	return RoleNone
}

// Other returns the peer opposite to the given one. The arbiter has no opposite party.
func (o *Order) Other(walletHash string) *Party {
	switch o.RoleOf(walletHash) {
	case RoleBuyer:
		seller := o.Seller()
		return &seller
	case RoleSeller:
		buyer := o.Buyer()
		return &buyer
	}
	return nil
}

// Duration returns the order's payment window. If the order has none, fallback is used.
func (o *Order) Duration(fallback time.Duration) time.Duration {
	if o.TimeDuration > 0 {
		return time.Duration(o.TimeDuration) * time.Minute
	}
	return fallback
}

// IsExpired reports whether the payment window has elapsed at now. Orders that were never escrowed
// have no expiry.
func (o *Order) IsExpired(now time.Time) bool {
	if o.ExpiresAt == nil {
		return false
	}
	return !now.Before(*o.ExpiresAt)
}

func (o *Order) Validate() error {
	switch {
	case o.CryptoAmount == 0:
		return ErrInvalidOrder
	case o.TradeType != TradeTypeBuy && o.TradeType != TradeTypeSell:
		return ErrInvalidOrder
	case o.Owner.WalletHash == "" || o.Counterparty.WalletHash == "" || o.Arbiter.WalletHash == "":
		return ErrInvalidOrder
	case o.Owner.WalletHash == o.Counterparty.WalletHash:
		return ErrInvalidOrder
	case o.Arbiter.WalletHash == o.Owner.WalletHash || o.Arbiter.WalletHash == o.Counterparty.WalletHash:
		return ErrInvalidOrder
	case o.TimeDuration < 0:
		return ErrInvalidOrder
	}
	return nil
}
