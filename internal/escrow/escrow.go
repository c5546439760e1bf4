package escrow

import (
	"time"
)

type TradeType string

const (
	TradeTypeBuy  TradeType = "BUY"
	TradeTypeSell TradeType = "SELL"
)

type ActionType string

const (
	ActionEscrow  ActionType = "ESCROW"
	ActionRelease ActionType = "RELEASE"
	ActionRefund  ActionType = "REFUND"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionEscrow, ActionRelease, ActionRefund:
		return true
	}
	return false
}

// CompletedStatus is the status appended once a transaction for this action is verified.
func (a ActionType) CompletedStatus() StatusType {
	switch a {
	case ActionEscrow:
		return StatusEscrowed
	case ActionRelease:
		return StatusReleased
	case ActionRefund:
		return StatusRefunded
	}
	return ""
}

type AppealType string

const (
	AppealRelease AppealType = "RLS"
	AppealRefund  AppealType = "RFN"
)

func (a AppealType) Valid() bool {
	return a == AppealRelease || a == AppealRefund
}

// Party identifies a peer or arbiter taking part in an order.
type Party struct {
	WalletHash string `json:"wallet_hash"`
	PublicKey  string `json:"public_key"`
	Address    string `json:"address"`
}

type Order struct {
	ID           int64      `json:"id"`
	Owner        Party      `json:"owner"`
	Counterparty Party      `json:"counterparty"`
	Arbiter      Party      `json:"arbiter"`
	CryptoAmount uint64     `json:"crypto_amount"`
	FiatCurrency string     `json:"fiat_currency"`
	TradeType    TradeType  `json:"trade_type"`
	TimeDuration int64      `json:"time_duration"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

type Contract struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Address   string    `json:"address"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

type Status struct {
	ID           int64      `json:"id"`
	OrderID      int64      `json:"order_id"`
	Status       StatusType `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	SellerReadAt *time.Time `json:"seller_read_at"`
	BuyerReadAt  *time.Time `json:"buyer_read_at"`
}

// Transaction is a settlement transaction of a contract. TxID is nil for a pending placeholder.
type Transaction struct {
	ID         int64      `json:"id"`
	ContractID int64      `json:"contract_id"`
	Action     ActionType `json:"action"`
	TxID       *string    `json:"txid"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Recipient struct {
	ID            int64     `json:"id"`
	TransactionID int64     `json:"transaction_id"`
	Address       string    `json:"address"`
	Amount        uint64    `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type Appeal struct {
	ID         int64      `json:"id"`
	OrderID    int64      `json:"order_id"`
	Owner      string     `json:"owner"`
	Type       AppealType `json:"type"`
	Reasons    []string   `json:"reasons"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}
