package chain

import (
	"context"
	"errors"
)

var (
	ErrTxNotFound         = errors.New("transaction not found")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrRequestFailed      = errors.New("request failed")
	ErrNoSources          = errors.New("no transaction source available")
	ErrInvalidAmount      = errors.New("invalid amount in transaction")
)

// TxOutput is an address and the satoshis it receives or spends.
type TxOutput struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// TxDetails is a transaction as seen on chain. Inputs carry the address and value of the spent outputs.
type TxDetails struct {
	TxID          string     `json:"txid"`
	Confirmations uint64     `json:"confirmations"`
	Inputs        []TxOutput `json:"inputs"`
	Outputs       []TxOutput `json:"outputs"`
}

type TxSource interface {
	GetTransaction(ctx context.Context, txID string) (*TxDetails, error)
}
