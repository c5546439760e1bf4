package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ordishs/go-bitcoin"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/fees"
	"github.com/rampp2p/escrow/internal/tracing"
)

// RPCClient is the subset of the node rpc used to read transactions.
type RPCClient interface {
	GetRawTransaction(txID string) (*bitcoin.RawTransaction, error)
}

// NodeClient reads transactions from a node with the transaction index enabled.
type NodeClient struct {
	rpc               RPCClient
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithNodeTracer(attr ...attribute.KeyValue) func(*NodeClient) {
	return func(n *NodeClient) {
		n.tracingEnabled = true
		n.tracingAttributes = tracing.CallerAttributes(attr...)
	}
}

func NewRPCClient(host string, port int, user, password string) (*bitcoin.Bitcoind, error) {
	rpc, err := bitcoin.New(host, port, user, password, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create bitcoin rpc client: %v", err)
	}

	return rpc, nil
}

func NewNodeClient(rpc RPCClient, opts ...func(*NodeClient)) *NodeClient {
	n := &NodeClient{rpc: rpc}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

func (n *NodeClient) GetTransaction(ctx context.Context, txID string) (details *TxDetails, err error) {
	_, span := tracing.StartTracing(ctx, "NodeClient_GetTransaction", n.tracingEnabled, n.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	tx, err := n.getRawTransaction(txID)
	if err != nil {
		return nil, err
	}

	outputs := make([]TxOutput, 0, len(tx.Vout))
	for _, out := range tx.Vout {
		o, err := nodeOutput(out.Value, out.ScriptPubKey.Addresses)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, o)
	}

	prevTxs := make(map[string]*bitcoin.RawTransaction)
	inputs := make([]TxOutput, 0, len(tx.Vin))
	for _, in := range tx.Vin {
		if in.Txid == "" {
			continue
		}

		prev, found := prevTxs[in.Txid]
		if !found {
			prev, err = n.getRawTransaction(in.Txid)
			if err != nil {
				return nil, fmt.Errorf("failed to get input tx %s: %w", in.Txid, err)
			}
			prevTxs[in.Txid] = prev
		}

		index := int(in.Vout)
		if index >= len(prev.Vout) {
			return nil, errors.Join(ErrUnexpectedResponse, fmt.Errorf("spent output %d not found in %s", index, in.Txid))
		}

		spent, err := nodeOutput(prev.Vout[index].Value, prev.Vout[index].ScriptPubKey.Addresses)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, spent)
	}

	return &TxDetails{
		TxID:          tx.TxID,
		Confirmations: uint64(tx.Confirmations),
		Inputs:        inputs,
		Outputs:       outputs,
	}, nil
}

func (n *NodeClient) getRawTransaction(txID string) (*bitcoin.RawTransaction, error) {
	tx, err := n.rpc.GetRawTransaction(txID)
	if err != nil {
		if strings.Contains(err.Error(), "No such mempool or blockchain transaction") {
			return nil, errors.Join(ErrTxNotFound, fmt.Errorf("txid: %s", txID))
		}
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if tx == nil {
		return nil, errors.Join(ErrTxNotFound, fmt.Errorf("txid: %s", txID))
	}

	return tx, nil
}

func nodeOutput(value float64, addresses []string) (TxOutput, error) {
	amount, err := fees.ToSatoshis(decimal.NewFromFloat(value))
	if err != nil {
		return TxOutput{}, errors.Join(ErrInvalidAmount, err)
	}

	var address string
	if len(addresses) > 0 {
		address = addresses[0]
	}

	return TxOutput{Address: address, Amount: amount}, nil
}
