package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/fees"
	"github.com/rampp2p/escrow/internal/tracing"
)

// ExplorerClient reads transactions from a WhatsOnChain compatible REST explorer.
type ExplorerClient struct {
	client            http.Client
	url               string
	authorization     string
	logger            *slog.Logger
	retryInterval     time.Duration
	maxRetries        uint64
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithLogger(logger *slog.Logger) func(*ExplorerClient) {
	return func(e *ExplorerClient) {
		e.logger = logger
	}
}

func WithAuth(authorization string) func(*ExplorerClient) {
	return func(e *ExplorerClient) {
		e.authorization = authorization
	}
}

func WithTimeout(timeout time.Duration) func(*ExplorerClient) {
	return func(e *ExplorerClient) {
		e.client.Timeout = timeout
	}
}

func WithRetries(interval time.Duration, maxRetries uint64) func(*ExplorerClient) {
	return func(e *ExplorerClient) {
		e.retryInterval = interval
		e.maxRetries = maxRetries
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*ExplorerClient) {
	return func(e *ExplorerClient) {
		e.tracingEnabled = true
		e.tracingAttributes = tracing.CallerAttributes(attr...)
	}
}

func NewExplorerClient(url string, opts ...func(*ExplorerClient)) *ExplorerClient {
	e := &ExplorerClient{
		client:        http.Client{Timeout: 10 * time.Second},
		url:           strings.TrimSuffix(url, "/"),
		logger:        slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})),
		retryInterval: 500 * time.Millisecond,
		maxRetries:    3,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

type explorerTx struct {
	TxID          string        `json:"txid"`
	Confirmations uint64        `json:"confirmations"`
	Vin           []explorerVin `json:"vin"`
	Vout          []explorerOut `json:"vout"`
}

type explorerVin struct {
	TxID     string `json:"txid"`
	Vout     uint32 `json:"vout"`
	Coinbase string `json:"coinbase"`
}

type explorerOut struct {
	Value        decimal.Decimal `json:"value"`
	N            uint32          `json:"n"`
	ScriptPubKey struct {
		Addresses []string `json:"addresses"`
	} `json:"scriptPubKey"`
}

// GetTransaction fetches the transaction and the outputs its inputs spend.
func (e *ExplorerClient) GetTransaction(ctx context.Context, txID string) (details *TxDetails, err error) {
	ctx, span := tracing.StartTracing(ctx, "ExplorerClient_GetTransaction", e.tracingEnabled, e.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	tx, err := e.getTxWithRetries(ctx, txID)
	if err != nil {
		return nil, err
	}

	outputs, err := explorerOutputs(tx.Vout)
	if err != nil {
		return nil, err
	}

	prevTxs := make(map[string]*explorerTx)
	inputs := make([]TxOutput, 0, len(tx.Vin))
	for _, in := range tx.Vin {
		if in.Coinbase != "" || in.TxID == "" {
			continue
		}

		prev, found := prevTxs[in.TxID]
		if !found {
			prev, err = e.getTxWithRetries(ctx, in.TxID)
			if err != nil {
				return nil, fmt.Errorf("failed to get input tx %s: %w", in.TxID, err)
			}
			prevTxs[in.TxID] = prev
		}

		spent, err := spentOutput(prev.Vout, in.Vout)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, spent)
	}

	return &TxDetails{
		TxID:          tx.TxID,
		Confirmations: tx.Confirmations,
		Inputs:        inputs,
		Outputs:       outputs,
	}, nil
}

func (e *ExplorerClient) getTxWithRetries(ctx context.Context, txID string) (*explorerTx, error) {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(e.retryInterval), e.maxRetries), ctx)

	operation := func() (*explorerTx, error) {
		tx, err := e.getTx(ctx, txID)
		if errors.Is(err, ErrTxNotFound) || errors.Is(err, ErrUnexpectedResponse) {
			return nil, backoff.Permanent(err)
		}
		return tx, err
	}

	notify := func(err error, nextTry time.Duration) {
		e.logger.Warn("failed to get transaction from explorer", slog.String("txid", txID), slog.String("next try", nextTry.String()), slog.String("err", err.Error()))
	}

	return backoff.RetryNotifyWithData(operation, policy, notify)
}

func (e *ExplorerClient) getTx(ctx context.Context, txID string) (*explorerTx, error) {
	req, err := e.httpRequest(ctx, http.MethodGet, fmt.Sprintf("tx/hash/%s", txID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Join(ErrTxNotFound, fmt.Errorf("txid: %s", txID))
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.Join(ErrRequestFailed, fmt.Errorf("response status: %s", resp.Status))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Join(ErrUnexpectedResponse, fmt.Errorf("response status: %s", resp.Status))
	}

	var tx explorerTx
	err = json.NewDecoder(resp.Body).Decode(&tx)
	if err != nil {
		return nil, errors.Join(ErrUnexpectedResponse, fmt.Errorf("failed to decode response: %v", err))
	}

	return &tx, nil
}

func (e *ExplorerClient) httpRequest(ctx context.Context, method string, endpoint string, payload []byte) (*http.Request, error) {
	var body io.Reader
	if len(payload) > 0 {
		body = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/%s", e.url, endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	if e.authorization != "" {
		req.Header.Set("Authorization", e.authorization)
	}

	return req, nil
}

func explorerOutputs(vout []explorerOut) ([]TxOutput, error) {
	outputs := make([]TxOutput, 0, len(vout))
	for _, out := range vout {
		o, err := toTxOutput(out)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, o)
	}
	return outputs, nil
}

func spentOutput(vout []explorerOut, index uint32) (TxOutput, error) {
	for _, out := range vout {
		if out.N == index {
			return toTxOutput(out)
		}
	}
	return TxOutput{}, errors.Join(ErrUnexpectedResponse, fmt.Errorf("spent output %d not found", index))
}

func toTxOutput(out explorerOut) (TxOutput, error) {
	amount, err := fees.ToSatoshis(out.Value)
	if err != nil {
		return TxOutput{}, errors.Join(ErrInvalidAmount, err)
	}

	var address string
	if len(out.ScriptPubKey.Addresses) > 0 {
		address = out.ScriptPubKey.Addresses[0]
	}

	return TxOutput{Address: address, Amount: amount}, nil
}
