package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	sdkTx "github.com/bsv-blockchain/go-sdk/transaction"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/fees"
)

var controlChars = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)

var (
	ErrEmptyOutput   = errors.New("contract command produced no output")
	ErrCommandFailed = errors.New("contract command failed")
	ErrMissingResult = errors.New("contract command returned no result")
)

// RunFunc executes a command and returns its standard output.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

type Subprocess struct {
	logger  *slog.Logger
	command string
	args    []string
	timeout time.Duration
	version string
	run     RunFunc
	now     func() time.Time
}

type response struct {
	Success         bool   `json:"success"`
	ContractAddress string `json:"contract_address"`
	Version         string `json:"version"`
	TxID            string `json:"txid"`
	Hex             string `json:"hex"`
	Error           string `json:"error"`
}

func WithTimeout(d time.Duration) func(*Subprocess) {
	return func(s *Subprocess) {
		s.timeout = d
	}
}

func WithContractVersion(version string) func(*Subprocess) {
	return func(s *Subprocess) {
		s.version = version
	}
}

func WithRunner(run RunFunc) func(*Subprocess) {
	return func(s *Subprocess) {
		s.run = run
	}
}

func WithNow(now func() time.Time) func(*Subprocess) {
	return func(s *Subprocess) {
		s.now = now
	}
}

// NewSubprocess creates a gateway running command with the given leading args, e.g. node escrow.js.
func NewSubprocess(logger *slog.Logger, command string, args []string, opts ...func(*Subprocess)) *Subprocess {
	s := &Subprocess{
		logger:  logger.With(slog.String("module", "gateway")),
		command: command,
		args:    args,
		timeout: 30 * time.Second,
		version: "v1",
		run:     execCommand,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Subprocess) Compile(ctx context.Context, parties ContractParties) (*CompiledContract, error) {
	res, err := s.execute(ctx, "contract",
		parties.ArbiterPubKey,
		parties.BuyerPubKey,
		parties.SellerPubKey,
		strconv.FormatInt(s.now().Unix(), 10),
	)
	if err != nil {
		return nil, err
	}

	if res.ContractAddress == "" {
		return nil, errors.Join(escrow.ErrGateway, ErrMissingResult)
	}

	version := res.Version
	if version == "" {
		version = s.version
	}

	return &CompiledContract{Address: res.ContractAddress, Version: version}, nil
}

func (s *Subprocess) SignSpend(ctx context.Context, req SpendRequest) (*SpendResult, error) {
	var subcommand string
	switch req.Action {
	case escrow.ActionRelease:
		subcommand = "release"
	case escrow.ActionRefund:
		subcommand = "refund"
	default:
		return nil, fmt.Errorf("%w: %s cannot be signed", escrow.ErrInvalidAction, req.Action)
	}

	res, err := s.execute(ctx, subcommand,
		req.Keys.ArbiterPubKey,
		req.Keys.BuyerPubKey,
		req.Keys.SellerPubKey,
		req.CallerPubKey,
		req.CallerSig,
		req.RecipientAddress,
		req.ArbiterAddress,
		fees.FormatAmount(req.Amount),
	)
	if err != nil {
		return nil, err
	}

	txID := res.TxID
	if txID == "" && res.Hex != "" {
		tx, err := sdkTx.NewTransactionFromHex(res.Hex)
		if err != nil {
			return nil, errors.Join(escrow.ErrGateway, fmt.Errorf("failed to parse transaction hex: %w", err))
		}
		txID = tx.TxID().String()
	}

	if txID == "" {
		return nil, errors.Join(escrow.ErrGateway, ErrMissingResult)
	}

	return &SpendResult{TxID: txID, Hex: res.Hex}, nil
}

func (s *Subprocess) execute(ctx context.Context, subcommand string, params ...string) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	args := make([]string, 0, len(s.args)+1+len(params))
	args = append(args, s.args...)
	args = append(args, subcommand)
	args = append(args, params...)

	start := time.Now()
	out, err := s.run(ctx, s.command, args...)
	if err != nil {
		s.logger.Error("Contract command failed", slog.String("subcommand", subcommand), slog.String("err", err.Error()))
		return nil, errors.Join(escrow.ErrGateway, ErrCommandFailed, err)
	}

	s.logger.Debug("Contract command finished", slog.String("subcommand", subcommand), slog.Duration("duration", time.Since(start)))

	clean := bytes.TrimSpace(controlChars.ReplaceAll(out, nil))
	if len(clean) == 0 {
		return nil, errors.Join(escrow.ErrGateway, ErrEmptyOutput)
	}

	var res response
	err = json.Unmarshal(clean, &res)
	if err != nil {
		return nil, errors.Join(escrow.ErrGateway, fmt.Errorf("failed to decode contract command output: %w", err))
	}

	if !res.Success {
		return nil, errors.Join(escrow.ErrGateway, fmt.Errorf("%w: %s", ErrCommandFailed, res.Error))
	}

	return &res, nil
}

func execCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return nil, err
	}

	return out, nil
}
