package gateway

import (
	"context"

	"github.com/rampp2p/escrow/internal/escrow"
)

// ContractParties are the public keys a contract is compiled for.
type ContractParties struct {
	ArbiterPubKey string
	BuyerPubKey   string
	SellerPubKey  string
}

type CompiledContract struct {
	Address string
	Version string
}

// SpendRequest asks for a signed release or refund spending the contract.
type SpendRequest struct {
	Action           escrow.ActionType
	Keys             ContractParties
	CallerPubKey     string
	CallerSig        string
	RecipientAddress string
	ArbiterAddress   string
	Amount           uint64
}

type SpendResult struct {
	TxID string
	Hex  string
}

type ContractGateway interface {
	Compile(ctx context.Context, parties ContractParties) (*CompiledContract, error)
	SignSpend(ctx context.Context, req SpendRequest) (*SpendResult, error)
}
