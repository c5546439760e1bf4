package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/rampp2p/escrow/internal/escrow"
)

// InMemory derives contract addresses and txids from the request contents. Identical requests give
// identical results.
type InMemory struct {
	mu       sync.Mutex
	version  string
	Compiled []ContractParties
	Spends   []SpendRequest
	Err      error
}

func NewInMemory(version string) *InMemory {
	return &InMemory{version: version}
}

func (g *InMemory) Compile(_ context.Context, parties ContractParties) (*CompiledContract, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Err != nil {
		return nil, fmt.Errorf("%w: %v", escrow.ErrGateway, g.Err)
	}

	g.Compiled = append(g.Compiled, parties)
	digest := hash("contract", parties.ArbiterPubKey, parties.BuyerPubKey, parties.SellerPubKey)

	return &CompiledContract{Address: "contract-" + digest[:40], Version: g.version}, nil
}

func (g *InMemory) SignSpend(_ context.Context, req SpendRequest) (*SpendResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Err != nil {
		return nil, fmt.Errorf("%w: %v", escrow.ErrGateway, g.Err)
	}

	if req.Action != escrow.ActionRelease && req.Action != escrow.ActionRefund {
		return nil, fmt.Errorf("%w: %s cannot be signed", escrow.ErrInvalidAction, req.Action)
	}

	g.Spends = append(g.Spends, req)

	return &SpendResult{TxID: hash(string(req.Action), req.Keys.ArbiterPubKey, req.Keys.BuyerPubKey, req.Keys.SellerPubKey, req.RecipientAddress)}, nil
}

func hash(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}
