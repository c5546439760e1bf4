package verifier

import (
	"fmt"

	"github.com/rampp2p/escrow/internal/chain"
	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/fees"
)

type Config struct {
	MinConfirmations uint64
	ServicerAddress  string
	Fees             fees.Schedule
}

// Target is what a transaction is checked against.
type Target struct {
	Action          escrow.ActionType
	ContractAddress string
	ContractVersion string
	Amount          uint64
	ArbiterAddress  string
	BuyerAddress    string
	SellerAddress   string
}

// Verdict is the outcome of a completed check. For ESCROW, Outputs holds the contract output. For RELEASE and
// REFUND it holds every output scanned, role legs and change alike.
type Verdict struct {
	Valid   bool             `json:"valid"`
	Outputs []chain.TxOutput `json:"outputs"`
	Reason  string           `json:"reason,omitempty"`
}

type Verifier struct {
	cfg Config
}

func New(cfg Config) (*Verifier, error) {
	err := cfg.Fees.Validate()
	if err != nil {
		return nil, err
	}

	if cfg.MinConfirmations == 0 {
		cfg.MinConfirmations = 1
	}

	return &Verifier{cfg: cfg}, nil
}

// Verify checks tx against the target. Missing confirmations or incomplete data are returned as errors, a
// transaction that does not satisfy the contract yields an invalid verdict.
func (v *Verifier) Verify(target Target, tx *chain.TxDetails) (*Verdict, error) {
	if tx == nil || tx.Confirmations < v.cfg.MinConfirmations {
		return nil, escrow.ErrTxUnconfirmed
	}

	if len(tx.Inputs) == 0 || len(tx.Outputs) == 0 {
		return nil, escrow.ErrTxIncomplete
	}

	switch target.Action {
	case escrow.ActionEscrow:
		return v.verifyEscrow(target, tx)
	case escrow.ActionRelease:
		return v.verifySpend(target, target.BuyerAddress, "buyer", tx)
	case escrow.ActionRefund:
		return v.verifySpend(target, target.SellerAddress, "seller", tx)
	}

	return nil, fmt.Errorf("%w: %s", escrow.ErrInvalidAction, target.Action)
}

func (v *Verifier) verifyEscrow(target Target, tx *chain.TxDetails) (*Verdict, error) {
	expected, err := v.cfg.Fees.EscrowAmount(target.Amount, target.ContractVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", escrow.ErrInvalidOrder, err)
	}

	for _, out := range tx.Outputs {
		if out.Address != target.ContractAddress {
			continue
		}

		if out.Amount != expected {
			return &Verdict{
				Outputs: []chain.TxOutput{out},
				Reason:  fmt.Sprintf("contract incorrect output amount: expected %d, got %d", expected, out.Amount),
			}, nil
		}

		return &Verdict{Valid: true, Outputs: []chain.TxOutput{out}}, nil
	}

	return &Verdict{Reason: "contract output not found"}, nil
}

type leg struct {
	role    string
	address string
	amount  uint64
	found   bool
}

func (v *Verifier) verifySpend(target Target, counterpartyAddress, counterpartyRole string, tx *chain.TxDetails) (*Verdict, error) {
	spendsContract := false
	for _, in := range tx.Inputs {
		if in.Address == target.ContractAddress {
			spendsContract = true
			break
		}
	}
	if !spendsContract {
		return nil, escrow.ErrContractNotSpender
	}

	payouts, err := v.cfg.Fees.Payouts(target.Amount, target.ContractVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", escrow.ErrInvalidOrder, err)
	}

	legs := []*leg{
		{role: "arbiter", address: target.ArbiterAddress, amount: payouts.Arbiter},
		{role: "servicer", address: v.cfg.ServicerAddress, amount: payouts.Servicer},
		{role: counterpartyRole, address: counterpartyAddress, amount: payouts.Counterparty},
	}

	scanned := make([]chain.TxOutput, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		scanned = append(scanned, out)

		l := matchLeg(legs, out.Address)
		if l == nil {
			continue
		}

		l.found = true
		if out.Amount != l.amount {
			return &Verdict{
				Outputs: scanned,
				Reason:  fmt.Sprintf("%s incorrect output amount: expected %d, got %d", l.role, l.amount, out.Amount),
			}, nil
		}
	}

	for _, l := range legs {
		if !l.found {
			return &Verdict{Outputs: scanned, Reason: fmt.Sprintf("%s output not found", l.role)}, nil
		}
	}

	return &Verdict{Valid: true, Outputs: scanned}, nil
}

// matchLeg returns the first unmatched leg paying to address.
func matchLeg(legs []*leg, address string) *leg {
	if address == "" {
		return nil
	}

	for _, l := range legs {
		if !l.found && l.address == address {
			return l
		}
	}
	return nil
}
