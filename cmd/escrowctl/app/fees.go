package app

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rampp2p/escrow/internal/fees"
)

var FeesCmd = &cobra.Command{
	Use:   "fees <amount>",
	Short: "Show the fees, escrow amount and payouts of an order amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractVersion, err := cmd.Flags().GetString("contract-version")
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		amount, err := fees.ParseAmount(args[0])
		if err != nil {
			return err
		}

		out, err := feeTable(cfg.Fees.Schedule(), amount, contractVersion)
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	FeesCmd.Flags().String("contract-version", "", "contract version to price the contract fee for")
}

func feeTable(schedule fees.Schedule, amount uint64, contractVersion string) (string, error) {
	err := schedule.Validate()
	if err != nil {
		return "", err
	}

	b, err := schedule.Fees(amount, contractVersion)
	if err != nil {
		return "", err
	}

	escrowAmount, err := schedule.EscrowAmount(amount, contractVersion)
	if err != nil {
		return "", err
	}

	payouts, err := schedule.Payouts(amount, contractVersion)
	if err != nil {
		return "", err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Item", "Satoshis", "Amount"})
	for _, r := range []struct {
		name string
		sats uint64
	}{
		{"order amount", amount},
		{"contract fee", b.ContractFee},
		{"arbitration fee", b.ArbitrationFee},
		{"service fee", b.ServiceFee},
		{"total fees", b.Total},
		{"escrow amount", escrowAmount},
		{"arbiter payout", payouts.Arbiter},
		{"servicer payout", payouts.Servicer},
		{"counterparty payout", payouts.Counterparty},
	} {
		t.AppendRow(table.Row{r.name, r.sats, fees.FormatAmount(r.sats)})
	}

	return t.Render(), nil
}
