package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/protectedpay/protectedpay-api/internal/app"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show the connected wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			status, err := a.Wallet.Status(ctx)
			if err != nil {
				return describeError(err, "load wallet")
			}
			return out.walletStatus(status)
		})
	},
}

var walletSwitchCmd = &cobra.Command{
	Use:   "switch <chain-id>",
	Short: "Switch the wallet to another supported chain",
	Example: `  ppay wallet switch 656476
  ppay wallet switch 0xba9304`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chainID, err := parseChainID(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			status, err := a.Wallet.SwitchChain(ctx, chainID)
			if err != nil {
				return describeError(err, "switch chain")
			}
			return out.walletStatus(status)
		})
	},
}

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List the supported chains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			return out.chains(a.Wallet.ListChains())
		})
	},
}

func init() {
	walletCmd.AddCommand(walletSwitchCmd)
}

// parseChainID accepts decimal ids and the 0x-prefixed form wallets use
func parseChainID(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 0)
	if !ok || id.Sign() <= 0 {
		return nil, fmt.Errorf("invalid chain id %q", s)
	}
	return id, nil
}

func (p *printer) walletStatus(s *business.WalletStatus) error {
	if p.json {
		return p.writeJSON(responses.FromWalletStatus(s))
	}
	if !s.IsConnected {
		return p.fields("Wallet", [][]string{{"Status", "disconnected"}})
	}
	rows := [][]string{
		{"Status", "connected"},
		{"Address", s.Address.Hex()},
		{"Balance", helpers.FormatAmount(s.BalanceWei)},
	}
	if s.Chain != nil {
		rows = append(rows, []string{"Chain", fmt.Sprintf("%s (%s)", s.Chain.Name, s.Chain.ID)})
	} else if s.ChainID != nil {
		rows = append(rows, []string{"Chain", s.ChainID.String()})
	}
	return p.fields("Wallet", rows)
}
