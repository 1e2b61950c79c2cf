package main

import (
	"context"

	"github.com/protectedpay/protectedpay-api/internal/app"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <recipient> <amount>",
	Short: "Escrow a transfer to an address or username",
	Example: `  ppay send 0x8ba1f109551bD432803012645Ac136ddd64DBA72 0.5
  ppay send alice 1.25`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Sending transfer", func() (*business.TxReceipt, error) {
				return a.Transfers.Send(ctx, args[0], args[1])
			})
			if err != nil {
				return describeError(err, "send transfer")
			}
			return out.receipt(receipt)
		})
	},
}

var claimCmd = &cobra.Command{
	Use:   "claim <transfer-id|sender-address|sender-username>",
	Short: "Claim a pending transfer",
	Long: `Claim a pending transfer. A 66 character 0x value is a transfer id,
a 42 character 0x value is the sender's address, anything else is the
sender's username.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Claiming transfer", func() (*business.TxReceipt, error) {
				return a.Transfers.Claim(ctx, args[0])
			})
			if err != nil {
				return describeError(err, "claim transfer")
			}
			return out.receipt(receipt)
		})
	},
}

var refundCmd = &cobra.Command{
	Use:   "refund <transfer-id>",
	Short: "Refund a pending transfer you sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Refunding transfer", func() (*business.TxReceipt, error) {
				return a.Transfers.Refund(ctx, args[0])
			})
			if err != nil {
				return describeError(err, "refund transfer")
			}
			return out.receipt(receipt)
		})
	},
}

var transfersCmd = &cobra.Command{
	Use:   "transfers [address]",
	Short: "List transfers for an address, defaulting to the connected wallet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			transfers, err := a.Transfers.ListTransfers(ctx, optionalArg(args))
			if err != nil {
				return describeError(err, "load transfers")
			}
			return out.transfers(transfers)
		})
	},
}

var transferShowCmd = &cobra.Command{
	Use:   "show <transfer-id>",
	Short: "Show one transfer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			transfer, err := a.Transfers.GetTransfer(ctx, args[0])
			if err != nil {
				return describeError(err, "load transfer")
			}
			return out.transfers([]business.Transfer{*transfer})
		})
	},
}

func init() {
	transfersCmd.AddCommand(transferShowCmd)
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
