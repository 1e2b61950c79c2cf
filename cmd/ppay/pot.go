package main

import (
	"context"

	"github.com/protectedpay/protectedpay-api/internal/app"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/spf13/cobra"
)

var (
	potInitial string
	potRemarks string
)

var potCmd = &cobra.Command{
	Use:   "pot",
	Short: "Manage savings pots",
}

var potCreateCmd = &cobra.Command{
	Use:     "create <name> <target-amount>",
	Short:   "Create a savings pot, optionally funding it",
	Example: `  ppay pot create holiday 10 --initial 1.5`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Creating savings pot", func() (*business.TxReceipt, error) {
				return a.SavingsPots.Create(ctx, params.CreateSavingsPotParams{
					Name:          args[0],
					TargetAmount:  args[1],
					InitialAmount: potInitial,
					Remarks:       potRemarks,
				})
			})
			if err != nil {
				return describeError(err, "create savings pot")
			}
			return out.receipt(receipt)
		})
	},
}

var potContributeCmd = &cobra.Command{
	Use:   "contribute <pot-id> <amount>",
	Short: "Add funds to a savings pot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Contributing to savings pot", func() (*business.TxReceipt, error) {
				return a.SavingsPots.Contribute(ctx, args[0], args[1])
			})
			if err != nil {
				return describeError(err, "contribute to savings pot")
			}
			return out.receipt(receipt)
		})
	},
}

var potBreakCmd = &cobra.Command{
	Use:   "break <pot-id>",
	Short: "Break a savings pot and withdraw its balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Breaking savings pot", func() (*business.TxReceipt, error) {
				return a.SavingsPots.Break(ctx, args[0])
			})
			if err != nil {
				return describeError(err, "break savings pot")
			}
			return out.receipt(receipt)
		})
	},
}

var potShowCmd = &cobra.Command{
	Use:   "show <pot-id>",
	Short: "Show one savings pot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			pot, err := a.SavingsPots.Get(ctx, args[0])
			if err != nil {
				return describeError(err, "load savings pot")
			}
			if out.json {
				return out.writeJSON(responses.FromSavingsPot(*pot))
			}
			return out.savingsPots([]business.SavingsPot{*pot})
		})
	},
}

var potListCmd = &cobra.Command{
	Use:   "list [address]",
	Short: "List savings pots owned by an address",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			pots, err := a.SavingsPots.ListForUser(ctx, optionalArg(args))
			if err != nil {
				return describeError(err, "load savings pots")
			}
			return out.savingsPots(pots)
		})
	},
}

func init() {
	potCreateCmd.Flags().StringVar(&potInitial, "initial", "", "amount to deposit on creation")
	potCreateCmd.Flags().StringVar(&potRemarks, "remarks", "", "note stored with the pot")

	potCmd.AddCommand(potCreateCmd)
	potCmd.AddCommand(potContributeCmd)
	potCmd.AddCommand(potBreakCmd)
	potCmd.AddCommand(potShowCmd)
	potCmd.AddCommand(potListCmd)
}
