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
	groupParticipants uint64
	groupRemarks      string
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Create, fund and inspect group payments",
}

var groupCreateCmd = &cobra.Command{
	Use:     "create <recipient> <total-amount>",
	Short:   "Create a group payment split between participants",
	Example: `  ppay group create alice 3 --participants 3 --remarks "dinner"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Creating group payment", func() (*business.TxReceipt, error) {
				return a.GroupPayments.Create(ctx, params.CreateGroupPaymentParams{
					Recipient:       args[0],
					NumParticipants: groupParticipants,
					TotalAmount:     args[1],
					Remarks:         groupRemarks,
				})
			})
			if err != nil {
				return describeError(err, "create group payment")
			}
			return out.receipt(receipt)
		})
	},
}

var groupContributeCmd = &cobra.Command{
	Use:   "contribute <payment-id>",
	Short: "Pay your share of a group payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Contributing to group payment", func() (*business.TxReceipt, error) {
				return a.GroupPayments.Contribute(ctx, args[0])
			})
			if err != nil {
				return describeError(err, "contribute to group payment")
			}
			return out.receipt(receipt)
		})
	},
}

var groupShowCmd = &cobra.Command{
	Use:   "show <payment-id>",
	Short: "Show one group payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			payment, err := a.GroupPayments.Get(ctx, args[0])
			if err != nil {
				return describeError(err, "load group payment")
			}
			if out.json {
				return out.writeJSON(responses.FromGroupPayment(*payment))
			}
			return out.groupPayments("Group payment", []business.GroupPayment{*payment})
		})
	},
}

var groupListCmd = &cobra.Command{
	Use:   "list [address]",
	Short: "List group payments created by or funded by an address",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			payments, err := a.GroupPayments.ListForUser(ctx, optionalArg(args))
			if err != nil {
				return describeError(err, "load group payments")
			}
			if out.json {
				return out.writeJSON(responses.GroupPaymentsResponse{
					Object:        "group_payments",
					Created:       responses.FromGroupPayments(payments.Created),
					Participating: responses.FromGroupPayments(payments.Participating),
				})
			}
			if err := out.groupPayments("Created", payments.Created); err != nil {
				return err
			}
			return out.groupPayments("Participating", payments.Participating)
		})
	},
}

func init() {
	groupCreateCmd.Flags().Uint64Var(&groupParticipants, "participants", 2, "number of participants, at least 2")
	groupCreateCmd.Flags().StringVar(&groupRemarks, "remarks", "", "note stored with the payment")

	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupContributeCmd)
	groupCmd.AddCommand(groupShowCmd)
	groupCmd.AddCommand(groupListCmd)
}
