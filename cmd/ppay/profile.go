package main

import (
	"context"
	"fmt"

	"github.com/protectedpay/protectedpay-api/internal/app"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/pterm/pterm"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile [address]",
	Short: "Show a profile, defaulting to the connected wallet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			profile, err := a.Profiles.GetProfile(ctx, optionalArg(args))
			if err != nil {
				return describeError(err, "load profile")
			}
			if out.json {
				return out.writeJSON(responses.FromProfile(profile))
			}
			username := profile.Username
			if username == "" {
				username = "(not registered)"
			}
			if err := out.fields("Profile", [][]string{
				{"Address", profile.Address.Hex()},
				{"Username", username},
				{"Balance", helpers.FormatAmount(profile.BalanceWei)},
			}); err != nil {
				return err
			}
			pterm.DefaultSection.Println("Transfers")
			return out.transfers(profile.Transfers)
		})
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Register a username for the connected wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			receipt, err := out.wait("Registering username", func() (*business.TxReceipt, error) {
				return a.Profiles.RegisterUsername(ctx, args[0])
			})
			if err != nil {
				return describeError(err, "register username")
			}
			return out.receipt(receipt)
		})
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <address|username>",
	Short: "Resolve an address to its username or a username to its address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			user, err := a.Profiles.LookupUser(ctx, args[0])
			if err != nil {
				return describeError(err, "look up user")
			}
			if out.json {
				return out.writeJSON(responses.UserResponse{Object: "user", Address: user.Address.Hex(), Username: user.Username})
			}
			return out.fields("User", [][]string{{"Address", user.Address.Hex()}, {"Username", user.Username}})
		})
	},
}

var qrCmd = &cobra.Command{
	Use:   "qr [address]",
	Short: "Print a payment QR code, defaulting to the connected wallet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			qr, err := a.Profiles.PaymentQR(ctx, optionalArg(args))
			if err != nil {
				return describeError(err, "create payment QR code")
			}
			if out.json {
				return out.writeJSON(responses.PaymentQRResponse{Object: "payment_qr", Payload: qr.Payload, DataURL: qr.DataURL})
			}
			code, err := qrcode.New(qr.Payload, qrcode.Low)
			if err != nil {
				return fmt.Errorf("failed to render QR code: %w", err)
			}
			pterm.Println(code.ToSmallString(false))
			pterm.Info.Println(qr.Payload)
			return nil
		})
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan <payload>",
	Short: "Decode a scanned payment QR payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			req, err := a.Profiles.ParsePaymentQR(args[0])
			if err != nil {
				return describeError(err, "parse payment QR code")
			}
			if out.json {
				return out.writeJSON(responses.PaymentRequestResponse{Object: "payment_request", Address: req.Address.Hex(), Username: req.Username})
			}
			return out.fields("Payment request", [][]string{{"Address", req.Address.Hex()}, {"Username", req.Username}})
		})
	},
}

func init() {
	profileCmd.AddCommand(lookupCmd)
	profileCmd.AddCommand(qrCmd)
	profileCmd.AddCommand(scanCmd)
}
