package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/protectedpay/protectedpay-api/internal/app"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/config"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// GlobalFlags are shared by every command
type GlobalFlags struct {
	ConfigDir    string
	OutputFormat string
	Verbose      bool
}

var (
	globalFlags GlobalFlags
	cfg         *config.Config
	out         *printer
)

var rootCmd = &cobra.Command{
	Use:   "ppay",
	Short: "ProtectedPay command line client",
	Long: `ppay talks to the ProtectedPay escrow contract with the configured signer.

Configuration comes from config.yaml in --config-dir, a .env file and
PPAY_* environment variables, e.g. PPAY_CONTRACT_ADDRESS and
PPAY_WALLET_PRIVATE_KEY.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(globalFlags.ConfigDir)
		if err != nil {
			return err
		}

		level := constants.ErrorLevel
		if globalFlags.Verbose {
			level = "debug"
		}
		logger.InitLoggerWithConfig(logger.LoggerConfig{
			Level:       level,
			Stage:       cfg.Stage,
			EnableColor: true,
		})

		out, err = newPrinter(globalFlags.OutputFormat, os.Stdout)
		if err != nil {
			return err
		}
		return cfg.Validate()
	},
}

// Execute runs the root command until it finishes or the process is signalled
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()

	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigDir, "config-dir", os.Getenv(constants.EnvConfigDir), "directory holding config.yaml")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.OutputFormat, "output", "o", formatTable, "output format: table|json")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(chainsCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(refundCmd)
	rootCmd.AddCommand(transfersCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(potCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(watchCmd)
}

// withApp builds the application for one command and tears it down after
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	a, err := app.New(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// describeError turns a classified client error into a message for the
// terminal. action completes "Failed to ...".
func describeError(err error, action string) error {
	if err == nil {
		return nil
	}
	switch protectedpay.KindOf(err) {
	case protectedpay.KindWalletNotConnected:
		return errors.New("please connect your wallet first: configure wallet.private_key, wallet.private_key_arn or wallet.keystore_path")
	case protectedpay.KindInvalidInput, protectedpay.KindAlreadyRegistered, protectedpay.KindNotFound:
		return err
	case protectedpay.KindRejected:
		return fmt.Errorf("transaction was rejected by the signer: %w", err)
	case protectedpay.KindTimeout:
		return fmt.Errorf("timed out trying to %s: %w", action, err)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}
