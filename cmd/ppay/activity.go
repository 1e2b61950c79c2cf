package main

import (
	"context"
	"errors"

	"github.com/protectedpay/protectedpay-api/internal/app"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var errNoActivityStore = errors.New("activity needs a database: set database.url")

var (
	activityLimit  int32
	activityOffset int32
	watchOnce      bool
)

var activityCmd = &cobra.Command{
	Use:   "activity [address]",
	Short: "List indexed contract events for an address, defaulting to the connected wallet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if a.Activity == nil {
				return errNoActivityStore
			}
			events, err := a.Activity.ListActivity(ctx, params.ListActivityParams{
				Address: optionalArg(args),
				Limit:   activityLimit,
				Offset:  activityOffset,
			})
			if err != nil {
				return describeError(err, "load activity")
			}
			return out.events(events)
		})
	},
}

var activityHistoryCmd = &cobra.Command{
	Use:   "history <entity-id>",
	Short: "List the events of one transfer, group payment or savings pot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if a.Activity == nil {
				return errNoActivityStore
			}
			events, err := a.Activity.ListEntityHistory(ctx, args[0])
			if err != nil {
				return describeError(err, "load history")
			}
			return out.events(events)
		})
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the activity indexer in the foreground",
	Long: `Mirror contract events into the database until interrupted.
With --once, index up to the current head and exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			ix := a.Indexer()
			if ix == nil {
				return errNoActivityStore
			}

			if watchOnce {
				stored, err := ix.Sync(ctx)
				if err != nil {
					return describeError(err, "index contract events")
				}
				pterm.Success.Printfln("Indexed %d events", stored)
				return nil
			}

			pterm.Info.Printfln("Watching %s, press Ctrl+C to stop", a.Config.ContractAddress().Hex())
			a.StartIndexer(ctx)
			<-ctx.Done()
			return nil
		})
	},
}

func init() {
	activityCmd.Flags().Int32Var(&activityLimit, "limit", params.DefaultActivityLimit, "maximum number of events")
	activityCmd.Flags().Int32Var(&activityOffset, "offset", 0, "number of events to skip")
	activityCmd.AddCommand(activityHistoryCmd)

	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "index up to the chain head and exit")
}
