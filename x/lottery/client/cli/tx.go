package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/openarisan/arisan-chain/x/lottery/types"
)

// GetTxCmd returns the transaction commands for the lottery module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "lottery",
		Short:                      "Lottery module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdUpdateConfig(),
	)

	return cmd
}

// CmdUpdateConfig returns the command to update the draw configuration
func CmdUpdateConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-config [prize-pool-percentage] [round-interval-seconds]",
		Short: "Update the prize share and draw interval (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			interval, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid interval: %v", err)
			}

			msg := &types.MsgUpdateConfig{
				Authority:            clientCtx.GetFromAddress().String(),
				PrizePoolPercentage:  args[0],
				RoundIntervalSeconds: interval,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
