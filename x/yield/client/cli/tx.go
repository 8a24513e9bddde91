package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/openarisan/arisan-chain/x/yield/types"
)

// GetTxCmd returns the transaction commands for the yield module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "yield",
		Short:                      "Yield module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdUpdateYield(),
		CmdPauseDeposits(),
		CmdUnpauseDeposits(),
		CmdRegisterStrategy(),
		CmdSetStrategyActive(),
	)

	return cmd
}

// CmdUpdateYield returns the command to refresh the accrued yield for a pool
func CmdUpdateYield() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [pool-id]",
		Short: "Refresh the accrued yield for a pool investment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %v", err)
			}

			msg := &types.MsgUpdateYield{
				Caller: clientCtx.GetFromAddress().String(),
				PoolID: poolID,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPauseDeposits returns the command to pause new deposits
func CmdPauseDeposits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause new deposits (authority only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgPauseDeposits{
				Authority: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUnpauseDeposits returns the command to resume deposits
func CmdUnpauseDeposits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpause",
		Short: "Resume deposits (authority only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUnpauseDeposits{
				Authority: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRegisterStrategy returns the command to register a yield strategy
func CmdRegisterStrategy() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-strategy [strategy-id] [name] [expected-apy-bps]",
		Short: "Register a new yield strategy (authority only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			strategyID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid strategy id: %v", err)
			}
			apyBps, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid apy bps: %v", err)
			}

			msg := &types.MsgRegisterStrategy{
				Authority:      clientCtx.GetFromAddress().String(),
				StrategyID:     strategyID,
				Name:           args[1],
				ExpectedAPYBps: apyBps,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetStrategyActive returns the command to toggle a strategy
func CmdSetStrategyActive() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-strategy-active [strategy-id] [true|false]",
		Short: "Activate or deactivate a yield strategy (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			strategyID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid strategy id: %v", err)
			}
			active, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid active flag: %v", err)
			}

			msg := &types.MsgSetStrategyActive{
				Authority:  clientCtx.GetFromAddress().String(),
				StrategyID: strategyID,
				Active:     active,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
