package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

// GetTxCmd returns the transaction commands for the arisan module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "arisan",
		Short:                      "Arisan module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreatePool(),
		CmdJoinPool(),
		CmdLeavePool(),
		CmdWithdrawFunds(),
		CmdEmergencyCancel(),
		CmdGrantRole(),
		CmdRevokeRole(),
	)

	return cmd
}

// CmdCreatePool returns the command to create a savings pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [name] [contribution-amount] [max-members] [duration-seconds] [strategy-id]",
		Short: "Create a new rotating savings pool",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			maxMembers, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid max members: %v", err)
			}
			duration, err := strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid duration: %v", err)
			}
			strategyID, err := strconv.ParseUint(args[4], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid strategy id: %v", err)
			}

			msg := &types.MsgCreatePool{
				Creator:            clientCtx.GetFromAddress().String(),
				Name:               args[0],
				ContributionAmount: args[1],
				MaxMembers:         maxMembers,
				DurationSeconds:    duration,
				StrategyID:         strategyID,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdJoinPool returns the command to join a pool
func CmdJoinPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join [pool-id] [amount]",
		Short: "Join a pool with the exact contribution amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %v", err)
			}

			msg := &types.MsgJoinPool{
				Member: clientCtx.GetFromAddress().String(),
				PoolID: poolID,
				Amount: args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdLeavePool returns the command to leave a pool before the first draw
func CmdLeavePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave [pool-id]",
		Short: "Leave a pool and refund the contribution (only before the first draw)",
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

			msg := &types.MsgLeavePool{
				Member: clientCtx.GetFromAddress().String(),
				PoolID: poolID,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawFunds returns the command to withdraw the member share
func CmdWithdrawFunds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [pool-id]",
		Short: "Withdraw principal plus yield from a matured or cancelled pool",
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

			msg := &types.MsgWithdrawFunds{
				Member: clientCtx.GetFromAddress().String(),
				PoolID: poolID,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdEmergencyCancel returns the command to cancel an active pool
func CmdEmergencyCancel() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency-cancel [pool-id] [reason]",
		Short: "Cancel an active pool (emergency admin only)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %v", err)
			}
			reason := ""
			if len(args) > 1 {
				reason = args[1]
			}

			msg := &types.MsgEmergencyCancel{
				Admin:  clientCtx.GetFromAddress().String(),
				PoolID: poolID,
				Reason: reason,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdGrantRole returns the command to grant a module role
func CmdGrantRole() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant-role [role] [account]",
		Short: "Grant pool_creator or emergency_admin to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgGrantRole{
				Authority: clientCtx.GetFromAddress().String(),
				Role:      args[0],
				Account:   args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRevokeRole returns the command to revoke a module role
func CmdRevokeRole() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke-role [role] [account]",
		Short: "Revoke a previously granted role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRevokeRole{
				Authority: clientCtx.GetFromAddress().String(),
				Role:      args[0],
				Account:   args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
