package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/openarisan/arisan-chain/x/badge/types"
)

// GetQueryCmd returns the cli query commands for the badge module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "badge",
		Short:                      "Querying commands for the badge module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryBadge(),
		CmdQueryBadgesByHolder(),
		CmdQueryTopHolders(),
		CmdQueryBadgeTypes(),
	)

	return cmd
}

// CmdQueryBadge returns the command to query one badge
func CmdQueryBadge() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge [token-id]",
		Short: "Query a badge by token id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Badge query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/badge/v1/badge/%s\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBadgesByHolder returns the command to query a holder's badges
func CmdQueryBadgesByHolder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holder [address]",
		Short: "Query the badges held by an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Holder query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/badge/v1/holder/%s\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTopHolders returns the command to query the holder leaderboard
func CmdQueryTopHolders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [limit]",
		Short: "Query the top badge holders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Leaderboard query requires running node connection")
			fmt.Println("Use REST API: GET /arisan/badge/v1/top")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBadgeTypes returns the command to list the known badge types
func CmdQueryBadgeTypes() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the known badge types",
		RunE: func(cmd *cobra.Command, args []string) error {
			badgeTypes := []string{
				types.BadgeTypeJoin,
				types.BadgeTypeLotteryWinner,
				types.BadgeTypePoolCompletion,
			}
			output, _ := json.MarshalIndent(badgeTypes, "", "  ")
			fmt.Println(string(output))
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
