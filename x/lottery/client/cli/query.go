package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/openarisan/arisan-chain/x/lottery/types"
)

// ConfigInfo is a CLI-friendly draw configuration struct
type ConfigInfo struct {
	PrizePoolPercentage  string `json:"prize_pool_percentage"`
	RoundIntervalSeconds int64  `json:"round_interval_seconds"`
}

// GetQueryCmd returns the cli query commands for the lottery module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "lottery",
		Short:                      "Querying commands for the lottery module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryRound(),
		CmdQueryCurrentRound(),
		CmdQueryRounds(),
		CmdQueryConfig(),
	)

	return cmd
}

// CmdQueryRound returns the command to query one draw result
func CmdQueryRound() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round [pool-id] [round]",
		Short: "Query a draw result for a pool round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Round query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/lottery/v1/round/%s/%s\n", args[0], args[1])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryCurrentRound returns the command to query the latest round number
func CmdQueryCurrentRound() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current [pool-id]",
		Short: "Query the latest completed round for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Current round query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/lottery/v1/current/%s\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryRounds returns the command to query a pool's draw history
func CmdQueryRounds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds [pool-id]",
		Short: "Query the full draw history for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Rounds query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/lottery/v1/rounds/%s\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryConfig returns the command to print the default draw configuration
func CmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default draw configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := types.DefaultConfig()
			info := ConfigInfo{
				PrizePoolPercentage:  cfg.PrizePoolPercentage.String(),
				RoundIntervalSeconds: cfg.RoundIntervalSeconds,
			}

			output, _ := json.MarshalIndent(info, "", "  ")
			fmt.Println(string(output))
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
