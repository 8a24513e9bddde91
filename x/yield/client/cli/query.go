package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/openarisan/arisan-chain/x/yield/types"
)

// StrategyInfo is a CLI-friendly strategy entry
type StrategyInfo struct {
	StrategyID     uint64 `json:"strategy_id"`
	Name           string `json:"name"`
	ExpectedAPYBps int64  `json:"expected_apy_bps"`
	Active         bool   `json:"active"`
}

// GetQueryCmd returns the cli query commands for the yield module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "yield",
		Short:                      "Querying commands for the yield module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryInvestment(),
		CmdQueryYield(),
		CmdQueryStrategies(),
		CmdQueryTotalManagedFunds(),
	)

	return cmd
}

// CmdQueryInvestment returns the command to query a pool investment
func CmdQueryInvestment() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investment [pool-id]",
		Short: "Query the investment record for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Investment query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/yield/v1/investment/%s\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryYield returns the command to query accrued yield
func CmdQueryYield() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accrued [pool-id]",
		Short: "Query the accrued yield for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Yield query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/yield/v1/yield/%s\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryStrategies returns the command to list the built-in strategies
func CmdQueryStrategies() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "List the registered yield strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategies := make([]StrategyInfo, 0)
			for _, s := range types.DefaultStrategies() {
				strategies = append(strategies, StrategyInfo{
					StrategyID:     s.StrategyID,
					Name:           s.Name,
					ExpectedAPYBps: s.ExpectedAPYBps,
					Active:         s.IsActive,
				})
			}

			output, _ := json.MarshalIndent(strategies, "", "  ")
			fmt.Println(string(output))
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTotalManagedFunds returns the command to query total managed funds
func CmdQueryTotalManagedFunds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Query the total funds under management",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Total managed funds query requires running node connection")
			fmt.Println("Use REST API: GET /arisan/yield/v1/total")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
