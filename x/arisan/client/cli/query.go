package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/openarisan/arisan-chain/x/arisan/types"
)

// DurationInfo is a CLI-friendly supported duration entry
type DurationInfo struct {
	Seconds int64  `json:"seconds"`
	Label   string `json:"label"`
}

// GetQueryCmd returns the cli query commands for the arisan module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "arisan",
		Short:                      "Querying commands for the arisan module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryPool(),
		CmdQueryPools(),
		CmdQueryMembers(),
		CmdQueryStatistics(),
		CmdQueryDurations(),
	)

	return cmd
}

// CmdQueryPool returns the command to query one pool
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a savings pool by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Pool query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/pools/v1/pool/%s\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPools returns the command to query all pools
func CmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all savings pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Pools query requires running node connection")
			fmt.Println("Use REST API: GET /arisan/pools/v1/pools")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryMembers returns the command to query a pool's member list
func CmdQueryMembers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members [pool-id]",
		Short: "Query the member list of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Members query requires running node connection")
			fmt.Printf("Use REST API: GET /arisan/pools/v1/pool/%s/members\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryStatistics returns the command to query aggregate pool statistics
func CmdQueryStatistics() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Query aggregate pool statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Statistics query requires running node connection")
			fmt.Println("Use REST API: GET /arisan/pools/v1/stats")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryDurations returns the command to list supported pool durations
func CmdQueryDurations() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "durations",
		Short: "List the supported pool durations",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := map[int64]string{
				7 * 24 * 60 * 60:   "1 week",
				30 * 24 * 60 * 60:  "30 days",
				90 * 24 * 60 * 60:  "90 days",
				180 * 24 * 60 * 60: "180 days",
			}
			durations := make([]DurationInfo, 0, len(types.SupportedDurations))
			for _, secs := range types.SupportedDurations {
				durations = append(durations, DurationInfo{Seconds: secs, Label: labels[secs]})
			}

			output, _ := json.MarshalIndent(durations, "", "  ")
			fmt.Println(string(output))
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
