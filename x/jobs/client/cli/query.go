package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/loom-chain/loom/x/jobs/types"
)

const flagStatus = "status"

// GetQueryCmd returns the query commands for the jobs module
func GetQueryCmd() *cobra.Command {
	jobsQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the jobs module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	jobsQueryCmd.AddCommand(
		CmdQueryJob(),
		CmdQueryJobs(),
		CmdQueryJobsByRequester(),
		CmdQueryJobsByProvider(),
		CmdQueryParams(),
		CmdQueryRequiredDeposit(),
		CmdQueryPriceFeed(),
	)

	return jobsQueryCmd
}

// CmdQueryJob returns a CLI command handler for querying a single job
func CmdQueryJob() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job [job-id]",
		Short: "Query a job by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Job(cmd.Context(), &types.QueryJobRequest{JobId: jobID})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryJobs returns a CLI command handler for listing jobs
func CmdQueryJobs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs, optionally filtered by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			status, err := cmd.Flags().GetString(flagStatus)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Jobs(cmd.Context(), &types.QueryJobsRequest{Status: status})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().String(flagStatus, "", "Filter by status (open|accepted|submitted|paid)")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryJobsByRequester returns a CLI command handler for listing a
// requester's jobs
func CmdQueryJobsByRequester() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs-by-requester [address]",
		Short: "List jobs posted by an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.JobsByRequester(cmd.Context(), &types.QueryJobsByRequesterRequest{Requester: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryJobsByProvider returns a CLI command handler for listing a
// provider's jobs
func CmdQueryJobsByProvider() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs-by-provider [address]",
		Short: "List jobs assigned to an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.JobsByProvider(cmd.Context(), &types.QueryJobsByProviderRequest{Provider: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryParams returns a CLI command handler for querying module params
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the jobs module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(cmd.Context(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryRequiredDeposit returns a CLI command handler for quoting the
// collateral required for a usd reward
func CmdQueryRequiredDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "required-deposit [reward-usd]",
		Short: "Quote the native collateral required for a usd reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			rewardUsd, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid reward usd: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.RequiredDeposit(cmd.Context(), &types.QueryRequiredDepositRequest{RewardUsd: rewardUsd})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPriceFeed returns a CLI command handler for inspecting the oracle
// feed the module prices against
func CmdQueryPriceFeed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price-feed",
		Short: "Show the price feed used to quote job collateral",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.PriceFeed(cmd.Context(), &types.QueryPriceFeedRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
