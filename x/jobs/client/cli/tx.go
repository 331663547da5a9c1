package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/jobs/types"
)

// GetTxCmd returns the transaction commands for the jobs module
func GetTxCmd() *cobra.Command {
	jobsTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Jobs transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	jobsTxCmd.AddCommand(
		CmdPostJob(),
		CmdAcceptJob(),
		CmdSubmitResult(),
		CmdApproveAndPay(),
	)

	return jobsTxCmd
}

// CmdPostJob returns a CLI command handler for posting a job
func CmdPostJob() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post-job [data-url] [script-url] [reward-usd] [deposit]",
		Short: "Post a job, escrowing native collateral for a usd reward",
		Long: `Post a job with a usd-denominated reward (fixed point, 8 decimals).
The deposit must cover the oracle-quoted collateral; any excess is refunded.

Example:
  $ loomd tx jobs post-job ipfs://Qm_data ipfs://Qm_script 1000000000 4000uloom --from requester`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			rewardUsd, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid reward usd: %s", args[2])
			}

			deposit, err := sdk.ParseCoinNormalized(args[3])
			if err != nil {
				return fmt.Errorf("invalid deposit: %w", err)
			}

			msg := &types.MsgPostJob{
				Requester: clientCtx.GetFromAddress().String(),
				DataUrl:   args[0],
				ScriptUrl: args[1],
				RewardUsd: rewardUsd,
				Deposit:   deposit,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAcceptJob returns a CLI command handler for accepting an open job
func CmdAcceptJob() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept-job [job-id]",
		Short: "Accept an open job (first come first served)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id: %w", err)
			}

			msg := &types.MsgAcceptJob{
				Provider: clientCtx.GetFromAddress().String(),
				JobId:    jobID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitResult returns a CLI command handler for submitting a job result
func CmdSubmitResult() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-result [job-id] [result-url]",
		Short: "Submit the result url for an accepted job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id: %w", err)
			}

			msg := &types.MsgSubmitResult{
				Provider:  clientCtx.GetFromAddress().String(),
				JobId:     jobID,
				ResultUrl: args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdApproveAndPay returns a CLI command handler for approving a result and
// paying the provider
func CmdApproveAndPay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-and-pay [job-id]",
		Short: "Approve a submitted result and release the escrow to the provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id: %w", err)
			}

			msg := &types.MsgApproveAndPay{
				Requester: clientCtx.GetFromAddress().String(),
				JobId:     jobID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
