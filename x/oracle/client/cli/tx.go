package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/loom-chain/loom/x/oracle/types"
)

// GetTxCmd returns the transaction commands for the oracle module
func GetTxCmd() *cobra.Command {
	oracleTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Oracle transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	oracleTxCmd.AddCommand(
		CmdSubmitPrice(),
	)

	return oracleTxCmd
}

// CmdSubmitPrice returns a CLI command handler for submitting a price
func CmdSubmitPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-price [asset] [price] [decimals]",
		Short: "Submit a usd price observation for an asset (bonded validators only)",
		Long: `Submit a fixed-point usd price for an asset. A decimals of 0 falls
back to the module's default scale.

Example:
  $ loomd tx oracle submit-price loom 300000000000 8 --from validator`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			price, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid price: %s", args[1])
			}

			decimals, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid decimals: %w", err)
			}

			msg := &types.MsgSubmitPrice{
				Validator: clientCtx.GetFromAddress().String(),
				Asset:     args[0],
				Price:     price,
				Decimals:  uint32(decimals),
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
