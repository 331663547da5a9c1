package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	clienttx "github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// readTxFile reads and decodes a JSON-encoded transaction file
func readTxFile(clientCtx client.Context, path string) (sdk.Tx, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tx file: %w", err)
	}
	decoded, err := clientCtx.TxConfig.TxJSONDecoder()(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tx: %w", err)
	}
	return decoded, nil
}

// GetTxBatchCmd returns a command to batch multiple transactions
func GetTxBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [tx-files...]",
		Short: "Broadcast multiple transactions",
		Long: `Broadcast multiple signed transactions in sequence.
This is useful for executing multiple operations efficiently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sequential, _ := cmd.Flags().GetBool("sequential")

			bar := progressbar.NewOptions(len(args),
				progressbar.OptionSetDescription("Broadcasting transactions..."),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
			)

			results := make([]string, 0, len(args))

			for _, txFile := range args {
				bar.Add(1)

				txHash, err := broadcastTxFile(clientCtx, txFile)
				if err != nil {
					fmt.Printf("\nFailed to broadcast %s: %v\n", txFile, err)
					if sequential {
						bar.Finish()
						return fmt.Errorf("batch stopped at %s", txFile)
					}
					continue
				}

				results = append(results, txHash)

				if sequential {
					// Give the tx a block to land before sending the next.
					time.Sleep(6 * time.Second)
				}
			}

			bar.Finish()

			fmt.Println("\n=== Batch Results ===")
			for i, hash := range results {
				fmt.Printf("%d. %s\n", i+1, hash)
			}

			return nil
		},
	}

	cmd.Flags().Bool("sequential", false, "Wait for each transaction to be confirmed before sending the next")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// broadcastTxFile decodes a signed transaction file and broadcasts it
func broadcastTxFile(clientCtx client.Context, txFile string) (string, error) {
	decoded, err := readTxFile(clientCtx, txFile)
	if err != nil {
		return "", err
	}

	raw, err := clientCtx.TxConfig.TxEncoder()(decoded)
	if err != nil {
		return "", fmt.Errorf("failed to encode tx: %w", err)
	}

	res, err := clientCtx.BroadcastTx(raw)
	if err != nil {
		return "", err
	}
	if res.Code != 0 {
		return "", fmt.Errorf("broadcast rejected with code %d: %s", res.Code, res.RawLog)
	}

	return res.TxHash, nil
}

// GetTxOfflineCmd returns a command for offline signing
func GetTxOfflineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign-offline [tx-file]",
		Short: "Sign a transaction offline",
		Long: `Sign a transaction in offline mode without connecting to a node.
Useful for air-gapped or cold storage signing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			clientCtx = clientCtx.WithOffline(true)

			txFile := args[0]
			outputFile, _ := cmd.Flags().GetString("output")

			decoded, err := readTxFile(clientCtx, txFile)
			if err != nil {
				return err
			}

			txBuilder, err := clientCtx.TxConfig.WrapTxBuilder(decoded)
			if err != nil {
				return fmt.Errorf("failed to rebuild tx: %w", err)
			}

			// Offline signing cannot query the account, so both numbers
			// come from flags.
			accountNumber, _ := cmd.Flags().GetUint64("account-number")
			sequence, _ := cmd.Flags().GetUint64("sequence")

			fmt.Println("Signing transaction offline...")
			if err := signTxOffline(cmd.Context(), clientCtx, txBuilder, accountNumber, sequence); err != nil {
				return fmt.Errorf("failed to sign tx: %w", err)
			}

			signedBytes, err := clientCtx.TxConfig.TxJSONEncoder()(txBuilder.GetTx())
			if err != nil {
				return err
			}

			if outputFile == "" {
				outputFile = strings.TrimSuffix(txFile, ".json") + ".signed.json"
			}

			if err := os.WriteFile(outputFile, signedBytes, 0o644); err != nil {
				return fmt.Errorf("failed to write signed tx: %w", err)
			}

			fmt.Printf("✓ Transaction signed successfully\n")
			fmt.Printf("Signed transaction saved to: %s\n", outputFile)

			return nil
		},
	}

	cmd.Flags().Uint64("account-number", 0, "Account number for offline signing")
	cmd.Flags().Uint64("sequence", 0, "Sequence number for offline signing")
	cmd.Flags().String("output", "", "Output file for signed transaction")
	cmd.MarkFlagRequired("account-number")
	cmd.MarkFlagRequired("sequence")

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// signTxOffline signs the tx in the builder with the key named by --from
func signTxOffline(ctx context.Context, clientCtx client.Context, txBuilder client.TxBuilder, accountNumber, sequence uint64) error {
	factory := clienttx.Factory{}.
		WithTxConfig(clientCtx.TxConfig).
		WithKeybase(clientCtx.Keyring).
		WithChainID(clientCtx.ChainID).
		WithAccountNumber(accountNumber).
		WithSequence(sequence).
		WithSignMode(signing.SignMode_SIGN_MODE_DIRECT)

	return clienttx.Sign(ctx, factory, clientCtx.GetFromName(), txBuilder, true)
}

// GetInteractiveCmd returns an interactive mode command
func GetInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start interactive mode",
		Long: `Start an interactive CLI session for building transactions.
This provides a guided interface for creating transactions step-by-step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			return runInteractiveMode(clientCtx)
		},
	}

	return cmd
}

// runInteractiveMode runs the interactive CLI mode
func runInteractiveMode(clientCtx client.Context) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=================================")
	fmt.Println("Loom Interactive Transaction Builder")
	fmt.Println("=================================")
	fmt.Println()

	for {
		fmt.Println("\nWhat would you like to do?")
		fmt.Println("1. Send tokens")
		fmt.Println("2. Post a compute job")
		fmt.Println("3. Submit an oracle price")
		fmt.Println("4. Show my address")
		fmt.Println("5. Exit")
		fmt.Print("\nChoice: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)

		switch choice {
		case "1":
			if err := interactiveSendTokens(reader); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "2":
			if err := interactivePostJob(reader); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "3":
			if err := interactiveSubmitPrice(reader); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "4":
			interactiveShowAddress(clientCtx)
		case "5":
			fmt.Println("Goodbye!")
			return nil
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// interactiveSendTokens builds a bank send and prints the command to run
func interactiveSendTokens(reader *bufio.Reader) error {
	fmt.Println("\n--- Send Tokens ---")

	recipient := prompt(reader, "Recipient address")
	if _, err := sdk.AccAddressFromBech32(recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	amount := prompt(reader, "Amount (e.g. 1000uloom)")
	coins, err := sdk.ParseCoinsNormalized(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	fmt.Println("\n--- Transaction Summary ---")
	fmt.Printf("To: %s\n", recipient)
	fmt.Printf("Amount: %s\n", coins)
	fmt.Println("\nRun to submit:")
	fmt.Printf("  loomd tx bank send <your-key> %s %s\n", recipient, coins)

	return nil
}

// interactivePostJob walks through the fields of a job posting
func interactivePostJob(reader *bufio.Reader) error {
	fmt.Println("\n--- Post a Compute Job ---")

	dataURL := prompt(reader, "Data URL")
	scriptURL := prompt(reader, "Script URL")
	rewardUsd := prompt(reader, "Reward in USD (8 decimals, e.g. 1000000000 for $10)")
	deposit := prompt(reader, "Deposit (e.g. 5000uloom)")

	if dataURL == "" || scriptURL == "" {
		return fmt.Errorf("data and script urls are required")
	}
	if _, err := sdk.ParseCoinNormalized(deposit); err != nil {
		return fmt.Errorf("invalid deposit: %w", err)
	}

	fmt.Println("\nRun to submit:")
	fmt.Printf("  loomd tx jobs post-job %q %q %s %s --from <your-key>\n", dataURL, scriptURL, rewardUsd, deposit)
	fmt.Println("\nTip: query the current collateral quote first:")
	fmt.Printf("  loomd query jobs required-deposit %s\n", rewardUsd)

	return nil
}

// interactiveSubmitPrice walks through an oracle price submission
func interactiveSubmitPrice(reader *bufio.Reader) error {
	fmt.Println("\n--- Submit an Oracle Price ---")
	fmt.Println("Only bonded validators may submit prices.")

	asset := prompt(reader, "Asset (e.g. loom)")
	price := prompt(reader, "Price (8 decimals, e.g. 300000000000 for $3000)")

	if asset == "" || price == "" {
		return fmt.Errorf("asset and price are required")
	}

	fmt.Println("\nRun to submit:")
	fmt.Printf("  loomd tx oracle submit-price %s %s 8 --from <your-validator-key>\n", asset, price)

	return nil
}

// interactiveShowAddress prints the address behind --from
func interactiveShowAddress(clientCtx client.Context) {
	addr := clientCtx.GetFromAddress()
	if addr.Empty() {
		fmt.Println("No key selected. Start interactive mode with --from <key>.")
		return
	}
	fmt.Printf("\nYour address: %s\n", addr)
}
