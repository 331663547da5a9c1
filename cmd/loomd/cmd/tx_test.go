package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/app"
)

func findSubcommand(parent *cobra.Command, name string) *cobra.Command {
	for _, subcmd := range parent.Commands() {
		if subcmd.Name() == name {
			return subcmd
		}
	}
	return nil
}

// TestTxCommand tests the transaction command structure
func TestTxCommand(t *testing.T) {
	initSDKConfig()

	cmd := txCommand()
	require.NotNil(t, cmd)
	require.Equal(t, "tx", cmd.Use)
	require.Equal(t, "Transactions subcommands", cmd.Short)
	require.True(t, cmd.DisableFlagParsing)
	require.Equal(t, 2, cmd.SuggestionsMinimumDistance)
	require.NotNil(t, cmd.RunE)
	require.Empty(t, cmd.Aliases)
}

// TestTxCommandSubcommands tests that tx command has expected subcommands
func TestTxCommandSubcommands(t *testing.T) {
	initSDKConfig()

	cmd := txCommand()
	require.NotNil(t, cmd)

	expectedSubcommands := []string{
		// stock auth tx tooling
		"sign",
		"sign-batch",
		"multi-sign",
		"multisign-batch",
		"validate-signatures",
		"broadcast",
		"encode",
		"decode",
		"simulate",
		// loom additions
		"batch",
		"sign-offline",
		"interactive",
	}

	for _, expected := range expectedSubcommands {
		require.NotNil(t, findSubcommand(cmd, expected), "expected subcommand %s not found", expected)
	}
}

// TestTxBatchCommand tests the batch broadcast command
func TestTxBatchCommand(t *testing.T) {
	initSDKConfig()

	batchCmd := findSubcommand(txCommand(), "batch")
	require.NotNil(t, batchCmd)
	require.Contains(t, batchCmd.Use, "batch [tx-files...]")
	require.NotNil(t, batchCmd.Flags().Lookup("sequential"))
	require.NotNil(t, batchCmd.Flags().Lookup("from"), "tx flags should be attached")

	// a file argument is mandatory
	require.Error(t, batchCmd.Args(batchCmd, []string{}))
	require.NoError(t, batchCmd.Args(batchCmd, []string{"tx1.json", "tx2.json"}))
}

// TestTxSignOfflineCommand tests the offline signing command
func TestTxSignOfflineCommand(t *testing.T) {
	initSDKConfig()

	offlineCmd := findSubcommand(txCommand(), "sign-offline")
	require.NotNil(t, offlineCmd)
	require.Contains(t, offlineCmd.Use, "sign-offline [tx-file]")

	// offline signing cannot query the chain, so both numbers are flags
	for _, flag := range []string{"account-number", "sequence", "output"} {
		require.NotNil(t, offlineCmd.Flags().Lookup(flag), "missing flag %s", flag)
	}

	require.Error(t, offlineCmd.Args(offlineCmd, []string{}))
	require.NoError(t, offlineCmd.Args(offlineCmd, []string{"tx.json"}))
}

// TestTxInteractiveCommand tests the interactive builder command
func TestTxInteractiveCommand(t *testing.T) {
	initSDKConfig()

	interactiveCmd := findSubcommand(txCommand(), "interactive")
	require.NotNil(t, interactiveCmd)
	require.Equal(t, "interactive", interactiveCmd.Use)
	require.NotNil(t, interactiveCmd.RunE)
}

// TestTxJobsModuleCommands tests the jobs module tx commands
func TestTxJobsModuleCommands(t *testing.T) {
	initSDKConfig()

	jobsCmd := findSubcommand(txCommand(), "jobs")
	require.NotNil(t, jobsCmd, "jobs tx commands should be registered")

	for _, name := range []string{"post-job", "accept-job", "submit-result", "approve-and-pay"} {
		require.NotNil(t, findSubcommand(jobsCmd, name), "missing jobs tx command %s", name)
	}
}

// TestTxOracleModuleCommands tests the oracle module tx commands
func TestTxOracleModuleCommands(t *testing.T) {
	initSDKConfig()

	oracleCmd := findSubcommand(txCommand(), "oracle")
	require.NotNil(t, oracleCmd, "oracle tx commands should be registered")
	require.NotNil(t, findSubcommand(oracleCmd, "submit-price"))
}

// TestTxCommandHelp tests tx command help output
func TestTxCommandHelp(t *testing.T) {
	initSDKConfig()

	cmd := txCommand()
	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(outBuf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	output := outBuf.String()
	require.Contains(t, output, "Transactions subcommands")
	require.Contains(t, output, "Usage:")
}

// TestTxCommandNoArgs tests tx command with no arguments
func TestTxCommandNoArgs(t *testing.T) {
	initSDKConfig()

	cmd := txCommand()
	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(outBuf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

// TestTxCommandWithClientContext tests tx command with client context
func TestTxCommandWithClientContext(t *testing.T) {
	initSDKConfig()

	cmd := txCommand()
	encodingConfig := app.MakeEncodingConfig()
	clientCtx := client.Context{}.
		WithCodec(encodingConfig.Codec).
		WithTxConfig(encodingConfig.TxConfig).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry)

	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}

	require.NoError(t, client.SetCmdClientContextHandler(clientCtx, cmd))
}

// BenchmarkTxCommand benchmarks the tx command creation
func BenchmarkTxCommand(b *testing.B) {
	initSDKConfig()

	for i := 0; i < b.N; i++ {
		cmd := txCommand()
		_ = cmd.Commands()
	}
}
