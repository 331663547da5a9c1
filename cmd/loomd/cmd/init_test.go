package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	tmtypes "github.com/cometbft/cometbft/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/app"
)

func setFlag(tb testing.TB, flagSet *pflag.FlagSet, name, value string) {
	tb.Helper()
	require.NoError(tb, flagSet.Set(name, value))
}

// runInit executes the init command against homeDir.
func runInit(tb testing.TB, homeDir, moniker string, flagValues map[string]string) error {
	tb.Helper()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)
	cmd.SetArgs([]string{moniker})
	setFlag(tb, cmd.Flags(), flags.FlagHome, homeDir)
	for name, value := range flagValues {
		setFlag(tb, cmd.Flags(), name, value)
	}

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(outBuf)

	return executeCommandWithContext(tb, cmd, homeDir)
}

// executeCommandWithContext wires a full client context onto cmd and runs it.
func executeCommandWithContext(tb testing.TB, cmd *cobra.Command, homeDir string) error {
	tb.Helper()

	if err := os.MkdirAll(filepath.Join(homeDir, "config"), 0o755); err != nil {
		return err
	}

	encodingConfig := app.MakeEncodingConfig()
	clientCtx := client.Context{}.
		WithCodec(encodingConfig.Codec).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
		WithTxConfig(encodingConfig.TxConfig).
		WithLegacyAmino(encodingConfig.Amino).
		WithHomeDir(homeDir)

	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}
	_ = client.SetCmdClientContextHandler(clientCtx, cmd)

	return cmd.Execute()
}

func loadGenesis(tb testing.TB, homeDir string) *tmtypes.GenesisDoc {
	tb.Helper()
	genDoc, err := tmtypes.GenesisDocFromFile(filepath.Join(homeDir, "config", "genesis.json"))
	require.NoError(tb, err)
	return genDoc
}

func TestInitCmd(t *testing.T) {
	tests := []struct {
		name    string
		moniker string
		flags   map[string]string
		chainID string
	}{
		{
			name:    "explicit chain id",
			moniker: "weaver-1",
			flags:   map[string]string{flags.FlagChainID: "loom-mvp-1"},
			chainID: "loom-mvp-1",
		},
		{
			name:    "auto-generated chain id",
			moniker: "weaver-2",
			flags:   nil,
		},
		{
			name:    "custom default denom",
			moniker: "weaver-3",
			flags:   map[string]string{flags.FlagChainID: "loom-testnet-2", flagDefaultDenom: "stake"},
			chainID: "loom-testnet-2",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			homeDir := t.TempDir()
			err := runInit(t, homeDir, tc.moniker, tc.flags)
			require.NoError(t, err)

			genDoc := loadGenesis(t, homeDir)
			if tc.chainID != "" {
				require.Equal(t, tc.chainID, genDoc.ChainID)
			} else {
				require.Contains(t, genDoc.ChainID, "test-chain-")
			}

			configDir := filepath.Join(homeDir, "config")
			require.DirExists(t, configDir)
			require.DirExists(t, filepath.Join(homeDir, "data"))
			require.FileExists(t, filepath.Join(configDir, "node_key.json"))
			require.FileExists(t, filepath.Join(configDir, "priv_validator_key.json"))
		})
	}
}

func TestInitCmdGenesisExists(t *testing.T) {
	homeDir := t.TempDir()

	err := runInit(t, homeDir, "weaver", map[string]string{flags.FlagChainID: "loom-mvp-1"})
	require.NoError(t, err)

	// a second init without --overwrite refuses to clobber genesis
	err = runInit(t, homeDir, "weaver-2", map[string]string{flags.FlagChainID: "loom-testnet-2"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "genesis.json file already exists")

	original := loadGenesis(t, homeDir)
	time.Sleep(10 * time.Millisecond)

	// with --overwrite the genesis is rebuilt from scratch
	err = runInit(t, homeDir, "weaver-3", map[string]string{
		flags.FlagChainID: "loom-testnet-2",
		flagOverwrite:     "true",
	})
	require.NoError(t, err)

	replaced := loadGenesis(t, homeDir)
	require.Equal(t, "loom-testnet-2", replaced.ChainID)
	require.NotEqual(t, original.GenesisTime, replaced.GenesisTime)
}

func TestInitCmdConsensusParams(t *testing.T) {
	homeDir := t.TempDir()
	err := runInit(t, homeDir, "weaver", map[string]string{flags.FlagChainID: "loom-testnet"})
	require.NoError(t, err)

	genDoc := loadGenesis(t, homeDir)
	require.NotNil(t, genDoc.ConsensusParams)
	require.Equal(t, int64(2097152), genDoc.ConsensusParams.Block.MaxBytes)
	require.Equal(t, int64(100000000), genDoc.ConsensusParams.Block.MaxGas)
	require.Equal(t, int64(500000), genDoc.ConsensusParams.Evidence.MaxAgeNumBlocks)
	require.Equal(t, 21*24*time.Hour, genDoc.ConsensusParams.Evidence.MaxAgeDuration)
	require.Equal(t, int64(1048576), genDoc.ConsensusParams.Evidence.MaxBytes)
	require.NotNil(t, genDoc.ConsensusParams.Validator)
}

func TestInitCmdAppState(t *testing.T) {
	homeDir := t.TempDir()
	err := runInit(t, homeDir, "weaver", map[string]string{flags.FlagChainID: "loom-testnet"})
	require.NoError(t, err)

	genDoc := loadGenesis(t, homeDir)
	require.NotEmpty(t, genDoc.AppState)

	var appState map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(genDoc.AppState, &appState))

	// SDK modules plus the loom marketplace modules
	for _, module := range []string{"auth", "bank", "staking", "gov", "jobs", "oracle"} {
		require.Contains(t, appState, module, "app state should seed the %s module", module)
	}
	require.False(t, genDoc.GenesisTime.After(time.Now()))
}

func TestInitCmdKeyFiles(t *testing.T) {
	homeDir := t.TempDir()
	err := runInit(t, homeDir, "weaver", map[string]string{flags.FlagChainID: "loom-testnet"})
	require.NoError(t, err)

	nodeKeyData, err := os.ReadFile(filepath.Join(homeDir, "config", "node_key.json"))
	require.NoError(t, err)
	var nodeKey map[string]interface{}
	require.NoError(t, json.Unmarshal(nodeKeyData, &nodeKey))
	require.Contains(t, nodeKey, "priv_key")

	privValData, err := os.ReadFile(filepath.Join(homeDir, "config", "priv_validator_key.json"))
	require.NoError(t, err)
	var privValKey map[string]interface{}
	require.NoError(t, json.Unmarshal(privValData, &privValKey))
	require.Contains(t, privValKey, "address")
	require.Contains(t, privValKey, "pub_key")
	require.Contains(t, privValKey, "priv_key")
}

func TestInitCmdOutput(t *testing.T) {
	homeDir := t.TempDir()
	initSDKConfig()

	cmd := InitCmd(app.ModuleBasics, homeDir)
	cmd.SetArgs([]string{"weaver"})
	setFlag(t, cmd.Flags(), flags.FlagChainID, "loom-testnet")
	setFlag(t, cmd.Flags(), flags.FlagHome, homeDir)

	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(outBuf)

	require.NoError(t, executeCommandWithContext(t, cmd, homeDir))

	output := outBuf.String()
	require.Contains(t, output, "Successfully initialized chain configuration")
	require.Contains(t, output, "Chain ID: loom-testnet")
	require.Contains(t, output, "Moniker: weaver")
	require.Contains(t, output, "Node ID:")
	require.Contains(t, output, "Genesis file:")
}

func TestInitCmdStructure(t *testing.T) {
	initSDKConfig()
	cmd := InitCmd(app.ModuleBasics, t.TempDir())

	require.Equal(t, "init [moniker]", cmd.Use)
	require.NotNil(t, cmd.RunE)
	require.Contains(t, cmd.Long, "loomd init")
	require.Contains(t, cmd.Long, "chain-id")

	defaultDenom, err := cmd.Flags().GetString(flagDefaultDenom)
	require.NoError(t, err)
	require.Equal(t, "uloom", defaultDenom)

	overwrite, err := cmd.Flags().GetBool(flagOverwrite)
	require.NoError(t, err)
	require.False(t, overwrite)

	recoverFlag, err := cmd.Flags().GetBool(flagRecover)
	require.NoError(t, err)
	require.False(t, recoverFlag)

	require.NotNil(t, cmd.Flags().Lookup(flags.FlagChainID))
	require.NotNil(t, cmd.Flags().Lookup(flags.FlagHome))
}

func TestFileExists(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "marker.json")
	require.False(t, fileExists(tmpFile))

	require.NoError(t, os.WriteFile(tmpFile, []byte("{}"), 0o600))
	require.True(t, fileExists(tmpFile))

	require.NoError(t, os.Remove(tmpFile))
	require.False(t, fileExists(tmpFile))
}

func BenchmarkInitCmd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		homeDir := b.TempDir()
		_ = runInit(b, homeDir, "weaver", map[string]string{flags.FlagChainID: "loom-testnet"})
	}
}
