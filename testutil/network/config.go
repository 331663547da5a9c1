// Package network wraps the SDK in-process test network with Loom defaults,
// so integration tests spin up validators running the real app wiring.
package network

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/cosmos/cosmos-sdk/testutil/network"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"

	"github.com/loom-chain/loom/app"
)

// Local aliases so test suites only import this package.
type (
	Config    = network.Config
	Network   = network.Network
	Validator = network.Validator
)

const localChainID = "loom-localnet"

// New spins up an in-process network using the Loom defaults.
func New(t *testing.T, dir string, cfg Config) (*Network, error) {
	return network.New(t, dir, cfg)
}

// DefaultConfig returns a network.Config wired to the Loom app: two
// validators, a 2s block time, and the chain's 0.001uloom gas floor.
func DefaultConfig() network.Config {
	app.SetConfig()

	encCfg := app.MakeEncodingConfig()
	cfg := network.DefaultConfig(func() network.TestFixture {
		return network.TestFixture{
			AppConstructor: loomAppConstructor,
			GenesisState:   app.ModuleBasics.DefaultGenesis(encCfg.Codec),
			EncodingConfig: moduletestutil.TestEncodingConfig{
				InterfaceRegistry: encCfg.InterfaceRegistry,
				Codec:             encCfg.Codec,
				TxConfig:          encCfg.TxConfig,
				Amino:             encCfg.Amino,
			},
		}
	})

	cfg.MinGasPrices = sdk.NewDecCoinFromDec(app.BondDenom, math.LegacyMustNewDecFromStr("0.001")).String()
	cfg.TimeoutCommit = 2 * time.Second
	cfg.ChainID = localChainID
	cfg.NumValidators = 2

	return cfg
}

func loomAppConstructor(val network.ValidatorI) servertypes.Application {
	return app.NewLoomApp(
		val.GetCtx().Logger,
		dbm.NewMemDB(),
		nil,
		true,
		val.GetCtx().Viper,
		baseapp.SetChainID(localChainID),
	)
}

// WaitForNextBlock waits for one more block to be committed.
func WaitForNextBlock(n *Network, ctx context.Context) (int64, error) {
	if n == nil {
		return 0, fmt.Errorf("network is nil")
	}
	h, err := n.LatestHeight()
	if err != nil {
		return 0, err
	}
	return n.WaitForHeight(h + 1)
}

// BroadcastTx signs msgs with the first validator's key and submits them,
// returning once the node accepts the transaction into its mempool.
func BroadcastTx(n *Network, ctx context.Context, msgs ...sdk.Msg) (*sdk.TxResponse, error) {
	if n == nil {
		return nil, fmt.Errorf("network is nil")
	}

	val := n.Validators[0]
	clientCtx := val.ClientCtx.
		WithBroadcastMode(flags.BroadcastSync).
		WithFromAddress(val.Address).
		WithFromName(val.Moniker)

	factory := tx.Factory{}.
		WithChainID(n.Config.ChainID).
		WithTxConfig(clientCtx.TxConfig).
		WithKeybase(val.ClientCtx.Keyring).
		WithGasAdjustment(1.2).
		WithGasPrices(val.AppConfig.MinGasPrices)

	unsigned := clientCtx.TxConfig.NewTxBuilder()
	if err := unsigned.SetMsgs(msgs...); err != nil {
		return nil, err
	}
	if err := tx.Sign(ctx, factory, val.Moniker, unsigned, true); err != nil {
		return nil, err
	}

	bz, err := clientCtx.TxConfig.TxEncoder()(unsigned.GetTx())
	if err != nil {
		return nil, err
	}
	return clientCtx.BroadcastTx(bz)
}
