package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loom-chain/loom/testutil/keeper"
	"github.com/loom-chain/loom/x/oracle/types"
)

func TestOracleGenesis_RoundTrip(t *testing.T) {
	f := keepertest.NewOracleFixture(t)

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	genState := types.GenesisState{
		Params: types.Params{DefaultDecimals: 6},
		Feeds: []types.PriceFeed{
			{
				Asset:     "loom",
				Price:     math.NewInt(3000_0000_0000),
				Decimals:  8,
				Validator: bondedVal.String(),
				UpdatedAt: ts,
				Height:    10,
			},
		},
	}
	require.NoError(t, genState.Validate())

	f.OracleKeeper.InitGenesis(f.Ctx, genState)

	exported := f.OracleKeeper.ExportGenesis(f.Ctx)
	require.Equal(t, genState.Params, exported.Params)
	require.Equal(t, genState.Feeds, exported.Feeds)
}

func TestOracleGenesis_Default(t *testing.T) {
	f := keepertest.NewOracleFixture(t)

	genState := types.DefaultGenesis()
	require.NoError(t, genState.Validate())

	f.OracleKeeper.InitGenesis(f.Ctx, *genState)

	exported := f.OracleKeeper.ExportGenesis(f.Ctx)
	require.Equal(t, types.DefaultParams(), exported.Params)
	require.Empty(t, exported.Feeds)
}
