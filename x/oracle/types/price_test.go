package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/x/oracle/types"
)

func TestPriceFeed_Validate(t *testing.T) {
	valid := types.PriceFeed{
		Asset:    "loom",
		Price:    math.NewInt(3000_0000_0000),
		Decimals: 8,
	}
	require.NoError(t, valid.Validate())

	noAsset := valid
	noAsset.Asset = ""
	require.Error(t, noAsset.Validate())

	zeroPrice := valid
	zeroPrice.Price = math.ZeroInt()
	require.Error(t, zeroPrice.Validate())

	nilPrice := valid
	nilPrice.Price = math.Int{}
	require.Error(t, nilPrice.Validate())

	zeroDecimals := valid
	zeroDecimals.Decimals = 0
	require.Error(t, zeroDecimals.Validate())

	tooManyDecimals := valid
	tooManyDecimals.Decimals = 19
	require.Error(t, tooManyDecimals.Validate())
}

func TestOracleGenesisState_Validate(t *testing.T) {
	feed := types.PriceFeed{
		Asset:    "loom",
		Price:    math.NewInt(3000_0000_0000),
		Decimals: 8,
	}

	require.NoError(t, types.DefaultGenesis().Validate())

	withFeed := types.GenesisState{Params: types.DefaultParams(), Feeds: []types.PriceFeed{feed}}
	require.NoError(t, withFeed.Validate())

	duplicate := types.GenesisState{Params: types.DefaultParams(), Feeds: []types.PriceFeed{feed, feed}}
	require.Error(t, duplicate.Validate())

	badFeed := feed
	badFeed.Price = math.ZeroInt()
	invalid := types.GenesisState{Params: types.DefaultParams(), Feeds: []types.PriceFeed{badFeed}}
	require.Error(t, invalid.Validate())

	badParams := types.GenesisState{Params: types.Params{DefaultDecimals: 19}}
	require.Error(t, badParams.Validate())
}

func TestOracleParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
	require.Equal(t, uint32(8), types.DefaultParams().DefaultDecimals)

	require.Error(t, types.Params{DefaultDecimals: 0}.Validate())
	require.Error(t, types.Params{DefaultDecimals: 19}.Validate())
}
