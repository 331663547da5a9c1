package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loom-chain/loom/testutil/keeper"
	"github.com/loom-chain/loom/x/oracle/types"
)

var (
	bondedVal   = sdk.AccAddress([]byte("bonded_validator____"))
	unbondedVal = sdk.AccAddress([]byte("unbonded_validator__"))
)

func TestSubmitPrice_BondedValidator(t *testing.T) {
	f := keepertest.NewOracleFixture(t)
	f.CreateValidator(t, bondedVal, stakingtypes.Bonded)

	feed, err := f.OracleKeeper.SubmitPrice(f.Ctx, bondedVal, "loom", math.NewInt(3000_0000_0000), 8)
	require.NoError(t, err)
	require.Equal(t, "loom", feed.Asset)
	require.True(t, feed.Price.Equal(math.NewInt(3000_0000_0000)))
	require.Equal(t, uint32(8), feed.Decimals)
	require.Equal(t, bondedVal.String(), feed.Validator)

	price, decimals, err := f.OracleKeeper.CurrentPrice(f.Ctx, "loom")
	require.NoError(t, err)
	require.True(t, price.Equal(math.NewInt(3000_0000_0000)))
	require.Equal(t, uint32(8), decimals)
}

func TestSubmitPrice_UnknownValidator(t *testing.T) {
	f := keepertest.NewOracleFixture(t)

	_, err := f.OracleKeeper.SubmitPrice(f.Ctx, bondedVal, "loom", math.NewInt(1_0000_0000), 8)
	require.ErrorIs(t, err, types.ErrUnknownValidator)
}

func TestSubmitPrice_UnbondedValidator(t *testing.T) {
	f := keepertest.NewOracleFixture(t)
	f.CreateValidator(t, unbondedVal, stakingtypes.Unbonded)

	_, err := f.OracleKeeper.SubmitPrice(f.Ctx, unbondedVal, "loom", math.NewInt(1_0000_0000), 8)
	require.ErrorIs(t, err, types.ErrValidatorNotBonded)
}

func TestSubmitPrice_NonPositivePrice(t *testing.T) {
	f := keepertest.NewOracleFixture(t)
	f.CreateValidator(t, bondedVal, stakingtypes.Bonded)

	_, err := f.OracleKeeper.SubmitPrice(f.Ctx, bondedVal, "loom", math.ZeroInt(), 8)
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	_, err = f.OracleKeeper.SubmitPrice(f.Ctx, bondedVal, "loom", math.Int{}, 8)
	require.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestSubmitPrice_ZeroDecimalsUsesParamsDefault(t *testing.T) {
	f := keepertest.NewOracleFixture(t)
	f.CreateValidator(t, bondedVal, stakingtypes.Bonded)

	feed, err := f.OracleKeeper.SubmitPrice(f.Ctx, bondedVal, "loom", math.NewInt(3000_0000_0000), 0)
	require.NoError(t, err)
	require.Equal(t, uint32(types.DefaultDecimals), feed.Decimals)
}

func TestSubmitPrice_OverwritesPreviousFeed(t *testing.T) {
	f := keepertest.NewOracleFixture(t)
	f.CreateValidator(t, bondedVal, stakingtypes.Bonded)

	_, err := f.OracleKeeper.SubmitPrice(f.Ctx, bondedVal, "loom", math.NewInt(3000_0000_0000), 8)
	require.NoError(t, err)
	_, err = f.OracleKeeper.SubmitPrice(f.Ctx, bondedVal, "loom", math.NewInt(2800_0000_0000), 8)
	require.NoError(t, err)

	price, _, err := f.OracleKeeper.CurrentPrice(f.Ctx, "loom")
	require.NoError(t, err)
	require.True(t, price.Equal(math.NewInt(2800_0000_0000)))

	require.Len(t, f.OracleKeeper.GetAllPriceFeeds(f.Ctx), 1)
}

func TestCurrentPrice_Unavailable(t *testing.T) {
	f := keepertest.NewOracleFixture(t)

	_, _, err := f.OracleKeeper.CurrentPrice(f.Ctx, "loom")
	require.ErrorIs(t, err, types.ErrPriceUnavailable)
}

func TestSetPriceFeed_RejectsInvalidFeeds(t *testing.T) {
	f := keepertest.NewOracleFixture(t)

	err := f.OracleKeeper.SetPriceFeed(f.Ctx, types.PriceFeed{
		Asset:    "",
		Price:    math.NewInt(1),
		Decimals: 8,
	})
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	err = f.OracleKeeper.SetPriceFeed(f.Ctx, types.PriceFeed{
		Asset:    "loom",
		Price:    math.NewInt(-1),
		Decimals: 8,
	})
	require.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestGetAllPriceFeeds_MultipleAssets(t *testing.T) {
	f := keepertest.NewOracleFixture(t)
	f.CreateValidator(t, bondedVal, stakingtypes.Bonded)

	for asset, price := range map[string]int64{
		"loom": 3000_0000_0000,
		"atom": 10_0000_0000,
		"btc":  65_000_0000_0000,
	} {
		_, err := f.OracleKeeper.SubmitPrice(f.Ctx, bondedVal, asset, math.NewInt(price), 8)
		require.NoError(t, err)
	}

	require.Len(t, f.OracleKeeper.GetAllPriceFeeds(f.Ctx), 3)
}
