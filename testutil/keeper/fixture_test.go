package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loom-chain/loom/testutil/keeper"
	jobstypes "github.com/loom-chain/loom/x/jobs/types"
)

func TestJobsFixture_FundAccount(t *testing.T) {
	f := keepertest.NewJobsFixture(t)
	addr := sdk.AccAddress([]byte("funded_account______"))

	// The first fund materializes the mint module account through the
	// account codec; a missing interface registration would surface here.
	f.FundAccount(t, addr, sdk.NewCoins(sdk.NewInt64Coin("uloom", 1_000)))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, addr, "uloom").Amount.Equal(math.NewInt(1_000)))

	f.FundAccount(t, addr, sdk.NewCoins(sdk.NewInt64Coin("uloom", 500)))
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, addr, "uloom").Amount.Equal(math.NewInt(1_500)))
}

func TestJobsFixture_SeedsOraclePrice(t *testing.T) {
	f := keepertest.NewJobsFixture(t)
	f.SetPrice(t, jobstypes.DefaultPriceAsset, math.NewInt(3000_0000_0000), 8)

	price, decimals, err := f.OracleKeeper.CurrentPrice(f.Ctx, jobstypes.DefaultPriceAsset)
	require.NoError(t, err)
	require.True(t, price.Equal(math.NewInt(3000_0000_0000)))
	require.Equal(t, uint32(8), decimals)
}
