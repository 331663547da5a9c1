package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/x/jobs/types"
)

func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	badDenom := types.DefaultParams()
	badDenom.BondDenom = "!!"
	require.Error(t, badDenom.Validate())

	noAsset := types.DefaultParams()
	noAsset.PriceAsset = ""
	require.Error(t, noAsset.Validate())

	zeroURL := types.DefaultParams()
	zeroURL.MaxUrlLength = 0
	require.Error(t, zeroURL.Validate())

	negativeMin := types.DefaultParams()
	negativeMin.MinRewardUsd = math.NewInt(-1)
	require.Error(t, negativeMin.Validate())

	nilMin := types.DefaultParams()
	nilMin.MinRewardUsd = math.Int{}
	require.Error(t, nilMin.Validate())
}

func TestDefaultParams(t *testing.T) {
	params := types.DefaultParams()
	require.Equal(t, "uloom", params.BondDenom)
	require.Equal(t, "loom", params.PriceAsset)
	require.Equal(t, uint32(512), params.MaxUrlLength)
	require.True(t, params.MinRewardUsd.Equal(math.NewInt(1_000_000)))
}
