package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loom-chain/loom/testutil/keeper"
	"github.com/loom-chain/loom/x/jobs/types"
)

func TestGenesis_RoundTrip(t *testing.T) {
	f := keepertest.NewJobsFixture(t)

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	genState := types.GenesisState{
		Params: types.DefaultParams(),
		Jobs: []types.Job{
			{
				Id:          1,
				Requester:   requesterAddr.String(),
				DataUrl:     "ipfs://data-1",
				ScriptUrl:   "ipfs://script-1",
				RewardUsd:   math.NewInt(10_0000_0000),
				LockedValue: sdk.NewInt64Coin("uloom", 3334),
				Status:      types.JobStatusOpen,
				CreatedAt:   ts,
				UpdatedAt:   ts,
			},
			{
				Id:          2,
				Requester:   requesterAddr.String(),
				Provider:    providerAddr.String(),
				DataUrl:     "ipfs://data-2",
				ScriptUrl:   "ipfs://script-2",
				RewardUsd:   math.NewInt(5_0000_0000),
				LockedValue: sdk.NewInt64Coin("uloom", 1667),
				Status:      types.JobStatusSubmitted,
				ResultUrl:   "ipfs://result-2",
				CreatedAt:   ts,
				UpdatedAt:   ts.Add(time.Hour),
			},
		},
		NextJobId: 3,
	}
	require.NoError(t, genState.Validate())

	f.JobsKeeper.InitGenesis(f.Ctx, genState)

	exported := f.JobsKeeper.ExportGenesis(f.Ctx)
	require.Equal(t, genState.Params, exported.Params)
	require.Equal(t, genState.Jobs, exported.Jobs)
	require.Equal(t, genState.NextJobId, exported.NextJobId)
}

func TestGenesis_RestoresIndexesAndCounter(t *testing.T) {
	f := keepertest.NewJobsFixture(t)
	f.SetPrice(t, types.DefaultPriceAsset, math.NewInt(3000_0000_0000), 8)
	f.FundAccount(t, requesterAddr, sdk.NewCoins(sdk.NewInt64Coin("uloom", 1_000_000)))

	genState := types.GenesisState{
		Params: types.DefaultParams(),
		Jobs: []types.Job{
			{
				Id:          1,
				Requester:   requesterAddr.String(),
				DataUrl:     "ipfs://data",
				ScriptUrl:   "ipfs://script",
				RewardUsd:   math.NewInt(10_0000_0000),
				LockedValue: sdk.NewInt64Coin("uloom", 3334),
				Status:      types.JobStatusOpen,
			},
		},
		NextJobId: 2,
	}
	f.JobsKeeper.InitGenesis(f.Ctx, genState)

	open := f.JobsKeeper.GetJobsByStatus(f.Ctx, types.JobStatusOpen)
	require.Len(t, open, 1)
	require.Equal(t, uint64(1), open[0].Id)

	byRequester := f.JobsKeeper.GetJobsByRequester(f.Ctx, requesterAddr)
	require.Len(t, byRequester, 1)

	// The restored counter continues where the exported chain stopped.
	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://next", "ipfs://script", math.NewInt(10_0000_0000), sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)
	require.Equal(t, uint64(2), job.Id)
}

func TestGenesis_DefaultIsValid(t *testing.T) {
	f := keepertest.NewJobsFixture(t)

	genState := types.DefaultGenesis()
	require.NoError(t, genState.Validate())

	f.JobsKeeper.InitGenesis(f.Ctx, *genState)

	exported := f.JobsKeeper.ExportGenesis(f.Ctx)
	require.Empty(t, exported.Jobs)
	require.Equal(t, uint64(1), exported.NextJobId)
	require.Equal(t, types.DefaultParams(), exported.Params)
}
