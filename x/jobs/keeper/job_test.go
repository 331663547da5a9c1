package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loom-chain/loom/testutil/keeper"
	"github.com/loom-chain/loom/x/jobs/types"
)

func TestGetJob_NotFound(t *testing.T) {
	f := keepertest.NewJobsFixture(t)

	_, err := f.JobsKeeper.GetJob(f.Ctx, 7)
	require.ErrorIs(t, err, types.ErrJobNotFound)
	require.False(t, f.JobsKeeper.HasJob(f.Ctx, 7))
}

func TestGetAllJobs_IDOrder(t *testing.T) {
	f := priceFixture(t)

	for _, url := range []string{"ipfs://a", "ipfs://b", "ipfs://c"} {
		_, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, url, "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
		require.NoError(t, err)
	}

	jobs := f.JobsKeeper.GetAllJobs(f.Ctx)
	require.Len(t, jobs, 3)
	for i, job := range jobs {
		require.Equal(t, uint64(i+1), job.Id)
	}
}

func TestStatusIndex_FollowsTransitions(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)

	require.Len(t, f.JobsKeeper.GetJobsByStatus(f.Ctx, types.JobStatusOpen), 1)

	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))
	require.Empty(t, f.JobsKeeper.GetJobsByStatus(f.Ctx, types.JobStatusOpen))
	require.Len(t, f.JobsKeeper.GetJobsByStatus(f.Ctx, types.JobStatusAccepted), 1)

	require.NoError(t, f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, job.Id, "ipfs://result"))
	require.Empty(t, f.JobsKeeper.GetJobsByStatus(f.Ctx, types.JobStatusAccepted))
	require.Len(t, f.JobsKeeper.GetJobsByStatus(f.Ctx, types.JobStatusSubmitted), 1)

	_, err = f.JobsKeeper.ApproveAndPay(f.Ctx, requesterAddr, job.Id)
	require.NoError(t, err)
	require.Empty(t, f.JobsKeeper.GetJobsByStatus(f.Ctx, types.JobStatusSubmitted))
	require.Len(t, f.JobsKeeper.GetJobsByStatus(f.Ctx, types.JobStatusPaid), 1)
}

func TestRequesterAndProviderIndexes(t *testing.T) {
	f := priceFixture(t)
	f.FundAccount(t, strangerAddr, sdk.NewCoins(sdk.NewInt64Coin("uloom", 1_000_000)))

	first, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://a", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)
	_, err = f.JobsKeeper.PostJob(f.Ctx, strangerAddr, "ipfs://b", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)

	require.Len(t, f.JobsKeeper.GetJobsByRequester(f.Ctx, requesterAddr), 1)
	require.Len(t, f.JobsKeeper.GetJobsByRequester(f.Ctx, strangerAddr), 1)
	require.Empty(t, f.JobsKeeper.GetJobsByRequester(f.Ctx, providerAddr))

	require.Empty(t, f.JobsKeeper.GetJobsByProvider(f.Ctx, providerAddr))
	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, first.Id))

	byProvider := f.JobsKeeper.GetJobsByProvider(f.Ctx, providerAddr)
	require.Len(t, byProvider, 1)
	require.Equal(t, first.Id, byProvider[0].Id)

	// Provider index entries survive the payout so history stays queryable.
	require.NoError(t, f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, first.Id, "ipfs://result"))
	_, err = f.JobsKeeper.ApproveAndPay(f.Ctx, requesterAddr, first.Id)
	require.NoError(t, err)
	require.Len(t, f.JobsKeeper.GetJobsByProvider(f.Ctx, providerAddr), 1)
}

func TestNextJobID_SetAndGet(t *testing.T) {
	f := keepertest.NewJobsFixture(t)

	require.Equal(t, uint64(1), f.JobsKeeper.GetNextJobID(f.Ctx))

	f.JobsKeeper.SetNextJobID(f.Ctx, 55)
	require.Equal(t, uint64(55), f.JobsKeeper.GetNextJobID(f.Ctx))
}

func TestAccessChecks(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)

	require.True(t, f.JobsKeeper.IsRequester(job, requesterAddr))
	require.False(t, f.JobsKeeper.IsRequester(job, providerAddr))

	// Open jobs have no provider bound yet.
	require.False(t, f.JobsKeeper.IsAssignedProvider(job, providerAddr))

	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))
	accepted, err := f.JobsKeeper.GetJob(f.Ctx, job.Id)
	require.NoError(t, err)
	require.True(t, f.JobsKeeper.IsAssignedProvider(accepted, providerAddr))
	require.False(t, f.JobsKeeper.IsAssignedProvider(accepted, strangerAddr))
}
