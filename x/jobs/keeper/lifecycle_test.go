package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loom-chain/loom/testutil/keeper"
	"github.com/loom-chain/loom/x/jobs/types"
)

var (
	requesterAddr = sdk.AccAddress([]byte("requester___________"))
	providerAddr  = sdk.AccAddress([]byte("provider____________"))
	strangerAddr  = sdk.AccAddress([]byte("stranger____________"))
)

// tenUsd is $10 in fixed-point USD (8 decimals)
var tenUsd = math.NewInt(10_0000_0000)

// priceFixture seeds a $3000 feed and funds the requester. At that price a
// $10 reward quotes to 3334uloom (10^23 / (3 * 10^19) rounded up).
func priceFixture(t *testing.T) *keepertest.JobsFixture {
	f := keepertest.NewJobsFixture(t)
	f.SetPrice(t, types.DefaultPriceAsset, math.NewInt(3000_0000_0000), 8)
	f.FundAccount(t, requesterAddr, sdk.NewCoins(sdk.NewInt64Coin("uloom", 1_000_000)))
	return f
}

func TestPostJob_EscrowsRoundedUpCollateral(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)

	require.Equal(t, uint64(1), job.Id)
	require.Equal(t, requesterAddr.String(), job.Requester)
	require.Empty(t, job.Provider)
	require.Equal(t, types.JobStatusOpen, job.Status)
	require.True(t, job.RewardUsd.Equal(tenUsd))
	require.Equal(t, sdk.NewInt64Coin("uloom", 3334), job.LockedValue)

	require.Equal(t, sdk.NewInt64Coin("uloom", 3334), f.JobsKeeper.GetEscrowBalance(f.Ctx))
	requesterBal := f.BankKeeper.GetBalance(f.Ctx, requesterAddr, "uloom")
	require.True(t, requesterBal.Amount.Equal(math.NewInt(1_000_000-3334)))
}

func TestPostJob_RefundsExcessDeposit(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 10_000))
	require.NoError(t, err)

	// Only the quoted 3334 stays locked; the other 6666 comes straight back.
	require.Equal(t, sdk.NewInt64Coin("uloom", 3334), job.LockedValue)
	require.Equal(t, sdk.NewInt64Coin("uloom", 3334), f.JobsKeeper.GetEscrowBalance(f.Ctx))

	requesterBal := f.BankKeeper.GetBalance(f.Ctx, requesterAddr, "uloom")
	require.True(t, requesterBal.Amount.Equal(math.NewInt(1_000_000-3334)))
}

func TestPostJob_InsufficientDeposit(t *testing.T) {
	f := priceFixture(t)

	_, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3333))
	require.ErrorIs(t, err, types.ErrInsufficientDeposit)

	// Nothing was stored or moved.
	require.False(t, f.JobsKeeper.HasJob(f.Ctx, 1))
	require.True(t, f.JobsKeeper.GetEscrowBalance(f.Ctx).IsZero())
	requesterBal := f.BankKeeper.GetBalance(f.Ctx, requesterAddr, "uloom")
	require.True(t, requesterBal.Amount.Equal(math.NewInt(1_000_000)))
}

func TestLifecycle_LockedValueBeyondInt64(t *testing.T) {
	// A one-unit feed quotes a 10^13 usd reward to 10^19uloom, past int64
	// range. The metric updates on post and payout must not overflow.
	f := keepertest.NewJobsFixture(t)
	f.SetPrice(t, types.DefaultPriceAsset, math.NewInt(1), 8)

	huge := math.NewIntWithDecimal(2, 19)
	f.FundAccount(t, requesterAddr, sdk.NewCoins(sdk.NewCoin("uloom", huge)))

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", math.NewIntWithDecimal(1, 13), sdk.NewCoin("uloom", huge))
	require.NoError(t, err)
	require.True(t, job.LockedValue.Amount.Equal(math.NewIntWithDecimal(1, 19)))
	require.False(t, job.LockedValue.Amount.IsInt64())

	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))
	require.NoError(t, f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, job.Id, "ipfs://result"))

	paid, err := f.JobsKeeper.ApproveAndPay(f.Ctx, requesterAddr, job.Id)
	require.NoError(t, err)
	require.True(t, paid.Amount.Equal(job.LockedValue.Amount))
	require.True(t, f.JobsKeeper.GetEscrowBalance(f.Ctx).IsZero())
}

func TestPostJob_OracleUnavailable(t *testing.T) {
	f := keepertest.NewJobsFixture(t)
	f.FundAccount(t, requesterAddr, sdk.NewCoins(sdk.NewInt64Coin("uloom", 1_000_000)))

	_, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 10_000))
	require.ErrorIs(t, err, types.ErrOracleUnavailable)
	require.False(t, f.JobsKeeper.HasJob(f.Ctx, 1))
}

func TestPostJob_WrongDenom(t *testing.T) {
	f := priceFixture(t)

	_, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uatom", 10_000))
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestPostJob_DustReward(t *testing.T) {
	f := priceFixture(t)

	_, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", math.NewInt(1), sdk.NewInt64Coin("uloom", 10_000))
	require.ErrorIs(t, err, types.ErrInvalidReward)
}

func TestPostJob_URLBounds(t *testing.T) {
	f := priceFixture(t)

	_, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 10_000))
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	long := make([]byte, types.DefaultMaxUrlLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", string(long), tenUsd, sdk.NewInt64Coin("uloom", 10_000))
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestPostJob_AssignsMonotonicIDs(t *testing.T) {
	f := priceFixture(t)

	first, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://a", "ipfs://s", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)
	second, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://b", "ipfs://s", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)

	require.Equal(t, uint64(1), first.Id)
	require.Equal(t, uint64(2), second.Id)
	require.Equal(t, uint64(3), f.JobsKeeper.GetNextJobID(f.Ctx))
}

func TestAcceptJob_FirstComeFirstServed(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)

	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))

	// The first accept consumed the open status; a competitor is rejected.
	err = f.JobsKeeper.AcceptJob(f.Ctx, strangerAddr, job.Id)
	require.ErrorIs(t, err, types.ErrJobNotOpen)

	stored, err := f.JobsKeeper.GetJob(f.Ctx, job.Id)
	require.NoError(t, err)
	require.Equal(t, types.JobStatusAccepted, stored.Status)
	require.Equal(t, providerAddr.String(), stored.Provider)
}

func TestAcceptJob_NotFound(t *testing.T) {
	f := keepertest.NewJobsFixture(t)

	err := f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, 42)
	require.ErrorIs(t, err, types.ErrJobNotFound)
}

func TestSubmitResult_OnlyAssignedProvider(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)

	// Open jobs have no provider, so even the eventual provider cannot
	// submit before accepting.
	err = f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, job.Id, "ipfs://result")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))

	err = f.JobsKeeper.SubmitResult(f.Ctx, strangerAddr, job.Id, "ipfs://result")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, job.Id, "ipfs://result"))

	stored, err := f.JobsKeeper.GetJob(f.Ctx, job.Id)
	require.NoError(t, err)
	require.Equal(t, types.JobStatusSubmitted, stored.Status)
	require.Equal(t, "ipfs://result", stored.ResultUrl)

	// A second submission hits the state guard.
	err = f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, job.Id, "ipfs://other")
	require.ErrorIs(t, err, types.ErrInvalidState)
}

func TestSubmitResult_EmptyURL(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)
	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))

	err = f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, job.Id, "")
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestApproveAndPay_ReleasesExactlyLockedValue(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 10_000))
	require.NoError(t, err)
	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))
	require.NoError(t, f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, job.Id, "ipfs://result"))

	paid, err := f.JobsKeeper.ApproveAndPay(f.Ctx, requesterAddr, job.Id)
	require.NoError(t, err)
	require.Equal(t, job.LockedValue, paid)

	providerBal := f.BankKeeper.GetBalance(f.Ctx, providerAddr, "uloom")
	require.True(t, providerBal.Amount.Equal(job.LockedValue.Amount))
	require.True(t, f.JobsKeeper.GetEscrowBalance(f.Ctx).IsZero())

	stored, err := f.JobsKeeper.GetJob(f.Ctx, job.Id)
	require.NoError(t, err)
	require.Equal(t, types.JobStatusPaid, stored.Status)

	// The escrow is spent; a second approval must not pay again.
	_, err = f.JobsKeeper.ApproveAndPay(f.Ctx, requesterAddr, job.Id)
	require.ErrorIs(t, err, types.ErrInvalidState)
	providerBal = f.BankKeeper.GetBalance(f.Ctx, providerAddr, "uloom")
	require.True(t, providerBal.Amount.Equal(job.LockedValue.Amount))
}

func TestApproveAndPay_OnlyRequester(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)
	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))
	require.NoError(t, f.JobsKeeper.SubmitResult(f.Ctx, providerAddr, job.Id, "ipfs://result"))

	_, err = f.JobsKeeper.ApproveAndPay(f.Ctx, strangerAddr, job.Id)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = f.JobsKeeper.ApproveAndPay(f.Ctx, providerAddr, job.Id)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestApproveAndPay_RequiresSubmittedResult(t *testing.T) {
	f := priceFixture(t)

	job, err := f.JobsKeeper.PostJob(f.Ctx, requesterAddr, "ipfs://data", "ipfs://script", tenUsd, sdk.NewInt64Coin("uloom", 3334))
	require.NoError(t, err)

	_, err = f.JobsKeeper.ApproveAndPay(f.Ctx, requesterAddr, job.Id)
	require.ErrorIs(t, err, types.ErrInvalidState)

	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, providerAddr, job.Id))

	_, err = f.JobsKeeper.ApproveAndPay(f.Ctx, requesterAddr, job.Id)
	require.ErrorIs(t, err, types.ErrInvalidState)
}
