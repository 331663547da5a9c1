package ante_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/app/ante"
	testkeeper "github.com/loom-chain/loom/testutil/keeper"
	jobstypes "github.com/loom-chain/loom/x/jobs/types"
)

var noopAnte = func(ctx sdk.Context, _ sdk.Tx, _ bool) (sdk.Context, error) {
	return ctx, nil
}

func TestJobsDecorator_PostJobWrongDenom(t *testing.T) {
	f := testkeeper.NewJobsFixture(t)
	dec := ante.NewJobsDecorator(*f.JobsKeeper)

	requester := sdk.AccAddress("requester___________")
	tx := mockTx{msgs: []sdk.Msg{&jobstypes.MsgPostJob{
		Requester: requester.String(),
		DataUrl:   "ipfs://data",
		ScriptUrl: "ipfs://script",
		RewardUsd: math.NewInt(10_0000_0000),
		Deposit:   sdk.NewInt64Coin("uatom", 5000),
	}}}

	_, err := dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not match bond denom")
}

func TestJobsDecorator_PostJobDustReward(t *testing.T) {
	f := testkeeper.NewJobsFixture(t)
	dec := ante.NewJobsDecorator(*f.JobsKeeper)

	requester := sdk.AccAddress("requester___________")
	tx := mockTx{msgs: []sdk.Msg{&jobstypes.MsgPostJob{
		Requester: requester.String(),
		DataUrl:   "ipfs://data",
		ScriptUrl: "ipfs://script",
		RewardUsd: math.NewInt(1),
		Deposit:   sdk.NewInt64Coin(jobstypes.DefaultBondDenom, 5000),
	}}}

	_, err := dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)
	require.Contains(t, err.Error(), "below minimum")
}

func TestJobsDecorator_AcceptUnknownJob(t *testing.T) {
	f := testkeeper.NewJobsFixture(t)
	dec := ante.NewJobsDecorator(*f.JobsKeeper)

	provider := sdk.AccAddress("provider____________")
	tx := mockTx{msgs: []sdk.Msg{&jobstypes.MsgAcceptJob{
		Provider: provider.String(),
		JobId:    42,
	}}}

	_, err := dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestJobsDecorator_LifecycleChecks(t *testing.T) {
	f := testkeeper.NewJobsFixture(t)
	dec := ante.NewJobsDecorator(*f.JobsKeeper)

	requester := sdk.AccAddress("requester___________")
	provider := sdk.AccAddress("provider____________")
	stranger := sdk.AccAddress("stranger____________")

	f.SetPrice(t, jobstypes.DefaultPriceAsset, math.NewInt(3000_0000_0000), 8)
	f.FundAccount(t, requester, sdk.NewCoins(sdk.NewInt64Coin(jobstypes.DefaultBondDenom, 1_000_000)))

	job, err := f.JobsKeeper.PostJob(
		f.Ctx, requester, "ipfs://data", "ipfs://script",
		math.NewInt(10_0000_0000), sdk.NewInt64Coin(jobstypes.DefaultBondDenom, 10_000),
	)
	require.NoError(t, err)

	// Result submission before acceptance is rejected
	tx := mockTx{msgs: []sdk.Msg{&jobstypes.MsgSubmitResult{
		Provider:  provider.String(),
		JobId:     job.Id,
		ResultUrl: "ipfs://result",
	}}}
	_, err = dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)

	// Accepting an open job passes
	tx = mockTx{msgs: []sdk.Msg{&jobstypes.MsgAcceptJob{
		Provider: provider.String(),
		JobId:    job.Id,
	}}}
	_, err = dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.NoError(t, err)

	require.NoError(t, f.JobsKeeper.AcceptJob(f.Ctx, provider, job.Id))

	// Second acceptance is rejected
	_, err = dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not open")

	// Only the assigned provider may submit a result
	tx = mockTx{msgs: []sdk.Msg{&jobstypes.MsgSubmitResult{
		Provider:  stranger.String(),
		JobId:     job.Id,
		ResultUrl: "ipfs://result",
	}}}
	_, err = dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not assigned")

	// Approval before a result exists is rejected
	tx = mockTx{msgs: []sdk.Msg{&jobstypes.MsgApproveAndPay{
		Requester: requester.String(),
		JobId:     job.Id,
	}}}
	_, err = dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)

	require.NoError(t, f.JobsKeeper.SubmitResult(f.Ctx, provider, job.Id, "ipfs://result"))

	// Only the requester may approve
	tx = mockTx{msgs: []sdk.Msg{&jobstypes.MsgApproveAndPay{
		Requester: stranger.String(),
		JobId:     job.Id,
	}}}
	_, err = dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not posted")

	tx = mockTx{msgs: []sdk.Msg{&jobstypes.MsgApproveAndPay{
		Requester: requester.String(),
		JobId:     job.Id,
	}}}
	_, err = dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.NoError(t, err)
}

func TestJobsDecorator_SkipsSimulation(t *testing.T) {
	f := testkeeper.NewJobsFixture(t)
	dec := ante.NewJobsDecorator(*f.JobsKeeper)

	tx := mockTx{msgs: []sdk.Msg{&jobstypes.MsgAcceptJob{
		Provider: sdk.AccAddress("provider____________").String(),
		JobId:    42,
	}}}

	_, err := dec.AnteHandle(f.Ctx, tx, false, noopAnte)
	require.Error(t, err)

	_, err = dec.AnteHandle(f.Ctx, tx, true, noopAnte)
	require.NoError(t, err)
}
