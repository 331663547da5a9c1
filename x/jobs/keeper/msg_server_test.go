package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/x/jobs/keeper"
	"github.com/loom-chain/loom/x/jobs/types"
)

func TestMsgServer_FullLifecycle(t *testing.T) {
	f := priceFixture(t)
	srv := keeper.NewMsgServerImpl(*f.JobsKeeper)

	postResp, err := srv.PostJob(f.Ctx, &types.MsgPostJob{
		Requester: requesterAddr.String(),
		DataUrl:   "ipfs://data",
		ScriptUrl: "ipfs://script",
		RewardUsd: tenUsd,
		Deposit:   sdk.NewInt64Coin("uloom", 10_000),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), postResp.JobId)
	require.Equal(t, sdk.NewInt64Coin("uloom", 3334), postResp.LockedValue)

	_, err = srv.AcceptJob(f.Ctx, &types.MsgAcceptJob{
		Provider: providerAddr.String(),
		JobId:    postResp.JobId,
	})
	require.NoError(t, err)

	_, err = srv.SubmitResult(f.Ctx, &types.MsgSubmitResult{
		Provider:  providerAddr.String(),
		JobId:     postResp.JobId,
		ResultUrl: "ipfs://result",
	})
	require.NoError(t, err)

	payResp, err := srv.ApproveAndPay(f.Ctx, &types.MsgApproveAndPay{
		Requester: requesterAddr.String(),
		JobId:     postResp.JobId,
	})
	require.NoError(t, err)
	require.Equal(t, postResp.LockedValue, payResp.Paid)

	providerBal := f.BankKeeper.GetBalance(f.Ctx, providerAddr, "uloom")
	require.True(t, providerBal.Amount.Equal(payResp.Paid.Amount))
}

func TestMsgServer_RejectsMalformedAddresses(t *testing.T) {
	f := priceFixture(t)
	srv := keeper.NewMsgServerImpl(*f.JobsKeeper)

	_, err := srv.PostJob(f.Ctx, &types.MsgPostJob{
		Requester: "not-a-bech32-address",
		DataUrl:   "ipfs://data",
		ScriptUrl: "ipfs://script",
		RewardUsd: tenUsd,
		Deposit:   sdk.NewInt64Coin("uloom", 10_000),
	})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = srv.AcceptJob(f.Ctx, &types.MsgAcceptJob{
		Provider: "not-a-bech32-address",
		JobId:    1,
	})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestMsgServer_PostJobValidateBasic(t *testing.T) {
	f := priceFixture(t)
	srv := keeper.NewMsgServerImpl(*f.JobsKeeper)

	_, err := srv.PostJob(f.Ctx, &types.MsgPostJob{
		Requester: requesterAddr.String(),
		DataUrl:   "",
		ScriptUrl: "ipfs://script",
		RewardUsd: tenUsd,
		Deposit:   sdk.NewInt64Coin("uloom", 10_000),
	})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = srv.PostJob(f.Ctx, &types.MsgPostJob{
		Requester: requesterAddr.String(),
		DataUrl:   "ipfs://data",
		ScriptUrl: "ipfs://script",
		RewardUsd: math.ZeroInt(),
		Deposit:   sdk.NewInt64Coin("uloom", 10_000),
	})
	require.ErrorIs(t, err, types.ErrInvalidReward)

	_, err = srv.PostJob(f.Ctx, &types.MsgPostJob{
		Requester: requesterAddr.String(),
		DataUrl:   "ipfs://data",
		ScriptUrl: "ipfs://script",
		RewardUsd: tenUsd,
		Deposit:   sdk.NewInt64Coin("uloom", 0),
	})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestMsgServer_UpdateParams(t *testing.T) {
	f := priceFixture(t)
	srv := keeper.NewMsgServerImpl(*f.JobsKeeper)

	updated := types.DefaultParams()
	updated.MinRewardUsd = math.NewInt(5_000_000)

	_, err := srv.UpdateParams(f.Ctx, &types.MsgUpdateParams{
		Authority: strangerAddr.String(),
		Params:    updated,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	_, err = srv.UpdateParams(f.Ctx, &types.MsgUpdateParams{
		Authority: authority,
		Params:    updated,
	})
	require.NoError(t, err)

	params, err := f.JobsKeeper.GetParams(f.Ctx)
	require.NoError(t, err)
	require.True(t, params.MinRewardUsd.Equal(updated.MinRewardUsd))
}
