package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/x/jobs/types"
)

var (
	testRequester = sdk.AccAddress([]byte("requester___________")).String()
	testProvider  = sdk.AccAddress([]byte("provider____________")).String()
)

func validPostJob() *types.MsgPostJob {
	return &types.MsgPostJob{
		Requester: testRequester,
		DataUrl:   "ipfs://data",
		ScriptUrl: "ipfs://script",
		RewardUsd: math.NewInt(10_0000_0000),
		Deposit:   sdk.NewInt64Coin("uloom", 10_000),
	}
}

func TestMsgPostJob_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgPostJob)
		wantErr error
	}{
		{name: "valid", mutate: func(*types.MsgPostJob) {}},
		{
			name:    "bad requester",
			mutate:  func(m *types.MsgPostJob) { m.Requester = "garbage" },
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "empty data url",
			mutate:  func(m *types.MsgPostJob) { m.DataUrl = "" },
			wantErr: types.ErrInvalidRequest,
		},
		{
			name:    "empty script url",
			mutate:  func(m *types.MsgPostJob) { m.ScriptUrl = "" },
			wantErr: types.ErrInvalidRequest,
		},
		{
			name:    "zero reward",
			mutate:  func(m *types.MsgPostJob) { m.RewardUsd = math.ZeroInt() },
			wantErr: types.ErrInvalidReward,
		},
		{
			name:    "negative reward",
			mutate:  func(m *types.MsgPostJob) { m.RewardUsd = math.NewInt(-1) },
			wantErr: types.ErrInvalidReward,
		},
		{
			name:    "nil reward",
			mutate:  func(m *types.MsgPostJob) { m.RewardUsd = math.Int{} },
			wantErr: types.ErrInvalidReward,
		},
		{
			name:    "zero deposit",
			mutate:  func(m *types.MsgPostJob) { m.Deposit = sdk.NewInt64Coin("uloom", 0) },
			wantErr: types.ErrInvalidRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := validPostJob()
			tc.mutate(msg)

			err := msg.ValidateBasic()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestMsgAcceptJob_ValidateBasic(t *testing.T) {
	msg := &types.MsgAcceptJob{Provider: testProvider, JobId: 1}
	require.NoError(t, msg.ValidateBasic())

	bad := &types.MsgAcceptJob{Provider: "garbage", JobId: 1}
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAddress)

	zero := &types.MsgAcceptJob{Provider: testProvider, JobId: 0}
	require.ErrorIs(t, zero.ValidateBasic(), types.ErrInvalidRequest)
}

func TestMsgSubmitResult_ValidateBasic(t *testing.T) {
	msg := &types.MsgSubmitResult{Provider: testProvider, JobId: 1, ResultUrl: "ipfs://result"}
	require.NoError(t, msg.ValidateBasic())

	noURL := &types.MsgSubmitResult{Provider: testProvider, JobId: 1}
	require.ErrorIs(t, noURL.ValidateBasic(), types.ErrInvalidRequest)

	zero := &types.MsgSubmitResult{Provider: testProvider, JobId: 0, ResultUrl: "ipfs://result"}
	require.ErrorIs(t, zero.ValidateBasic(), types.ErrInvalidRequest)
}

func TestMsgApproveAndPay_ValidateBasic(t *testing.T) {
	msg := &types.MsgApproveAndPay{Requester: testRequester, JobId: 1}
	require.NoError(t, msg.ValidateBasic())

	bad := &types.MsgApproveAndPay{Requester: "garbage", JobId: 1}
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAddress)

	zero := &types.MsgApproveAndPay{Requester: testRequester, JobId: 0}
	require.ErrorIs(t, zero.ValidateBasic(), types.ErrInvalidRequest)
}

func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	msg := &types.MsgUpdateParams{Authority: testRequester, Params: types.DefaultParams()}
	require.NoError(t, msg.ValidateBasic())

	bad := &types.MsgUpdateParams{Authority: "garbage", Params: types.DefaultParams()}
	require.Error(t, bad.ValidateBasic())

	broken := types.DefaultParams()
	broken.MaxUrlLength = 0
	badParams := &types.MsgUpdateParams{Authority: testRequester, Params: broken}
	require.Error(t, badParams.ValidateBasic())
}

func TestMsgSigners(t *testing.T) {
	requester := sdk.AccAddress([]byte("requester___________"))
	provider := sdk.AccAddress([]byte("provider____________"))

	post := &types.MsgPostJob{Requester: requester.String()}
	require.Equal(t, []sdk.AccAddress{requester}, post.GetSigners())

	accept := &types.MsgAcceptJob{Provider: provider.String()}
	require.Equal(t, []sdk.AccAddress{provider}, accept.GetSigners())

	submit := &types.MsgSubmitResult{Provider: provider.String()}
	require.Equal(t, []sdk.AccAddress{provider}, submit.GetSigners())

	approve := &types.MsgApproveAndPay{Requester: requester.String()}
	require.Equal(t, []sdk.AccAddress{requester}, approve.GetSigners())
}
