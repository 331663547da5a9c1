package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/jobs/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// PostJob handles posting a new job with escrowed collateral
func (ms msgServer) PostJob(goCtx context.Context, msg *types.MsgPostJob) (*types.MsgPostJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	requesterAddr, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid requester address: %v", err)
	}

	job, err := ms.Keeper.PostJob(ctx, requesterAddr, msg.DataUrl, msg.ScriptUrl, msg.RewardUsd, msg.Deposit)
	if err != nil {
		return nil, err
	}

	return &types.MsgPostJobResponse{
		JobId:       job.Id,
		LockedValue: job.LockedValue,
	}, nil
}

// AcceptJob handles a provider claiming an open job
func (ms msgServer) AcceptJob(goCtx context.Context, msg *types.MsgAcceptJob) (*types.MsgAcceptJobResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	providerAddr, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}

	if err := ms.Keeper.AcceptJob(ctx, providerAddr, msg.JobId); err != nil {
		return nil, err
	}

	return &types.MsgAcceptJobResponse{}, nil
}

// SubmitResult handles the assigned provider submitting a result url
func (ms msgServer) SubmitResult(goCtx context.Context, msg *types.MsgSubmitResult) (*types.MsgSubmitResultResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	providerAddr, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}

	if err := ms.Keeper.SubmitResult(ctx, providerAddr, msg.JobId, msg.ResultUrl); err != nil {
		return nil, err
	}

	return &types.MsgSubmitResultResponse{}, nil
}

// ApproveAndPay handles the requester approving a result and paying out
func (ms msgServer) ApproveAndPay(goCtx context.Context, msg *types.MsgApproveAndPay) (*types.MsgApproveAndPayResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	requesterAddr, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid requester address: %v", err)
	}

	paid, err := ms.Keeper.ApproveAndPay(ctx, requesterAddr, msg.JobId)
	if err != nil {
		return nil, err
	}

	return &types.MsgApproveAndPayResponse{Paid: paid}, nil
}

// UpdateParams handles governance parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.ValidateAuthority(msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
