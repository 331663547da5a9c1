package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/oracle/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// SubmitPrice handles a validator publishing a price observation
func (ms msgServer) SubmitPrice(goCtx context.Context, msg *types.MsgSubmitPrice) (*types.MsgSubmitPriceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	validatorAddr, err := sdk.AccAddressFromBech32(msg.Validator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid validator address: %v", err)
	}

	if _, err := ms.Keeper.SubmitPrice(ctx, validatorAddr, msg.Asset, msg.Price, msg.Decimals); err != nil {
		return nil, err
	}

	return &types.MsgSubmitPriceResponse{}, nil
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
