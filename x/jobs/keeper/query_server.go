package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/loom-chain/loom/x/jobs/types"
)

var _ types.QueryServer = queryServer{}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Job returns a single job by id
func (qs queryServer) Job(goCtx context.Context, req *types.QueryJobRequest) (*types.QueryJobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	job, err := qs.Keeper.GetJob(ctx, req.JobId)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %d not found", req.JobId)
	}

	return &types.QueryJobResponse{Job: job}, nil
}

// Jobs lists jobs, optionally filtered by status name
func (qs queryServer) Jobs(goCtx context.Context, req *types.QueryJobsRequest) (*types.QueryJobsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if req.Status == "" {
		return &types.QueryJobsResponse{Jobs: qs.Keeper.GetAllJobs(ctx)}, nil
	}

	var filter types.JobStatus
	switch req.Status {
	case "open":
		filter = types.JobStatusOpen
	case "accepted":
		filter = types.JobStatusAccepted
	case "submitted":
		filter = types.JobStatusSubmitted
	case "paid":
		filter = types.JobStatusPaid
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", req.Status)
	}

	return &types.QueryJobsResponse{Jobs: qs.Keeper.GetJobsByStatus(ctx, filter)}, nil
}

// JobsByRequester lists jobs posted by an address
func (qs queryServer) JobsByRequester(goCtx context.Context, req *types.QueryJobsByRequesterRequest) (*types.QueryJobsByRequesterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Requester)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid requester address: %v", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryJobsByRequesterResponse{Jobs: qs.Keeper.GetJobsByRequester(ctx, addr)}, nil
}

// JobsByProvider lists jobs assigned to an address
func (qs queryServer) JobsByProvider(goCtx context.Context, req *types.QueryJobsByProviderRequest) (*types.QueryJobsByProviderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid provider address: %v", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryJobsByProviderResponse{Jobs: qs.Keeper.GetJobsByProvider(ctx, addr)}, nil
}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	params, err := qs.Keeper.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// RequiredDeposit quotes the collateral currently required for a usd reward
func (qs queryServer) RequiredDeposit(goCtx context.Context, req *types.QueryRequiredDepositRequest) (*types.QueryRequiredDepositResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	required, err := qs.Keeper.RequiredDeposit(ctx, req.RewardUsd)
	if err != nil {
		return nil, err
	}

	return &types.QueryRequiredDepositResponse{Required: required}, nil
}

// PriceFeed reports the oracle feed the module prices against
func (qs queryServer) PriceFeed(goCtx context.Context, req *types.QueryPriceFeedRequest) (*types.QueryPriceFeedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	params, err := qs.Keeper.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	price, decimals, err := qs.Keeper.oracleKeeper.CurrentPrice(ctx, params.PriceAsset)
	if err != nil {
		return nil, types.ErrOracleUnavailable.Wrapf("asset %s: %v", params.PriceAsset, err)
	}

	return &types.QueryPriceFeedResponse{
		Asset:     params.PriceAsset,
		Price:     price,
		Decimals:  decimals,
		UpdatedAt: ctx.BlockTime(),
	}, nil
}
