package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/loom-chain/loom/x/oracle/types"
)

var _ types.QueryServer = queryServer{}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Price returns the latest price feed for an asset
func (qs queryServer) Price(goCtx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	if req.Asset == "" {
		return nil, status.Error(codes.InvalidArgument, "asset cannot be empty")
	}

	feed, err := qs.GetPriceFeed(goCtx, req.Asset)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "no price for asset %s", req.Asset)
	}

	return &types.QueryPriceResponse{Feed: feed}, nil
}

// Prices returns all stored price feeds
func (qs queryServer) Prices(goCtx context.Context, req *types.QueryPricesRequest) (*types.QueryPricesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	return &types.QueryPricesResponse{Feeds: qs.GetAllPriceFeeds(goCtx)}, nil
}

// Params returns the oracle module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryParamsResponse{Params: params}, nil
}
