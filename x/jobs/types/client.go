package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// QueryClient is the client API for the jobs Query service
type QueryClient interface {
	Job(ctx context.Context, in *QueryJobRequest, opts ...grpc.CallOption) (*QueryJobResponse, error)
	Jobs(ctx context.Context, in *QueryJobsRequest, opts ...grpc.CallOption) (*QueryJobsResponse, error)
	JobsByRequester(ctx context.Context, in *QueryJobsByRequesterRequest, opts ...grpc.CallOption) (*QueryJobsByRequesterResponse, error)
	JobsByProvider(ctx context.Context, in *QueryJobsByProviderRequest, opts ...grpc.CallOption) (*QueryJobsByProviderResponse, error)
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	RequiredDeposit(ctx context.Context, in *QueryRequiredDepositRequest, opts ...grpc.CallOption) (*QueryRequiredDepositResponse, error)
	PriceFeed(ctx context.Context, in *QueryPriceFeedRequest, opts ...grpc.CallOption) (*QueryPriceFeedResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient creates a new jobs query client
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Job(ctx context.Context, in *QueryJobRequest, opts ...grpc.CallOption) (*QueryJobResponse, error) {
	out := new(QueryJobResponse)
	err := c.cc.Invoke(ctx, "/loom.jobs.v1.Query/Job", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Jobs(ctx context.Context, in *QueryJobsRequest, opts ...grpc.CallOption) (*QueryJobsResponse, error) {
	out := new(QueryJobsResponse)
	err := c.cc.Invoke(ctx, "/loom.jobs.v1.Query/Jobs", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) JobsByRequester(ctx context.Context, in *QueryJobsByRequesterRequest, opts ...grpc.CallOption) (*QueryJobsByRequesterResponse, error) {
	out := new(QueryJobsByRequesterResponse)
	err := c.cc.Invoke(ctx, "/loom.jobs.v1.Query/JobsByRequester", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) JobsByProvider(ctx context.Context, in *QueryJobsByProviderRequest, opts ...grpc.CallOption) (*QueryJobsByProviderResponse, error) {
	out := new(QueryJobsByProviderResponse)
	err := c.cc.Invoke(ctx, "/loom.jobs.v1.Query/JobsByProvider", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/loom.jobs.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) RequiredDeposit(ctx context.Context, in *QueryRequiredDepositRequest, opts ...grpc.CallOption) (*QueryRequiredDepositResponse, error) {
	out := new(QueryRequiredDepositResponse)
	err := c.cc.Invoke(ctx, "/loom.jobs.v1.Query/RequiredDeposit", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PriceFeed(ctx context.Context, in *QueryPriceFeedRequest, opts ...grpc.CallOption) (*QueryPriceFeedResponse, error) {
	out := new(QueryPriceFeedResponse)
	err := c.cc.Invoke(ctx, "/loom.jobs.v1.Query/PriceFeed", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
