package types

import (
	"context"
	"time"

	"cosmossdk.io/math"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc"
)

// QueryJobRequest fetches a single job by id
type QueryJobRequest struct {
	JobId uint64 `json:"job_id"`
}

// QueryJobResponse is the response for QueryJobRequest
type QueryJobResponse struct {
	Job Job `json:"job"`
}

// QueryJobsRequest lists jobs, optionally filtered by status name
type QueryJobsRequest struct {
	Status string `json:"status,omitempty"`
}

// QueryJobsResponse is the response for QueryJobsRequest
type QueryJobsResponse struct {
	Jobs []Job `json:"jobs"`
}

// QueryJobsByRequesterRequest lists jobs posted by an address
type QueryJobsByRequesterRequest struct {
	Requester string `json:"requester"`
}

// QueryJobsByRequesterResponse is the response for QueryJobsByRequesterRequest
type QueryJobsByRequesterResponse struct {
	Jobs []Job `json:"jobs"`
}

// QueryJobsByProviderRequest lists jobs assigned to an address
type QueryJobsByProviderRequest struct {
	Provider string `json:"provider"`
}

// QueryJobsByProviderResponse is the response for QueryJobsByProviderRequest
type QueryJobsByProviderResponse struct {
	Jobs []Job `json:"jobs"`
}

// QueryParamsRequest fetches the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse is the response for QueryParamsRequest
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryRequiredDepositRequest quotes the native collateral for a usd reward
type QueryRequiredDepositRequest struct {
	RewardUsd math.Int `json:"reward_usd"`
}

// QueryRequiredDepositResponse is the response for QueryRequiredDepositRequest
type QueryRequiredDepositResponse struct {
	Required sdk.Coin `json:"required"`
}

// QueryPriceFeedRequest fetches the identity and state of the price oracle
// the module is wired to
type QueryPriceFeedRequest struct{}

// QueryPriceFeedResponse is the response for QueryPriceFeedRequest
type QueryPriceFeedResponse struct {
	Asset     string    `json:"asset"`
	Price     math.Int  `json:"price"`
	Decimals  uint32    `json:"decimals"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QueryServer is the jobs module Query service
type QueryServer interface {
	Job(context.Context, *QueryJobRequest) (*QueryJobResponse, error)
	Jobs(context.Context, *QueryJobsRequest) (*QueryJobsResponse, error)
	JobsByRequester(context.Context, *QueryJobsByRequesterRequest) (*QueryJobsByRequesterResponse, error)
	JobsByProvider(context.Context, *QueryJobsByProviderRequest) (*QueryJobsByProviderResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	RequiredDeposit(context.Context, *QueryRequiredDepositRequest) (*QueryRequiredDepositResponse, error)
	PriceFeed(context.Context, *QueryPriceFeedRequest) (*QueryPriceFeedResponse, error)
}

// RegisterQueryServer registers the Query service implementation with the
// module configurator's server
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Job_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Job(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Query/Job",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Job(ctx, req.(*QueryJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Jobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Jobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Query/Jobs",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Jobs(ctx, req.(*QueryJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_JobsByRequester_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryJobsByRequesterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).JobsByRequester(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Query/JobsByRequester",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).JobsByRequester(ctx, req.(*QueryJobsByRequesterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_JobsByProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryJobsByProviderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).JobsByProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Query/JobsByProvider",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).JobsByProvider(ctx, req.(*QueryJobsByProviderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Query/Params",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_RequiredDeposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryRequiredDepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).RequiredDeposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Query/RequiredDeposit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).RequiredDeposit(ctx, req.(*QueryRequiredDepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_PriceFeed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPriceFeedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).PriceFeed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Query/PriceFeed",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).PriceFeed(ctx, req.(*QueryPriceFeedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "loom.jobs.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Job",
			Handler:    _Query_Job_Handler,
		},
		{
			MethodName: "Jobs",
			Handler:    _Query_Jobs_Handler,
		},
		{
			MethodName: "JobsByRequester",
			Handler:    _Query_JobsByRequester_Handler,
		},
		{
			MethodName: "JobsByProvider",
			Handler:    _Query_JobsByProvider_Handler,
		},
		{
			MethodName: "Params",
			Handler:    _Query_Params_Handler,
		},
		{
			MethodName: "RequiredDeposit",
			Handler:    _Query_RequiredDeposit_Handler,
		},
		{
			MethodName: "PriceFeed",
			Handler:    _Query_PriceFeed_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "loom/jobs/v1/query.proto",
}
