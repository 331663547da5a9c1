package types

import (
	"context"

	"cosmossdk.io/math"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc"
)

// MsgPostJob posts a new job, escrowing native collateral for RewardUsd.
// Deposit is the attached value; any excess over the oracle quote is
// refunded in the same operation.
type MsgPostJob struct {
	Requester string   `json:"requester"`
	DataUrl   string   `json:"data_url"`
	ScriptUrl string   `json:"script_url"`
	RewardUsd math.Int `json:"reward_usd"`
	Deposit   sdk.Coin `json:"deposit"`
}

// MsgPostJobResponse returns the id assigned to the posted job
type MsgPostJobResponse struct {
	JobId       uint64   `json:"job_id"`
	LockedValue sdk.Coin `json:"locked_value"`
}

// MsgAcceptJob claims an open job for the signing provider
type MsgAcceptJob struct {
	Provider string `json:"provider"`
	JobId    uint64 `json:"job_id"`
}

// MsgAcceptJobResponse is the response for MsgAcceptJob
type MsgAcceptJobResponse struct{}

// MsgSubmitResult records the result url for an accepted job
type MsgSubmitResult struct {
	Provider  string `json:"provider"`
	JobId     uint64 `json:"job_id"`
	ResultUrl string `json:"result_url"`
}

// MsgSubmitResultResponse is the response for MsgSubmitResult
type MsgSubmitResultResponse struct{}

// MsgApproveAndPay approves a submitted result and releases the escrowed
// collateral to the assigned provider
type MsgApproveAndPay struct {
	Requester string `json:"requester"`
	JobId     uint64 `json:"job_id"`
}

// MsgApproveAndPayResponse reports the amount paid out
type MsgApproveAndPayResponse struct {
	Paid sdk.Coin `json:"paid"`
}

// MsgUpdateParams updates the module parameters, gated on the gov authority
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams
type MsgUpdateParamsResponse struct{}

// MsgServer is the jobs module Msg service
type MsgServer interface {
	PostJob(context.Context, *MsgPostJob) (*MsgPostJobResponse, error)
	AcceptJob(context.Context, *MsgAcceptJob) (*MsgAcceptJobResponse, error)
	SubmitResult(context.Context, *MsgSubmitResult) (*MsgSubmitResultResponse, error)
	ApproveAndPay(context.Context, *MsgApproveAndPay) (*MsgApproveAndPayResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// RegisterMsgServer registers the Msg service implementation with the
// module configurator's server
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_PostJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgPostJob)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).PostJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Msg/PostJob",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).PostJob(ctx, req.(*MsgPostJob))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_AcceptJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgAcceptJob)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).AcceptJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Msg/AcceptJob",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).AcceptJob(ctx, req.(*MsgAcceptJob))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_SubmitResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSubmitResult)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SubmitResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Msg/SubmitResult",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SubmitResult(ctx, req.(*MsgSubmitResult))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_ApproveAndPay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgApproveAndPay)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).ApproveAndPay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Msg/ApproveAndPay",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).ApproveAndPay(ctx, req.(*MsgApproveAndPay))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateParams)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loom.jobs.v1.Msg/UpdateParams",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateParams(ctx, req.(*MsgUpdateParams))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "loom.jobs.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PostJob",
			Handler:    _Msg_PostJob_Handler,
		},
		{
			MethodName: "AcceptJob",
			Handler:    _Msg_AcceptJob_Handler,
		},
		{
			MethodName: "SubmitResult",
			Handler:    _Msg_SubmitResult_Handler,
		},
		{
			MethodName: "ApproveAndPay",
			Handler:    _Msg_ApproveAndPay_Handler,
		},
		{
			MethodName: "UpdateParams",
			Handler:    _Msg_UpdateParams_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "loom/jobs/v1/tx.proto",
}
