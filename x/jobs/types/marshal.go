package types

import (
	"encoding/json"
	"fmt"
)

// Wire methods for the module's JSON-tagged types so they satisfy
// codec.ProtoMarshaler and can be stored and routed through the app codec.

func mustJSONString(m interface{}) string {
	bz, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf("%T<marshal error: %v>", m, err)
	}
	return string(bz)
}

func marshalTo(m interface{}, dst []byte) (int, error) {
	bz, err := json.Marshal(m)
	if err != nil {
		return 0, err
	}
	return copy(dst, bz), nil
}

func marshalToSized(m interface{}, dst []byte) (int, error) {
	bz, err := json.Marshal(m)
	if err != nil {
		return 0, err
	}
	return copy(dst[len(dst)-len(bz):], bz), nil
}

func encodedSize(m interface{}) int {
	bz, err := json.Marshal(m)
	if err != nil {
		return 0
	}
	return len(bz)
}

func (m *Job) Reset()                                        { *m = Job{} }
func (m *Job) String() string                                { return mustJSONString(m) }
func (m *Job) ProtoMessage()                                 {}
func (m *Job) Marshal() ([]byte, error)                      { return json.Marshal(m) }
func (m *Job) MarshalTo(dst []byte) (int, error)             { return marshalTo(m, dst) }
func (m *Job) MarshalToSizedBuffer(dst []byte) (int, error)  { return marshalToSized(m, dst) }
func (m *Job) Size() int                                     { return encodedSize(m) }
func (m *Job) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }
func (m *Job) XXX_MessageName() string                       { return "loom.jobs.v1.Job" }

func (m *Params) Reset()                                       { *m = Params{} }
func (m *Params) String() string                               { return mustJSONString(m) }
func (m *Params) ProtoMessage()                                {}
func (m *Params) Marshal() ([]byte, error)                     { return json.Marshal(m) }
func (m *Params) MarshalTo(dst []byte) (int, error)            { return marshalTo(m, dst) }
func (m *Params) MarshalToSizedBuffer(dst []byte) (int, error) { return marshalToSized(m, dst) }
func (m *Params) Size() int                                    { return encodedSize(m) }
func (m *Params) Unmarshal(bz []byte) error                    { return json.Unmarshal(bz, m) }
func (m *Params) XXX_MessageName() string                      { return "loom.jobs.v1.Params" }

func (m *GenesisState) Reset()                                       { *m = GenesisState{} }
func (m *GenesisState) String() string                               { return mustJSONString(m) }
func (m *GenesisState) ProtoMessage()                                {}
func (m *GenesisState) Marshal() ([]byte, error)                     { return json.Marshal(m) }
func (m *GenesisState) MarshalTo(dst []byte) (int, error)            { return marshalTo(m, dst) }
func (m *GenesisState) MarshalToSizedBuffer(dst []byte) (int, error) { return marshalToSized(m, dst) }
func (m *GenesisState) Size() int                                    { return encodedSize(m) }
func (m *GenesisState) Unmarshal(bz []byte) error                    { return json.Unmarshal(bz, m) }
func (m *GenesisState) XXX_MessageName() string                      { return "loom.jobs.v1.GenesisState" }

func (m *MsgPostJob) Reset()                                       { *m = MsgPostJob{} }
func (m *MsgPostJob) String() string                               { return mustJSONString(m) }
func (m *MsgPostJob) ProtoMessage()                                {}
func (m *MsgPostJob) Marshal() ([]byte, error)                     { return json.Marshal(m) }
func (m *MsgPostJob) MarshalTo(dst []byte) (int, error)            { return marshalTo(m, dst) }
func (m *MsgPostJob) MarshalToSizedBuffer(dst []byte) (int, error) { return marshalToSized(m, dst) }
func (m *MsgPostJob) Size() int                                    { return encodedSize(m) }
func (m *MsgPostJob) Unmarshal(bz []byte) error                    { return json.Unmarshal(bz, m) }
func (m *MsgPostJob) XXX_MessageName() string                      { return "loom.jobs.v1.MsgPostJob" }

func (m *MsgPostJobResponse) Reset()                          { *m = MsgPostJobResponse{} }
func (m *MsgPostJobResponse) String() string                  { return mustJSONString(m) }
func (m *MsgPostJobResponse) ProtoMessage()                   {}
func (m *MsgPostJobResponse) Marshal() ([]byte, error)        { return json.Marshal(m) }
func (m *MsgPostJobResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *MsgPostJobResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgPostJobResponse) Size() int                 { return encodedSize(m) }
func (m *MsgPostJobResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgPostJobResponse) XXX_MessageName() string   { return "loom.jobs.v1.MsgPostJobResponse" }

func (m *MsgAcceptJob) Reset()                                       { *m = MsgAcceptJob{} }
func (m *MsgAcceptJob) String() string                               { return mustJSONString(m) }
func (m *MsgAcceptJob) ProtoMessage()                                {}
func (m *MsgAcceptJob) Marshal() ([]byte, error)                     { return json.Marshal(m) }
func (m *MsgAcceptJob) MarshalTo(dst []byte) (int, error)            { return marshalTo(m, dst) }
func (m *MsgAcceptJob) MarshalToSizedBuffer(dst []byte) (int, error) { return marshalToSized(m, dst) }
func (m *MsgAcceptJob) Size() int                                    { return encodedSize(m) }
func (m *MsgAcceptJob) Unmarshal(bz []byte) error                    { return json.Unmarshal(bz, m) }
func (m *MsgAcceptJob) XXX_MessageName() string                      { return "loom.jobs.v1.MsgAcceptJob" }

func (m *MsgAcceptJobResponse) Reset()                   { *m = MsgAcceptJobResponse{} }
func (m *MsgAcceptJobResponse) String() string           { return mustJSONString(m) }
func (m *MsgAcceptJobResponse) ProtoMessage()            {}
func (m *MsgAcceptJobResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgAcceptJobResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *MsgAcceptJobResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgAcceptJobResponse) Size() int                 { return encodedSize(m) }
func (m *MsgAcceptJobResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgAcceptJobResponse) XXX_MessageName() string   { return "loom.jobs.v1.MsgAcceptJobResponse" }

func (m *MsgSubmitResult) Reset()                            { *m = MsgSubmitResult{} }
func (m *MsgSubmitResult) String() string                    { return mustJSONString(m) }
func (m *MsgSubmitResult) ProtoMessage()                     {}
func (m *MsgSubmitResult) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *MsgSubmitResult) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *MsgSubmitResult) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgSubmitResult) Size() int                 { return encodedSize(m) }
func (m *MsgSubmitResult) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitResult) XXX_MessageName() string   { return "loom.jobs.v1.MsgSubmitResult" }

func (m *MsgSubmitResultResponse) Reset()                   { *m = MsgSubmitResultResponse{} }
func (m *MsgSubmitResultResponse) String() string           { return mustJSONString(m) }
func (m *MsgSubmitResultResponse) ProtoMessage()            {}
func (m *MsgSubmitResultResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgSubmitResultResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *MsgSubmitResultResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgSubmitResultResponse) Size() int                 { return encodedSize(m) }
func (m *MsgSubmitResultResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitResultResponse) XXX_MessageName() string {
	return "loom.jobs.v1.MsgSubmitResultResponse"
}

func (m *MsgApproveAndPay) Reset()                            { *m = MsgApproveAndPay{} }
func (m *MsgApproveAndPay) String() string                    { return mustJSONString(m) }
func (m *MsgApproveAndPay) ProtoMessage()                     {}
func (m *MsgApproveAndPay) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *MsgApproveAndPay) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *MsgApproveAndPay) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgApproveAndPay) Size() int                 { return encodedSize(m) }
func (m *MsgApproveAndPay) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgApproveAndPay) XXX_MessageName() string   { return "loom.jobs.v1.MsgApproveAndPay" }

func (m *MsgApproveAndPayResponse) Reset()                   { *m = MsgApproveAndPayResponse{} }
func (m *MsgApproveAndPayResponse) String() string           { return mustJSONString(m) }
func (m *MsgApproveAndPayResponse) ProtoMessage()            {}
func (m *MsgApproveAndPayResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgApproveAndPayResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *MsgApproveAndPayResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgApproveAndPayResponse) Size() int                 { return encodedSize(m) }
func (m *MsgApproveAndPayResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgApproveAndPayResponse) XXX_MessageName() string {
	return "loom.jobs.v1.MsgApproveAndPayResponse"
}

func (m *MsgUpdateParams) Reset()                            { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string                    { return mustJSONString(m) }
func (m *MsgUpdateParams) ProtoMessage()                     {}
func (m *MsgUpdateParams) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *MsgUpdateParams) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *MsgUpdateParams) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgUpdateParams) Size() int                 { return encodedSize(m) }
func (m *MsgUpdateParams) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateParams) XXX_MessageName() string   { return "loom.jobs.v1.MsgUpdateParams" }

func (m *MsgUpdateParamsResponse) Reset()                   { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string           { return mustJSONString(m) }
func (m *MsgUpdateParamsResponse) ProtoMessage()            {}
func (m *MsgUpdateParamsResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgUpdateParamsResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *MsgUpdateParamsResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgUpdateParamsResponse) Size() int                 { return encodedSize(m) }
func (m *MsgUpdateParamsResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgUpdateParamsResponse) XXX_MessageName() string {
	return "loom.jobs.v1.MsgUpdateParamsResponse"
}

func (m *QueryJobRequest) Reset()                            { *m = QueryJobRequest{} }
func (m *QueryJobRequest) String() string                    { return mustJSONString(m) }
func (m *QueryJobRequest) ProtoMessage()                     {}
func (m *QueryJobRequest) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryJobRequest) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryJobRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryJobRequest) Size() int                 { return encodedSize(m) }
func (m *QueryJobRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryJobRequest) XXX_MessageName() string   { return "loom.jobs.v1.QueryJobRequest" }

func (m *QueryJobResponse) Reset()                            { *m = QueryJobResponse{} }
func (m *QueryJobResponse) String() string                    { return mustJSONString(m) }
func (m *QueryJobResponse) ProtoMessage()                     {}
func (m *QueryJobResponse) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryJobResponse) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryJobResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryJobResponse) Size() int                 { return encodedSize(m) }
func (m *QueryJobResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryJobResponse) XXX_MessageName() string   { return "loom.jobs.v1.QueryJobResponse" }

func (m *QueryJobsRequest) Reset()                            { *m = QueryJobsRequest{} }
func (m *QueryJobsRequest) String() string                    { return mustJSONString(m) }
func (m *QueryJobsRequest) ProtoMessage()                     {}
func (m *QueryJobsRequest) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryJobsRequest) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryJobsRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryJobsRequest) Size() int                 { return encodedSize(m) }
func (m *QueryJobsRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryJobsRequest) XXX_MessageName() string   { return "loom.jobs.v1.QueryJobsRequest" }

func (m *QueryJobsResponse) Reset()                            { *m = QueryJobsResponse{} }
func (m *QueryJobsResponse) String() string                    { return mustJSONString(m) }
func (m *QueryJobsResponse) ProtoMessage()                     {}
func (m *QueryJobsResponse) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryJobsResponse) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryJobsResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryJobsResponse) Size() int                 { return encodedSize(m) }
func (m *QueryJobsResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryJobsResponse) XXX_MessageName() string   { return "loom.jobs.v1.QueryJobsResponse" }

func (m *QueryJobsByRequesterRequest) Reset()                   { *m = QueryJobsByRequesterRequest{} }
func (m *QueryJobsByRequesterRequest) String() string           { return mustJSONString(m) }
func (m *QueryJobsByRequesterRequest) ProtoMessage()            {}
func (m *QueryJobsByRequesterRequest) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *QueryJobsByRequesterRequest) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *QueryJobsByRequesterRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryJobsByRequesterRequest) Size() int                 { return encodedSize(m) }
func (m *QueryJobsByRequesterRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryJobsByRequesterRequest) XXX_MessageName() string {
	return "loom.jobs.v1.QueryJobsByRequesterRequest"
}

func (m *QueryJobsByRequesterResponse) Reset()                   { *m = QueryJobsByRequesterResponse{} }
func (m *QueryJobsByRequesterResponse) String() string           { return mustJSONString(m) }
func (m *QueryJobsByRequesterResponse) ProtoMessage()            {}
func (m *QueryJobsByRequesterResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *QueryJobsByRequesterResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *QueryJobsByRequesterResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryJobsByRequesterResponse) Size() int                 { return encodedSize(m) }
func (m *QueryJobsByRequesterResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryJobsByRequesterResponse) XXX_MessageName() string {
	return "loom.jobs.v1.QueryJobsByRequesterResponse"
}

func (m *QueryJobsByProviderRequest) Reset()                   { *m = QueryJobsByProviderRequest{} }
func (m *QueryJobsByProviderRequest) String() string           { return mustJSONString(m) }
func (m *QueryJobsByProviderRequest) ProtoMessage()            {}
func (m *QueryJobsByProviderRequest) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *QueryJobsByProviderRequest) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *QueryJobsByProviderRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryJobsByProviderRequest) Size() int                 { return encodedSize(m) }
func (m *QueryJobsByProviderRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryJobsByProviderRequest) XXX_MessageName() string {
	return "loom.jobs.v1.QueryJobsByProviderRequest"
}

func (m *QueryJobsByProviderResponse) Reset()                   { *m = QueryJobsByProviderResponse{} }
func (m *QueryJobsByProviderResponse) String() string           { return mustJSONString(m) }
func (m *QueryJobsByProviderResponse) ProtoMessage()            {}
func (m *QueryJobsByProviderResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *QueryJobsByProviderResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *QueryJobsByProviderResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryJobsByProviderResponse) Size() int                 { return encodedSize(m) }
func (m *QueryJobsByProviderResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryJobsByProviderResponse) XXX_MessageName() string {
	return "loom.jobs.v1.QueryJobsByProviderResponse"
}

func (m *QueryParamsRequest) Reset()                            { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string                    { return mustJSONString(m) }
func (m *QueryParamsRequest) ProtoMessage()                     {}
func (m *QueryParamsRequest) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryParamsRequest) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryParamsRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryParamsRequest) Size() int                 { return encodedSize(m) }
func (m *QueryParamsRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryParamsRequest) XXX_MessageName() string   { return "loom.jobs.v1.QueryParamsRequest" }

func (m *QueryParamsResponse) Reset()                            { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string                    { return mustJSONString(m) }
func (m *QueryParamsResponse) ProtoMessage()                     {}
func (m *QueryParamsResponse) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryParamsResponse) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryParamsResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryParamsResponse) Size() int                 { return encodedSize(m) }
func (m *QueryParamsResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryParamsResponse) XXX_MessageName() string   { return "loom.jobs.v1.QueryParamsResponse" }

func (m *QueryRequiredDepositRequest) Reset()                   { *m = QueryRequiredDepositRequest{} }
func (m *QueryRequiredDepositRequest) String() string           { return mustJSONString(m) }
func (m *QueryRequiredDepositRequest) ProtoMessage()            {}
func (m *QueryRequiredDepositRequest) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *QueryRequiredDepositRequest) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *QueryRequiredDepositRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryRequiredDepositRequest) Size() int                 { return encodedSize(m) }
func (m *QueryRequiredDepositRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryRequiredDepositRequest) XXX_MessageName() string {
	return "loom.jobs.v1.QueryRequiredDepositRequest"
}

func (m *QueryRequiredDepositResponse) Reset()                   { *m = QueryRequiredDepositResponse{} }
func (m *QueryRequiredDepositResponse) String() string           { return mustJSONString(m) }
func (m *QueryRequiredDepositResponse) ProtoMessage()            {}
func (m *QueryRequiredDepositResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *QueryRequiredDepositResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *QueryRequiredDepositResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryRequiredDepositResponse) Size() int                 { return encodedSize(m) }
func (m *QueryRequiredDepositResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryRequiredDepositResponse) XXX_MessageName() string {
	return "loom.jobs.v1.QueryRequiredDepositResponse"
}

func (m *QueryPriceFeedRequest) Reset()                   { *m = QueryPriceFeedRequest{} }
func (m *QueryPriceFeedRequest) String() string           { return mustJSONString(m) }
func (m *QueryPriceFeedRequest) ProtoMessage()            {}
func (m *QueryPriceFeedRequest) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *QueryPriceFeedRequest) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *QueryPriceFeedRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryPriceFeedRequest) Size() int                 { return encodedSize(m) }
func (m *QueryPriceFeedRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPriceFeedRequest) XXX_MessageName() string {
	return "loom.jobs.v1.QueryPriceFeedRequest"
}

func (m *QueryPriceFeedResponse) Reset()                   { *m = QueryPriceFeedResponse{} }
func (m *QueryPriceFeedResponse) String() string           { return mustJSONString(m) }
func (m *QueryPriceFeedResponse) ProtoMessage()            {}
func (m *QueryPriceFeedResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *QueryPriceFeedResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *QueryPriceFeedResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryPriceFeedResponse) Size() int                 { return encodedSize(m) }
func (m *QueryPriceFeedResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPriceFeedResponse) XXX_MessageName() string {
	return "loom.jobs.v1.QueryPriceFeedResponse"
}
