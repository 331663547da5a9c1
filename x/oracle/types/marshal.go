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

func (m *PriceFeed) Reset()                                       { *m = PriceFeed{} }
func (m *PriceFeed) String() string                               { return mustJSONString(m) }
func (m *PriceFeed) ProtoMessage()                                {}
func (m *PriceFeed) Marshal() ([]byte, error)                     { return json.Marshal(m) }
func (m *PriceFeed) MarshalTo(dst []byte) (int, error)            { return marshalTo(m, dst) }
func (m *PriceFeed) MarshalToSizedBuffer(dst []byte) (int, error) { return marshalToSized(m, dst) }
func (m *PriceFeed) Size() int                                    { return encodedSize(m) }
func (m *PriceFeed) Unmarshal(bz []byte) error                    { return json.Unmarshal(bz, m) }
func (m *PriceFeed) XXX_MessageName() string                      { return "loom.oracle.v1.PriceFeed" }

func (m *Params) Reset()                                       { *m = Params{} }
func (m *Params) String() string                               { return mustJSONString(m) }
func (m *Params) ProtoMessage()                                {}
func (m *Params) Marshal() ([]byte, error)                     { return json.Marshal(m) }
func (m *Params) MarshalTo(dst []byte) (int, error)            { return marshalTo(m, dst) }
func (m *Params) MarshalToSizedBuffer(dst []byte) (int, error) { return marshalToSized(m, dst) }
func (m *Params) Size() int                                    { return encodedSize(m) }
func (m *Params) Unmarshal(bz []byte) error                    { return json.Unmarshal(bz, m) }
func (m *Params) XXX_MessageName() string                      { return "loom.oracle.v1.Params" }

func (m *GenesisState) Reset()                                       { *m = GenesisState{} }
func (m *GenesisState) String() string                               { return mustJSONString(m) }
func (m *GenesisState) ProtoMessage()                                {}
func (m *GenesisState) Marshal() ([]byte, error)                     { return json.Marshal(m) }
func (m *GenesisState) MarshalTo(dst []byte) (int, error)            { return marshalTo(m, dst) }
func (m *GenesisState) MarshalToSizedBuffer(dst []byte) (int, error) { return marshalToSized(m, dst) }
func (m *GenesisState) Size() int                                    { return encodedSize(m) }
func (m *GenesisState) Unmarshal(bz []byte) error                    { return json.Unmarshal(bz, m) }
func (m *GenesisState) XXX_MessageName() string                      { return "loom.oracle.v1.GenesisState" }

func (m *MsgSubmitPrice) Reset()                            { *m = MsgSubmitPrice{} }
func (m *MsgSubmitPrice) String() string                    { return mustJSONString(m) }
func (m *MsgSubmitPrice) ProtoMessage()                     {}
func (m *MsgSubmitPrice) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *MsgSubmitPrice) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *MsgSubmitPrice) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgSubmitPrice) Size() int                 { return encodedSize(m) }
func (m *MsgSubmitPrice) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitPrice) XXX_MessageName() string   { return "loom.oracle.v1.MsgSubmitPrice" }

func (m *MsgSubmitPriceResponse) Reset()                   { *m = MsgSubmitPriceResponse{} }
func (m *MsgSubmitPriceResponse) String() string           { return mustJSONString(m) }
func (m *MsgSubmitPriceResponse) ProtoMessage()            {}
func (m *MsgSubmitPriceResponse) Marshal() ([]byte, error) { return json.Marshal(m) }
func (m *MsgSubmitPriceResponse) MarshalTo(dst []byte) (int, error) {
	return marshalTo(m, dst)
}
func (m *MsgSubmitPriceResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *MsgSubmitPriceResponse) Size() int                 { return encodedSize(m) }
func (m *MsgSubmitPriceResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *MsgSubmitPriceResponse) XXX_MessageName() string {
	return "loom.oracle.v1.MsgSubmitPriceResponse"
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
func (m *MsgUpdateParams) XXX_MessageName() string   { return "loom.oracle.v1.MsgUpdateParams" }

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
	return "loom.oracle.v1.MsgUpdateParamsResponse"
}

func (m *QueryPriceRequest) Reset()                            { *m = QueryPriceRequest{} }
func (m *QueryPriceRequest) String() string                    { return mustJSONString(m) }
func (m *QueryPriceRequest) ProtoMessage()                     {}
func (m *QueryPriceRequest) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryPriceRequest) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryPriceRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryPriceRequest) Size() int                 { return encodedSize(m) }
func (m *QueryPriceRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPriceRequest) XXX_MessageName() string   { return "loom.oracle.v1.QueryPriceRequest" }

func (m *QueryPriceResponse) Reset()                            { *m = QueryPriceResponse{} }
func (m *QueryPriceResponse) String() string                    { return mustJSONString(m) }
func (m *QueryPriceResponse) ProtoMessage()                     {}
func (m *QueryPriceResponse) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryPriceResponse) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryPriceResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryPriceResponse) Size() int                 { return encodedSize(m) }
func (m *QueryPriceResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPriceResponse) XXX_MessageName() string   { return "loom.oracle.v1.QueryPriceResponse" }

func (m *QueryPricesRequest) Reset()                            { *m = QueryPricesRequest{} }
func (m *QueryPricesRequest) String() string                    { return mustJSONString(m) }
func (m *QueryPricesRequest) ProtoMessage()                     {}
func (m *QueryPricesRequest) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryPricesRequest) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryPricesRequest) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryPricesRequest) Size() int                 { return encodedSize(m) }
func (m *QueryPricesRequest) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPricesRequest) XXX_MessageName() string   { return "loom.oracle.v1.QueryPricesRequest" }

func (m *QueryPricesResponse) Reset()                            { *m = QueryPricesResponse{} }
func (m *QueryPricesResponse) String() string                    { return mustJSONString(m) }
func (m *QueryPricesResponse) ProtoMessage()                     {}
func (m *QueryPricesResponse) Marshal() ([]byte, error)          { return json.Marshal(m) }
func (m *QueryPricesResponse) MarshalTo(dst []byte) (int, error) { return marshalTo(m, dst) }
func (m *QueryPricesResponse) MarshalToSizedBuffer(dst []byte) (int, error) {
	return marshalToSized(m, dst)
}
func (m *QueryPricesResponse) Size() int                 { return encodedSize(m) }
func (m *QueryPricesResponse) Unmarshal(bz []byte) error { return json.Unmarshal(bz, m) }
func (m *QueryPricesResponse) XXX_MessageName() string   { return "loom.oracle.v1.QueryPricesResponse" }

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
func (m *QueryParamsRequest) XXX_MessageName() string   { return "loom.oracle.v1.QueryParamsRequest" }

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
func (m *QueryParamsResponse) XXX_MessageName() string   { return "loom.oracle.v1.QueryParamsResponse" }
