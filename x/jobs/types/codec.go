package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the necessary x/jobs interfaces and
// concrete types on the provided LegacyAmino codec. These types are used
// for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgPostJob{}, "loom/jobs/MsgPostJob", nil)
	cdc.RegisterConcrete(&MsgAcceptJob{}, "loom/jobs/MsgAcceptJob", nil)
	cdc.RegisterConcrete(&MsgSubmitResult{}, "loom/jobs/MsgSubmitResult", nil)
	cdc.RegisterConcrete(&MsgApproveAndPay{}, "loom/jobs/MsgApproveAndPay", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "loom/jobs/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/jobs interface types with the interface
// registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgPostJob{},
		&MsgAcceptJob{},
		&MsgSubmitResult{},
		&MsgApproveAndPay{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgPostJobResponse{},
		&MsgAcceptJobResponse{},
		&MsgSubmitResultResponse{},
		&MsgApproveAndPayResponse{},
		&MsgUpdateParamsResponse{},
	)
}

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc is used for amino JSON sign bytes
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterLegacyAminoCodec(amino)
}
