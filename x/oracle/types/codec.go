package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the necessary x/oracle interfaces and
// concrete types on the provided LegacyAmino codec. These types are used
// for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitPrice{}, "loom/oracle/MsgSubmitPrice", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "loom/oracle/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/oracle interface types with the
// interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSubmitPrice{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgSubmitPriceResponse{},
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
