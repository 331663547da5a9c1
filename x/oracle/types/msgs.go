package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgSubmitPrice  = "submit_price"
	TypeMsgUpdateParams = "update_params"
)

var (
	_ sdk.Msg = &MsgSubmitPrice{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// Route returns the message route for MsgSubmitPrice
func (msg *MsgSubmitPrice) Route() string { return RouterKey }

// Type returns the message type for MsgSubmitPrice
func (msg *MsgSubmitPrice) Type() string { return TypeMsgSubmitPrice }

// GetSigners returns the expected signers for MsgSubmitPrice
func (msg *MsgSubmitPrice) GetSigners() []sdk.AccAddress {
	validator, _ := sdk.AccAddressFromBech32(msg.Validator)
	return []sdk.AccAddress{validator}
}

// GetSignBytes returns the canonical sign bytes for MsgSubmitPrice
func (msg *MsgSubmitPrice) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic performs basic validation of MsgSubmitPrice
func (msg *MsgSubmitPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Validator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid validator address: %v", err)
	}

	if msg.Asset == "" {
		return ErrInvalidAsset.Wrap("asset cannot be empty")
	}

	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return ErrInvalidPrice.Wrap("price must be positive")
	}

	if msg.Decimals > 18 {
		return ErrInvalidPrice.Wrap("decimals must be at most 18")
	}

	return nil
}

// Route returns the message route for MsgUpdateParams
func (msg *MsgUpdateParams) Route() string { return RouterKey }

// Type returns the message type for MsgUpdateParams
func (msg *MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners returns the expected signers for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes returns the canonical sign bytes for MsgUpdateParams
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic performs basic validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}

	return msg.Params.Validate()
}
