package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgPostJob       = "post_job"
	TypeMsgAcceptJob     = "accept_job"
	TypeMsgSubmitResult  = "submit_result"
	TypeMsgApproveAndPay = "approve_and_pay"
	TypeMsgUpdateParams  = "update_params"
)

var (
	_ sdk.Msg = &MsgPostJob{}
	_ sdk.Msg = &MsgAcceptJob{}
	_ sdk.Msg = &MsgSubmitResult{}
	_ sdk.Msg = &MsgApproveAndPay{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// Route returns the message route for MsgPostJob
func (msg *MsgPostJob) Route() string { return RouterKey }

// Type returns the message type for MsgPostJob
func (msg *MsgPostJob) Type() string { return TypeMsgPostJob }

// GetSigners returns the expected signers for MsgPostJob
func (msg *MsgPostJob) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSignBytes returns the canonical sign bytes for MsgPostJob
func (msg *MsgPostJob) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic performs basic validation of MsgPostJob
func (msg *MsgPostJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrInvalidAddress.Wrapf("invalid requester address: %v", err)
	}

	if msg.DataUrl == "" {
		return ErrInvalidRequest.Wrap("data url cannot be empty")
	}

	if msg.ScriptUrl == "" {
		return ErrInvalidRequest.Wrap("script url cannot be empty")
	}

	if msg.RewardUsd.IsNil() || !msg.RewardUsd.IsPositive() {
		return ErrInvalidReward.Wrap("reward usd must be positive")
	}

	if err := msg.Deposit.Validate(); err != nil {
		return ErrInvalidRequest.Wrapf("invalid deposit: %v", err)
	}

	if msg.Deposit.IsZero() {
		return ErrInvalidRequest.Wrap("deposit cannot be zero")
	}

	return nil
}

// Route returns the message route for MsgAcceptJob
func (msg *MsgAcceptJob) Route() string { return RouterKey }

// Type returns the message type for MsgAcceptJob
func (msg *MsgAcceptJob) Type() string { return TypeMsgAcceptJob }

// GetSigners returns the expected signers for MsgAcceptJob
func (msg *MsgAcceptJob) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSignBytes returns the canonical sign bytes for MsgAcceptJob
func (msg *MsgAcceptJob) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic performs basic validation of MsgAcceptJob
func (msg *MsgAcceptJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}

	if msg.JobId == 0 {
		return ErrInvalidRequest.Wrap("job id cannot be zero")
	}

	return nil
}

// Route returns the message route for MsgSubmitResult
func (msg *MsgSubmitResult) Route() string { return RouterKey }

// Type returns the message type for MsgSubmitResult
func (msg *MsgSubmitResult) Type() string { return TypeMsgSubmitResult }

// GetSigners returns the expected signers for MsgSubmitResult
func (msg *MsgSubmitResult) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSignBytes returns the canonical sign bytes for MsgSubmitResult
func (msg *MsgSubmitResult) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic performs basic validation of MsgSubmitResult
func (msg *MsgSubmitResult) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}

	if msg.JobId == 0 {
		return ErrInvalidRequest.Wrap("job id cannot be zero")
	}

	if msg.ResultUrl == "" {
		return ErrInvalidRequest.Wrap("result url cannot be empty")
	}

	return nil
}

// Route returns the message route for MsgApproveAndPay
func (msg *MsgApproveAndPay) Route() string { return RouterKey }

// Type returns the message type for MsgApproveAndPay
func (msg *MsgApproveAndPay) Type() string { return TypeMsgApproveAndPay }

// GetSigners returns the expected signers for MsgApproveAndPay
func (msg *MsgApproveAndPay) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSignBytes returns the canonical sign bytes for MsgApproveAndPay
func (msg *MsgApproveAndPay) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic performs basic validation of MsgApproveAndPay
func (msg *MsgApproveAndPay) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrInvalidAddress.Wrapf("invalid requester address: %v", err)
	}

	if msg.JobId == 0 {
		return ErrInvalidRequest.Wrap("job id cannot be zero")
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
