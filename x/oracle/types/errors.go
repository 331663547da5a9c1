package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oracle module sentinel errors

var (
	ErrInvalidPrice       = sdkerrors.Register(ModuleName, 2, "invalid price")
	ErrInvalidAsset       = sdkerrors.Register(ModuleName, 3, "invalid asset")
	ErrInvalidAddress     = sdkerrors.Register(ModuleName, 4, "invalid address")
	ErrPriceUnavailable   = sdkerrors.Register(ModuleName, 10, "no price available for asset")
	ErrUnknownValidator   = sdkerrors.Register(ModuleName, 20, "unknown validator")
	ErrValidatorNotBonded = sdkerrors.Register(ModuleName, 21, "validator is not bonded")
	ErrUnauthorized       = sdkerrors.Register(ModuleName, 30, "unauthorized")
)
