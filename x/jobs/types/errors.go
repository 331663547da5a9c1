package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Jobs module sentinel errors

var (
	// Validation errors
	ErrInvalidRequest = sdkerrors.Register(ModuleName, 2, "invalid job request")
	ErrInvalidAddress = sdkerrors.Register(ModuleName, 3, "invalid address")
	ErrInvalidReward  = sdkerrors.Register(ModuleName, 4, "invalid reward amount")

	// Lifecycle errors
	ErrJobNotFound  = sdkerrors.Register(ModuleName, 10, "job not found")
	ErrJobNotOpen   = sdkerrors.Register(ModuleName, 11, "job is not open")
	ErrInvalidState = sdkerrors.Register(ModuleName, 12, "invalid job state for this operation")

	// Escrow errors
	ErrInsufficientDeposit = sdkerrors.Register(ModuleName, 20, "insufficient deposit for this usd value")
	ErrTransferFailed      = sdkerrors.Register(ModuleName, 21, "escrow transfer failed")

	// Oracle errors
	ErrOracleUnavailable = sdkerrors.Register(ModuleName, 30, "price oracle unavailable")
	ErrInvalidPrice      = sdkerrors.Register(ModuleName, 31, "oracle returned an invalid price")

	// Access errors
	ErrUnauthorized = sdkerrors.Register(ModuleName, 40, "unauthorized operation")
)
