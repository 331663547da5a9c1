package ante

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MemoLimitDecorator bounds memo size before any further tx processing.
// Job and oracle messages carry their payloads in dedicated fields, so a
// long memo is only dead weight in every archive node.
type MemoLimitDecorator struct {
	limit int
}

// NewMemoLimitDecorator returns a decorator that rejects memos over limit bytes.
func NewMemoLimitDecorator(limit int) MemoLimitDecorator {
	return MemoLimitDecorator{limit: limit}
}

// AnteHandle implements sdk.AnteDecorator.
func (d MemoLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	withMemo, ok := tx.(sdk.TxWithMemo)
	if !ok {
		return next(ctx, tx, simulate)
	}

	if memo := withMemo.GetMemo(); len(memo) > d.limit {
		return ctx, errorsmod.Wrapf(sdkerrors.ErrMemoTooLarge, "memo is %d bytes, limit %d", len(memo), d.limit)
	}

	return next(ctx, tx, simulate)
}
