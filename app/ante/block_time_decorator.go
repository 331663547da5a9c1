package ante

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MaxClockSkew bounds how far ahead of the local clock a proposed block
// time may run. Job timestamps and oracle feed ages are derived from block
// time, so a runaway proposer clock would distort escrow quotes and
// staleness checks chain-wide.
const MaxClockSkew = 30 * time.Second

// BlockTimeDecorator rejects transactions in blocks whose timestamp runs
// ahead of the local clock by more than MaxClockSkew. Past block times
// always pass: nodes replaying history or catching up see timestamps far
// behind their own clock.
type BlockTimeDecorator struct{}

// NewBlockTimeDecorator creates a new BlockTimeDecorator
func NewBlockTimeDecorator() BlockTimeDecorator {
	return BlockTimeDecorator{}
}

// AnteHandle validates the block time before processing transactions
func (btd BlockTimeDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if simulate {
		return next(ctx, tx, simulate)
	}

	// Genesis carries whatever time the genesis file states.
	if ctx.BlockHeight() <= 1 {
		return next(ctx, tx, simulate)
	}

	if err := CheckClockSkew(ctx.BlockTime(), time.Now()); err != nil {
		return ctx, sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}

	return next(ctx, tx, simulate)
}

// CheckClockSkew errors when blockTime runs ahead of localTime by more
// than MaxClockSkew.
func CheckClockSkew(blockTime, localTime time.Time) error {
	if blockTime.After(localTime.Add(MaxClockSkew)) {
		return fmt.Errorf(
			"block time %s runs ahead of local clock %s by more than %s",
			blockTime, localTime, MaxClockSkew,
		)
	}
	return nil
}
