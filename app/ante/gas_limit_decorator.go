package ante

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	jobstypes "github.com/loom-chain/loom/x/jobs/types"
	oracletypes "github.com/loom-chain/loom/x/oracle/types"
)

// Gas limits for different operation types to prevent exhaustion attacks
const (
	// Jobs operations
	MaxGasPerJobPost        uint64 = 250_000
	MaxGasPerJobAccept      uint64 = 100_000
	MaxGasPerResultSubmit   uint64 = 150_000
	MaxGasPerPaymentRelease uint64 = 200_000

	// Oracle operations
	MaxGasPerPriceFeed uint64 = 100_000

	// Governance parameter updates
	MaxGasPerParamUpdate uint64 = 150_000

	// General limits
	MaxGasPerTx      uint64 = 10_000_000 // Maximum gas per transaction
	MaxGasPerMessage uint64 = 500_000    // Maximum gas per message in tx
	MaxMessagesPerTx int    = 10         // Maximum messages per transaction
)

// GasLimitDecorator enforces per-operation gas limits to prevent exhaustion attacks
type GasLimitDecorator struct{}

// NewGasLimitDecorator creates a new GasLimitDecorator
func NewGasLimitDecorator() GasLimitDecorator {
	return GasLimitDecorator{}
}

// AnteHandle enforces gas limits on transactions and individual messages
func (gld GasLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	msgs := tx.GetMsgs()

	if len(msgs) > MaxMessagesPerTx {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction contains too many messages: %d > %d",
			len(msgs), MaxMessagesPerTx,
		)
	}

	for i, msg := range msgs {
		requiredGas := getRequiredGasForMessage(msg)

		if requiredGas > MaxGasPerMessage {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d requires too much gas: %d > %d",
				i, requiredGas, MaxGasPerMessage,
			)
		}

		if err := validateMessageGasUsage(msg); err != nil {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d failed gas validation: %v", i, err,
			)
		}
	}

	totalGasRequired := ctx.GasMeter().Limit()
	if totalGasRequired > MaxGasPerTx && !simulate {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction gas limit too high: %d > %d",
			totalGasRequired, MaxGasPerTx,
		)
	}

	newCtx, err := next(ctx, tx, simulate)
	if err != nil {
		return newCtx, err
	}

	gasUsed := newCtx.GasMeter().GasConsumed()
	if gasUsed > MaxGasPerTx/2 {
		ctx.Logger().Info("High gas consumption detected",
			"gas_used", gasUsed,
			"num_messages", len(msgs),
			"tx_hash", fmt.Sprintf("%X", ctx.TxBytes()),
		)
	}

	return newCtx, nil
}

// getRequiredGasForMessage returns the gas budget for a message type
func getRequiredGasForMessage(msg sdk.Msg) uint64 {
	switch msg.(type) {
	case *jobstypes.MsgPostJob:
		return MaxGasPerJobPost
	case *jobstypes.MsgAcceptJob:
		return MaxGasPerJobAccept
	case *jobstypes.MsgSubmitResult:
		return MaxGasPerResultSubmit
	case *jobstypes.MsgApproveAndPay:
		return MaxGasPerPaymentRelease
	case *oracletypes.MsgSubmitPrice:
		return MaxGasPerPriceFeed
	case *jobstypes.MsgUpdateParams, *oracletypes.MsgUpdateParams:
		return MaxGasPerParamUpdate
	default:
		// Unknown message types get the conservative ceiling
		return MaxGasPerMessage
	}
}

// validateMessageGasUsage performs stateless pre-validation of a message
func validateMessageGasUsage(msg sdk.Msg) error {
	type validateBasicMsg interface {
		ValidateBasic() error
	}

	if vb, ok := msg.(validateBasicMsg); ok {
		if err := vb.ValidateBasic(); err != nil {
			return fmt.Errorf("message validation failed: %w", err)
		}
	}

	return nil
}
