package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/jobs/types"
)

// RequiredDeposit quotes the native collateral for a usd reward at the
// current oracle price.
//
// With price p at d decimals (USD per whole token) and rewardUsd at 8
// decimals, the exact conversion to micro-denom units is
// rewardUsd * 10^d * 10^6 / (10^8 * p). The division rounds up so the
// escrow is never worth less than the usd reward.
func (k Keeper) RequiredDeposit(ctx sdk.Context, rewardUsd math.Int) (sdk.Coin, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}

	if rewardUsd.IsNil() || !rewardUsd.IsPositive() {
		return sdk.Coin{}, types.ErrInvalidReward.Wrap("reward usd must be positive")
	}

	price, decimals, err := k.oracleKeeper.CurrentPrice(ctx, params.PriceAsset)
	if err != nil {
		return sdk.Coin{}, types.ErrOracleUnavailable.Wrapf("asset %s: %v", params.PriceAsset, err)
	}

	if price.IsNil() || !price.IsPositive() {
		return sdk.Coin{}, types.ErrInvalidPrice.Wrapf("asset %s: price %s", params.PriceAsset, price)
	}

	num := rewardUsd.Mul(math.NewIntWithDecimal(1, int(decimals)+6))
	den := price.Mul(math.NewIntWithDecimal(1, types.UsdDecimals))

	required := num.Quo(den)
	if !required.Mul(den).Equal(num) {
		required = required.AddRaw(1)
	}

	return sdk.NewCoin(params.BondDenom, required), nil
}

// collectDeposit pulls the full attached deposit into the module escrow
// account, then refunds everything above required back to the requester.
// The refund cannot fail for lack of funds: the module account received the
// full deposit one step earlier.
func (k Keeper) collectDeposit(ctx sdk.Context, requester sdk.AccAddress, deposit, required sdk.Coin) error {
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, requester, types.ModuleName, sdk.NewCoins(deposit)); err != nil {
		return types.ErrTransferFailed.Wrapf("deposit collection: %v", err)
	}

	excess := deposit.Sub(required)
	if excess.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, requester, sdk.NewCoins(excess)); err != nil {
			return types.ErrTransferFailed.Wrapf("excess refund: %v", err)
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeDepositRefunded,
				sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
				sdk.NewAttribute(types.AttributeKeyRefund, excess.String()),
			),
		)
	}

	return nil
}

// releaseEscrow pays the locked collateral out of the module account
func (k Keeper) releaseEscrow(ctx sdk.Context, recipient sdk.AccAddress, amount sdk.Coin) error {
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(amount)); err != nil {
		return types.ErrTransferFailed.Wrapf("escrow release: %v", err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEscrowReleased,
			sdk.NewAttribute(types.AttributeKeyProvider, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// GetEscrowAddress returns the module account address holding job collateral
func (k Keeper) GetEscrowAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(types.ModuleName)
}

// GetEscrowBalance returns the module account balance in the bond denom
func (k Keeper) GetEscrowBalance(ctx sdk.Context) sdk.Coin {
	params, err := k.GetParams(ctx)
	if err != nil {
		return sdk.Coin{}
	}
	return k.bankKeeper.GetBalance(ctx, k.GetEscrowAddress(), params.BondDenom)
}
