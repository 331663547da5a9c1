package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/oracle/types"
)

// GetPriceFeed returns the stored price feed for an asset
func (k Keeper) GetPriceFeed(ctx context.Context, asset string) (types.PriceFeed, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PriceFeedKey(asset))
	if bz == nil {
		return types.PriceFeed{}, types.ErrPriceUnavailable.Wrapf("asset %s", asset)
	}

	var feed types.PriceFeed
	if err := k.cdc.Unmarshal(bz, &feed); err != nil {
		return types.PriceFeed{}, err
	}
	return feed, nil
}

// SetPriceFeed stores a price feed keyed by asset
func (k Keeper) SetPriceFeed(ctx context.Context, feed types.PriceFeed) error {
	if err := feed.Validate(); err != nil {
		return types.ErrInvalidPrice.Wrap(err.Error())
	}

	bz, err := k.cdc.Marshal(&feed)
	if err != nil {
		return err
	}

	k.getStore(ctx).Set(types.PriceFeedKey(feed.Asset), bz)
	return nil
}

// CurrentPrice returns the latest price and fixed-point scale for an asset.
// Returns ErrPriceUnavailable when no feed has been stored.
func (k Keeper) CurrentPrice(ctx sdk.Context, asset string) (math.Int, uint32, error) {
	feed, err := k.GetPriceFeed(ctx, asset)
	if err != nil {
		return math.Int{}, 0, err
	}

	if !feed.Price.IsPositive() {
		return math.Int{}, 0, types.ErrInvalidPrice.Wrapf("asset %s", asset)
	}

	return feed.Price, feed.Decimals, nil
}

// IteratePriceFeeds walks all stored price feeds. The callback returns true
// to stop early.
func (k Keeper) IteratePriceFeeds(ctx context.Context, cb func(feed types.PriceFeed) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PriceFeedKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var feed types.PriceFeed
		if err := k.cdc.Unmarshal(iterator.Value(), &feed); err != nil {
			continue
		}
		if cb(feed) {
			break
		}
	}
}

// GetAllPriceFeeds returns every stored price feed
func (k Keeper) GetAllPriceFeeds(ctx context.Context) []types.PriceFeed {
	feeds := []types.PriceFeed{}
	k.IteratePriceFeeds(ctx, func(feed types.PriceFeed) bool {
		feeds = append(feeds, feed)
		return false
	})
	return feeds
}

// SubmitPrice records a validator's price observation for an asset. The
// submitter must be a bonded validator; its operator address shares key
// material with the account address.
func (k Keeper) SubmitPrice(ctx sdk.Context, validator sdk.AccAddress, asset string, price math.Int, decimals uint32) (types.PriceFeed, error) {
	if price.IsNil() || !price.IsPositive() {
		return types.PriceFeed{}, types.ErrInvalidPrice.Wrap("price must be positive")
	}

	val, err := k.stakingKeeper.GetValidator(ctx, sdk.ValAddress(validator))
	if err != nil {
		return types.PriceFeed{}, types.ErrUnknownValidator.Wrapf("address %s", validator.String())
	}

	if !val.IsBonded() {
		return types.PriceFeed{}, types.ErrValidatorNotBonded.Wrapf("address %s", validator.String())
	}

	if decimals == 0 {
		params, err := k.GetParams(ctx)
		if err != nil {
			return types.PriceFeed{}, err
		}
		decimals = params.DefaultDecimals
	}

	feed := types.PriceFeed{
		Asset:     asset,
		Price:     price,
		Decimals:  decimals,
		Validator: validator.String(),
		UpdatedAt: ctx.BlockTime(),
		Height:    ctx.BlockHeight(),
	}

	if err := k.SetPriceFeed(ctx, feed); err != nil {
		return types.PriceFeed{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceUpdated,
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
			sdk.NewAttribute(types.AttributeKeyDecimals, strconv.FormatUint(uint64(decimals), 10)),
			sdk.NewAttribute(types.AttributeKeyValidator, validator.String()),
		),
	)

	k.Logger(ctx).Info("price updated",
		"asset", asset,
		"price", price.String(),
		"decimals", decimals,
		"validator", validator.String(),
	)

	return feed, nil
}
