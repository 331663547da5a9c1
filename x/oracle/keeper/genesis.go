package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/oracle/types"
)

// InitGenesis initializes the oracle module state from a genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, feed := range genState.Feeds {
		if err := k.SetPriceFeed(ctx, feed); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the oracle module state as a genesis state
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	return &types.GenesisState{
		Params: params,
		Feeds:  k.GetAllPriceFeeds(ctx),
	}
}
