package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/jobs/types"
)

// InitGenesis initializes the jobs module state from genesis
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, job := range genState.Jobs {
		k.setJob(ctx, job, nil)
	}

	k.SetNextJobID(ctx, genState.NextJobId)
}

// ExportGenesis exports the jobs module state to genesis
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	return &types.GenesisState{
		Params:    params,
		Jobs:      k.GetAllJobs(ctx),
		NextJobId: k.GetNextJobID(ctx),
	}
}
