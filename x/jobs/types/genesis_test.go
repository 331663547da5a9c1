package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/x/jobs/types"
)

func TestGenesisState_Validate(t *testing.T) {
	job := types.Job{
		Id:          1,
		Requester:   testRequester,
		DataUrl:     "ipfs://data",
		ScriptUrl:   "ipfs://script",
		RewardUsd:   math.NewInt(10_0000_0000),
		LockedValue: sdk.NewInt64Coin("uloom", 3334),
		Status:      types.JobStatusOpen,
	}

	tests := []struct {
		name     string
		genState types.GenesisState
		wantErr  bool
	}{
		{
			name:     "default",
			genState: *types.DefaultGenesis(),
		},
		{
			name: "with job",
			genState: types.GenesisState{
				Params:    types.DefaultParams(),
				Jobs:      []types.Job{job},
				NextJobId: 2,
			},
		},
		{
			name: "zero next id",
			genState: types.GenesisState{
				Params:    types.DefaultParams(),
				NextJobId: 0,
			},
			wantErr: true,
		},
		{
			name: "job id at counter",
			genState: types.GenesisState{
				Params:    types.DefaultParams(),
				Jobs:      []types.Job{job},
				NextJobId: 1,
			},
			wantErr: true,
		},
		{
			name: "duplicate job ids",
			genState: types.GenesisState{
				Params:    types.DefaultParams(),
				Jobs:      []types.Job{job, job},
				NextJobId: 5,
			},
			wantErr: true,
		},
		{
			name: "locked denom mismatch",
			genState: types.GenesisState{
				Params: types.DefaultParams(),
				Jobs: []types.Job{{
					Id:          1,
					Requester:   testRequester,
					DataUrl:     "ipfs://data",
					ScriptUrl:   "ipfs://script",
					RewardUsd:   math.NewInt(10_0000_0000),
					LockedValue: sdk.NewInt64Coin("uatom", 3334),
					Status:      types.JobStatusOpen,
				}},
				NextJobId: 2,
			},
			wantErr: true,
		},
		{
			name: "invalid params",
			genState: types.GenesisState{
				Params: types.Params{
					BondDenom:    "uloom",
					PriceAsset:   "",
					MaxUrlLength: 512,
					MinRewardUsd: math.NewInt(1_000_000),
				},
				NextJobId: 1,
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
