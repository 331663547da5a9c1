package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/jobs/types"
)

// IsRequester reports whether addr posted the job
func (k Keeper) IsRequester(job types.Job, addr sdk.AccAddress) bool {
	return job.Requester == addr.String()
}

// IsAssignedProvider reports whether addr is the provider bound to the job.
// Always false for open jobs, which have no provider.
func (k Keeper) IsAssignedProvider(job types.Job, addr sdk.AccAddress) bool {
	return job.Provider != "" && job.Provider == addr.String()
}

// ValidateAuthority checks a message authority against the module authority
func (k Keeper) ValidateAuthority(authority string) error {
	if k.authority != authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}
	return nil
}
