package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/jobs/types"
)

// RegisterInvariants registers the jobs module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-balance", EscrowBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "job-records", JobRecordsInvariant(k))
}

// EscrowBalanceInvariant checks that the module account holds exactly the
// sum of locked values over all jobs that have not been paid out
func EscrowBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expected := math.ZeroInt()
		k.IterateJobs(ctx, func(job types.Job) bool {
			if job.IsLive() {
				expected = expected.Add(job.LockedValue.Amount)
			}
			return false
		})

		balance := k.GetEscrowBalance(ctx)
		if !balance.Amount.Equal(expected) {
			return sdk.FormatInvariant(types.ModuleName, "escrow-balance",
				"escrow account holds "+balance.String()+", live jobs lock "+expected.String()), true
		}

		return sdk.FormatInvariant(types.ModuleName, "escrow-balance", "escrow balance matches locked value"), false
	}
}

// JobRecordsInvariant checks structural consistency of the job ledger
func JobRecordsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		nextID := k.GetNextJobID(ctx)

		broken := ""
		k.IterateJobs(ctx, func(job types.Job) bool {
			if job.Id >= nextID {
				broken = sdk.FormatInvariant(types.ModuleName, "job-records",
					"job id exceeds counter")
				return true
			}
			if err := job.Validate(); err != nil {
				broken = sdk.FormatInvariant(types.ModuleName, "job-records",
					"invalid job record: "+err.Error())
				return true
			}
			return false
		})

		if broken != "" {
			return broken, true
		}

		return sdk.FormatInvariant(types.ModuleName, "job-records", "job records are consistent"), false
	}
}
