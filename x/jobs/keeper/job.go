package keeper

import (
	"encoding/binary"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/jobs/types"
)

// GetJob returns the job with the given id
func (k Keeper) GetJob(ctx sdk.Context, id uint64) (types.Job, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.JobKey(id))
	if bz == nil {
		return types.Job{}, types.ErrJobNotFound.Wrapf("job %d", id)
	}

	var job types.Job
	if err := k.cdc.Unmarshal(bz, &job); err != nil {
		return types.Job{}, err
	}
	return job, nil
}

// HasJob reports whether a job with the given id exists
func (k Keeper) HasJob(ctx sdk.Context, id uint64) bool {
	return k.getStore(ctx).Has(types.JobKey(id))
}

// setJob persists a job record and its secondary indexes.
// Index maintenance is infallible store writes; callers order it after all
// fallible effects.
func (k Keeper) setJob(ctx sdk.Context, job types.Job, prev *types.Job) {
	store := k.getStore(ctx)

	bz := k.cdc.MustMarshal(&job)
	store.Set(types.JobKey(job.Id), bz)

	if prev == nil {
		store.Set(types.JobByRequesterKey(job.Requester, job.Id), []byte{1})
	} else if prev.Status != job.Status {
		store.Delete(types.JobByStatusKey(prev.Status, job.Id))
	}
	store.Set(types.JobByStatusKey(job.Status, job.Id), []byte{1})

	if job.Provider != "" && (prev == nil || prev.Provider == "") {
		store.Set(types.JobByProviderKey(job.Provider, job.Id), []byte{1})
	}
}

// nextJobID returns the next job id and advances the counter. Ids are
// monotonic and start at 1.
func (k Keeper) nextJobID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)

	id := uint64(1)
	if bz := store.Get(types.NextJobIDKey); bz != nil {
		id = binary.BigEndian.Uint64(bz)
	}

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id+1)
	store.Set(types.NextJobIDKey, bz)

	return id
}

// GetNextJobID reads the counter without advancing it
func (k Keeper) GetNextJobID(ctx sdk.Context) uint64 {
	bz := k.getStore(ctx).Get(types.NextJobIDKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextJobID overwrites the job id counter, used at genesis
func (k Keeper) SetNextJobID(ctx sdk.Context, id uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	k.getStore(ctx).Set(types.NextJobIDKey, bz)
}

// IterateJobs visits every job in id order until the callback returns true
func (k Keeper) IterateJobs(ctx sdk.Context, cb func(job types.Job) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.JobKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var job types.Job
		k.cdc.MustUnmarshal(iterator.Value(), &job)
		if cb(job) {
			break
		}
	}
}

// GetAllJobs returns every job in the store
func (k Keeper) GetAllJobs(ctx sdk.Context) []types.Job {
	jobs := []types.Job{}
	k.IterateJobs(ctx, func(job types.Job) bool {
		jobs = append(jobs, job)
		return false
	})
	return jobs
}

// GetJobsByStatus returns all jobs currently in the given status
func (k Keeper) GetJobsByStatus(ctx sdk.Context, status types.JobStatus) []types.Job {
	return k.jobsByIndex(ctx, types.JobByStatusIteratorKey(status))
}

// GetJobsByRequester returns all jobs posted by the given address
func (k Keeper) GetJobsByRequester(ctx sdk.Context, requester sdk.AccAddress) []types.Job {
	return k.jobsByIndex(ctx, types.JobByRequesterIteratorKey(requester.String()))
}

// GetJobsByProvider returns all jobs ever assigned to the given address
func (k Keeper) GetJobsByProvider(ctx sdk.Context, provider sdk.AccAddress) []types.Job {
	return k.jobsByIndex(ctx, types.JobByProviderIteratorKey(provider.String()))
}

func (k Keeper) jobsByIndex(ctx sdk.Context, prefix []byte) []types.Job {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	jobs := []types.Job{}
	for ; iterator.Valid(); iterator.Next() {
		id := types.JobIDFromIndexKey(iterator.Key())
		job, err := k.GetJob(ctx, id)
		if err != nil {
			// index entry without a record is a store corruption bug
			k.Logger(ctx).Error("dangling job index entry", "job_id", id, "error", err)
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs
}
