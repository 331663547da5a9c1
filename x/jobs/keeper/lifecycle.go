package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loom-chain/loom/x/jobs/types"
)

// PostJob creates a new open job, escrowing the oracle-quoted collateral for
// rewardUsd out of the attached deposit and refunding the excess.
// Fallible effects (oracle quote, bank transfers) run before any record is
// written; the record writes themselves cannot fail.
func (k Keeper) PostJob(
	ctx sdk.Context,
	requester sdk.AccAddress,
	dataUrl string,
	scriptUrl string,
	rewardUsd math.Int,
	deposit sdk.Coin,
) (types.Job, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Job{}, err
	}

	if len(dataUrl) == 0 || len(dataUrl) > int(params.MaxUrlLength) {
		return types.Job{}, types.ErrInvalidRequest.Wrapf("data url length must be 1-%d", params.MaxUrlLength)
	}

	if len(scriptUrl) == 0 || len(scriptUrl) > int(params.MaxUrlLength) {
		return types.Job{}, types.ErrInvalidRequest.Wrapf("script url length must be 1-%d", params.MaxUrlLength)
	}

	if rewardUsd.LT(params.MinRewardUsd) {
		return types.Job{}, types.ErrInvalidReward.Wrapf("reward %s below minimum %s", rewardUsd, params.MinRewardUsd)
	}

	if deposit.Denom != params.BondDenom {
		return types.Job{}, types.ErrInvalidRequest.Wrapf("deposit denom %s, expected %s", deposit.Denom, params.BondDenom)
	}

	required, err := k.RequiredDeposit(ctx, rewardUsd)
	if err != nil {
		return types.Job{}, err
	}

	if deposit.Amount.LT(required.Amount) {
		return types.Job{}, types.ErrInsufficientDeposit.Wrapf(
			"required %s, attached %s", required, deposit)
	}

	if err := k.collectDeposit(ctx, requester, deposit, required); err != nil {
		return types.Job{}, err
	}

	now := ctx.BlockTime()
	job := types.Job{
		Id:          k.nextJobID(ctx),
		Requester:   requester.String(),
		DataUrl:     dataUrl,
		ScriptUrl:   scriptUrl,
		RewardUsd:   rewardUsd,
		LockedValue: required,
		Status:      types.JobStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	k.setJob(ctx, job, nil)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeJobPosted,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", job.Id)),
			sdk.NewAttribute(types.AttributeKeyRequester, job.Requester),
			sdk.NewAttribute(types.AttributeKeyRewardUsd, job.RewardUsd.String()),
			sdk.NewAttribute(types.AttributeKeyDataURL, job.DataUrl),
			sdk.NewAttribute(types.AttributeKeyScriptURL, job.ScriptUrl),
		),
		sdk.NewEvent(
			types.EventTypeEscrowLocked,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", job.Id)),
			sdk.NewAttribute(types.AttributeKeyAmount, job.LockedValue.String()),
		),
	})

	k.metrics.JobsPosted.Inc()
	k.metrics.EscrowLocked.Add(gaugeValue(required.Amount))

	k.Logger(ctx).Info("job posted",
		"job_id", job.Id,
		"requester", job.Requester,
		"reward_usd", job.RewardUsd.String(),
		"locked", job.LockedValue.String(),
	)

	return job, nil
}

// AcceptJob assigns an open job to the provider. Arbitration between
// competing providers is first come first served: the first accept in tx
// order consumes the open status, later ones fail the guard.
func (k Keeper) AcceptJob(ctx sdk.Context, provider sdk.AccAddress, jobID uint64) error {
	job, err := k.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if job.Status != types.JobStatusOpen {
		return types.ErrJobNotOpen.Wrapf("job %d is %s", jobID, job.Status)
	}

	prev := job
	job.Provider = provider.String()
	job.Status = types.JobStatusAccepted
	job.UpdatedAt = ctx.BlockTime()
	k.setJob(ctx, job, &prev)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobAccepted,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
		),
	)

	k.metrics.JobsAccepted.Inc()

	return nil
}

// SubmitResult records the result url for an accepted job. Only the
// assigned provider may submit, and only once.
func (k Keeper) SubmitResult(ctx sdk.Context, provider sdk.AccAddress, jobID uint64, resultUrl string) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if len(resultUrl) == 0 || len(resultUrl) > int(params.MaxUrlLength) {
		return types.ErrInvalidRequest.Wrapf("result url length must be 1-%d", params.MaxUrlLength)
	}

	job, err := k.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if !k.IsAssignedProvider(job, provider) {
		return types.ErrUnauthorized.Wrapf("job %d is not assigned to %s", jobID, provider)
	}

	if job.Status != types.JobStatusAccepted {
		return types.ErrInvalidState.Wrapf("job %d is %s, result requires accepted", jobID, job.Status)
	}

	prev := job
	job.ResultUrl = resultUrl
	job.Status = types.JobStatusSubmitted
	job.UpdatedAt = ctx.BlockTime()
	k.setJob(ctx, job, &prev)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResultSubmitted,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
			sdk.NewAttribute(types.AttributeKeyResultURL, resultUrl),
		),
	)

	return nil
}

// ApproveAndPay accepts a submitted result and releases exactly the locked
// collateral to the assigned provider. The record flips to paid before the
// funds move; a failed transfer aborts the tx and rolls the flip back.
func (k Keeper) ApproveAndPay(ctx sdk.Context, requester sdk.AccAddress, jobID uint64) (sdk.Coin, error) {
	job, err := k.GetJob(ctx, jobID)
	if err != nil {
		return sdk.Coin{}, err
	}

	if !k.IsRequester(job, requester) {
		return sdk.Coin{}, types.ErrUnauthorized.Wrapf("job %d was not posted by %s", jobID, requester)
	}

	if job.Status != types.JobStatusSubmitted {
		return sdk.Coin{}, types.ErrInvalidState.Wrapf("job %d is %s, payment requires submitted", jobID, job.Status)
	}

	providerAddr, err := sdk.AccAddressFromBech32(job.Provider)
	if err != nil {
		return sdk.Coin{}, types.ErrInvalidAddress.Wrapf("stored provider address: %v", err)
	}

	prev := job
	job.Status = types.JobStatusPaid
	job.UpdatedAt = ctx.BlockTime()
	k.setJob(ctx, job, &prev)

	if err := k.releaseEscrow(ctx, providerAddr, job.LockedValue); err != nil {
		return sdk.Coin{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobPaid,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
			sdk.NewAttribute(types.AttributeKeyAmount, job.LockedValue.String()),
		),
	)

	k.metrics.JobsPaid.Inc()
	k.metrics.EscrowLocked.Sub(gaugeValue(job.LockedValue.Amount))
	k.metrics.PayoutAmounts.Observe(gaugeValue(job.LockedValue.Amount))

	k.Logger(ctx).Info("job paid",
		"job_id", jobID,
		"provider", job.Provider,
		"amount", job.LockedValue.String(),
	)

	return job.LockedValue, nil
}
