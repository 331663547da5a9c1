package ante

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	jobskeeper "github.com/loom-chain/loom/x/jobs/keeper"
	jobstypes "github.com/loom-chain/loom/x/jobs/types"
)

// JobsDecorator validates jobs module-specific transaction requirements
// before messages reach the message server
type JobsDecorator struct {
	keeper jobskeeper.Keeper
}

// NewJobsDecorator creates a new JobsDecorator
func NewJobsDecorator(keeper jobskeeper.Keeper) JobsDecorator {
	return JobsDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (jd JobsDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	msgs := tx.GetMsgs()
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case *jobstypes.MsgPostJob:
			if err := jd.validatePostJob(ctx, msg); err != nil {
				return ctx, err
			}
		case *jobstypes.MsgAcceptJob:
			if err := jd.validateAcceptJob(ctx, msg); err != nil {
				return ctx, err
			}
		case *jobstypes.MsgSubmitResult:
			if err := jd.validateSubmitResult(ctx, msg); err != nil {
				return ctx, err
			}
		case *jobstypes.MsgApproveAndPay:
			if err := jd.validateApproveAndPay(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validatePostJob rejects deposits in the wrong denom before the oracle
// quote and escrow transfer run
func (jd JobsDecorator) validatePostJob(ctx sdk.Context, msg *jobstypes.MsgPostJob) error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid requester address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(1000, "job post validation")

	params, err := jd.keeper.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get params: %w", err)
	}

	if msg.Deposit.Denom != params.BondDenom {
		return sdkerrors.ErrInvalidRequest.Wrapf("deposit denom %s does not match bond denom %s",
			msg.Deposit.Denom, params.BondDenom)
	}

	if msg.RewardUsd.LT(params.MinRewardUsd) {
		return sdkerrors.ErrInvalidRequest.Wrapf("reward %s is below minimum %s",
			msg.RewardUsd.String(), params.MinRewardUsd.String())
	}

	return nil
}

// validateAcceptJob checks the job is still open to acceptance
func (jd JobsDecorator) validateAcceptJob(ctx sdk.Context, msg *jobstypes.MsgAcceptJob) error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(1000, "job accept validation")

	job, err := jd.keeper.GetJob(ctx, msg.JobId)
	if err != nil {
		return sdkerrors.ErrNotFound.Wrapf("job %d not found", msg.JobId)
	}

	if job.Status != jobstypes.JobStatusOpen {
		return sdkerrors.ErrInvalidRequest.Wrapf("job %d is not open", msg.JobId)
	}

	return nil
}

// validateSubmitResult checks the submitter is the assigned provider of
// an accepted job
func (jd JobsDecorator) validateSubmitResult(ctx sdk.Context, msg *jobstypes.MsgSubmitResult) error {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(1500, "result submission validation")

	job, err := jd.keeper.GetJob(ctx, msg.JobId)
	if err != nil {
		return sdkerrors.ErrNotFound.Wrapf("job %d not found", msg.JobId)
	}

	if !jd.keeper.IsAssignedProvider(job, provider) {
		return sdkerrors.ErrUnauthorized.Wrapf("job %d is not assigned to provider %s", msg.JobId, msg.Provider)
	}

	if job.Status != jobstypes.JobStatusAccepted {
		return sdkerrors.ErrInvalidRequest.Wrapf("job %d is not accepted", msg.JobId)
	}

	return nil
}

// validateApproveAndPay checks the approver posted the job and a result
// has been submitted
func (jd JobsDecorator) validateApproveAndPay(ctx sdk.Context, msg *jobstypes.MsgApproveAndPay) error {
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid requester address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(1500, "payment approval validation")

	job, err := jd.keeper.GetJob(ctx, msg.JobId)
	if err != nil {
		return sdkerrors.ErrNotFound.Wrapf("job %d not found", msg.JobId)
	}

	if !jd.keeper.IsRequester(job, requester) {
		return sdkerrors.ErrUnauthorized.Wrapf("job %d was not posted by %s", msg.JobId, msg.Requester)
	}

	if job.Status != jobstypes.JobStatusSubmitted {
		return sdkerrors.ErrInvalidRequest.Wrapf("job %d has no submitted result", msg.JobId)
	}

	return nil
}
