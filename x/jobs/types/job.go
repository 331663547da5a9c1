package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// JobStatus represents the lifecycle stage of a job.
// The only legal transitions are Open -> Accepted -> Submitted -> Paid.
type JobStatus uint32

const (
	JobStatusOpen JobStatus = iota
	JobStatusAccepted
	JobStatusSubmitted
	JobStatusPaid
)

// String returns the human-readable status name
func (s JobStatus) String() string {
	switch s {
	case JobStatusOpen:
		return "open"
	case JobStatusAccepted:
		return "accepted"
	case JobStatusSubmitted:
		return "submitted"
	case JobStatusPaid:
		return "paid"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(s))
	}
}

// IsValid reports whether the status is one of the defined stages
func (s JobStatus) IsValid() bool {
	return s <= JobStatusPaid
}

// UsdDecimals is the fixed-point scale of RewardUsd: $1 is 10^8 units.
const UsdDecimals = 8

// Job is a posted unit of work with its escrowed collateral.
//
// RewardUsd is the requester-facing price in fixed-point USD. LockedValue is
// the native amount actually held in the module escrow account, quoted from
// the oracle at posting time; the provider is paid exactly LockedValue.
type Job struct {
	Id          uint64    `json:"id"`
	Requester   string    `json:"requester"`
	Provider    string    `json:"provider,omitempty"`
	DataUrl     string    `json:"data_url"`
	ScriptUrl   string    `json:"script_url"`
	RewardUsd   math.Int  `json:"reward_usd"`
	LockedValue sdk.Coin  `json:"locked_value"`
	Status      JobStatus `json:"status"`
	ResultUrl   string    `json:"result_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate performs stateless consistency checks on a job record
func (j Job) Validate() error {
	if j.Id == 0 {
		return fmt.Errorf("job id cannot be zero")
	}

	if _, err := sdk.AccAddressFromBech32(j.Requester); err != nil {
		return fmt.Errorf("invalid requester address: %w", err)
	}

	if !j.Status.IsValid() {
		return fmt.Errorf("invalid status %d", uint32(j.Status))
	}

	if j.DataUrl == "" {
		return fmt.Errorf("data url cannot be empty")
	}

	if j.ScriptUrl == "" {
		return fmt.Errorf("script url cannot be empty")
	}

	if j.RewardUsd.IsNil() || !j.RewardUsd.IsPositive() {
		return fmt.Errorf("reward usd must be positive")
	}

	if err := j.LockedValue.Validate(); err != nil {
		return fmt.Errorf("invalid locked value: %w", err)
	}

	switch j.Status {
	case JobStatusOpen:
		if j.Provider != "" {
			return fmt.Errorf("open job cannot have a provider")
		}
	case JobStatusAccepted, JobStatusSubmitted, JobStatusPaid:
		if _, err := sdk.AccAddressFromBech32(j.Provider); err != nil {
			return fmt.Errorf("invalid provider address: %w", err)
		}
	}

	if j.Status >= JobStatusSubmitted && j.ResultUrl == "" {
		return fmt.Errorf("submitted job must carry a result url")
	}

	return nil
}

// IsLive reports whether the job's collateral is still held in escrow
func (j Job) IsLive() bool {
	return j.Status != JobStatusPaid
}
