package types

import (
	"fmt"
)

// GenesisState defines the jobs module's genesis state
type GenesisState struct {
	Params    Params `json:"params"`
	Jobs      []Job  `json:"jobs"`
	NextJobId uint64 `json:"next_job_id"`
}

// DefaultGenesis returns the default genesis state for the jobs module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		Jobs:      []Job{},
		NextJobId: 1,
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	if gs.NextJobId == 0 {
		return fmt.Errorf("next job id must be positive")
	}

	seen := make(map[uint64]bool)
	for _, job := range gs.Jobs {
		if seen[job.Id] {
			return fmt.Errorf("duplicate job id %d", job.Id)
		}
		seen[job.Id] = true

		if job.Id >= gs.NextJobId {
			return fmt.Errorf("job id %d exceeds next job id %d", job.Id, gs.NextJobId)
		}

		if err := job.Validate(); err != nil {
			return fmt.Errorf("invalid job %d: %w", job.Id, err)
		}

		if job.LockedValue.Denom != gs.Params.BondDenom {
			return fmt.Errorf("job %d locked value denom %s does not match bond denom %s",
				job.Id, job.LockedValue.Denom, gs.Params.BondDenom)
		}
	}

	return nil
}
