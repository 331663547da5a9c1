package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/x/jobs/types"
)

func TestJobStatus_String(t *testing.T) {
	require.Equal(t, "open", types.JobStatusOpen.String())
	require.Equal(t, "accepted", types.JobStatusAccepted.String())
	require.Equal(t, "submitted", types.JobStatusSubmitted.String())
	require.Equal(t, "paid", types.JobStatusPaid.String())
	require.Equal(t, "unknown(9)", types.JobStatus(9).String())
}

func TestJobStatus_IsValid(t *testing.T) {
	require.True(t, types.JobStatusOpen.IsValid())
	require.True(t, types.JobStatusPaid.IsValid())
	require.False(t, types.JobStatus(4).IsValid())
}

func validJob() types.Job {
	return types.Job{
		Id:          1,
		Requester:   testRequester,
		DataUrl:     "ipfs://data",
		ScriptUrl:   "ipfs://script",
		RewardUsd:   math.NewInt(10_0000_0000),
		LockedValue: sdk.NewInt64Coin("uloom", 3334),
		Status:      types.JobStatusOpen,
	}
}

func TestJob_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Job)
		wantErr bool
	}{
		{name: "valid open", mutate: func(*types.Job) {}},
		{
			name: "valid paid",
			mutate: func(j *types.Job) {
				j.Provider = testProvider
				j.Status = types.JobStatusPaid
				j.ResultUrl = "ipfs://result"
			},
		},
		{name: "zero id", mutate: func(j *types.Job) { j.Id = 0 }, wantErr: true},
		{name: "bad requester", mutate: func(j *types.Job) { j.Requester = "garbage" }, wantErr: true},
		{name: "bad status", mutate: func(j *types.Job) { j.Status = types.JobStatus(7) }, wantErr: true},
		{name: "empty data url", mutate: func(j *types.Job) { j.DataUrl = "" }, wantErr: true},
		{name: "empty script url", mutate: func(j *types.Job) { j.ScriptUrl = "" }, wantErr: true},
		{name: "zero reward", mutate: func(j *types.Job) { j.RewardUsd = math.ZeroInt() }, wantErr: true},
		{
			name:    "open with provider",
			mutate:  func(j *types.Job) { j.Provider = testProvider },
			wantErr: true,
		},
		{
			name: "accepted without provider",
			mutate: func(j *types.Job) {
				j.Status = types.JobStatusAccepted
			},
			wantErr: true,
		},
		{
			name: "submitted without result url",
			mutate: func(j *types.Job) {
				j.Provider = testProvider
				j.Status = types.JobStatusSubmitted
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			job := validJob()
			tc.mutate(&job)

			err := job.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestJob_IsLive(t *testing.T) {
	job := validJob()
	require.True(t, job.IsLive())

	job.Status = types.JobStatusSubmitted
	require.True(t, job.IsLive())

	job.Status = types.JobStatusPaid
	require.False(t, job.IsLive())
}
