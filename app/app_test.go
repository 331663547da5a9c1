package app

import (
	"testing"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	jobstypes "github.com/loom-chain/loom/x/jobs/types"
)

func TestBlockedModuleAccountAddrs(t *testing.T) {
	blocked := BlockedModuleAccountAddrs()

	// Every module account is blocked, the jobs escrow account included:
	// a direct bank send into escrow would desync the balance from the sum
	// of locked job values.
	escrow := authtypes.NewModuleAddress(jobstypes.ModuleName).String()
	if !blocked[escrow] {
		t.Fatalf("jobs escrow account %s is not blocked", escrow)
	}

	for acc := range GetMaccPerms() {
		addr := authtypes.NewModuleAddress(acc).String()
		if !blocked[addr] {
			t.Fatalf("module account %s is not blocked", acc)
		}
	}
}

func TestNormalizeRPCURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tcp scheme converted to http",
			in:   "tcp://localhost:26657",
			want: "http://localhost:26657",
		},
		{
			name: "already http",
			in:   "http://rpc.loom.network:26657",
			want: "http://rpc.loom.network:26657",
		},
		{
			name: "https preserved",
			in:   "https://rpc.loom.network:443",
			want: "https://rpc.loom.network:443",
		},
		{
			name: "blank input",
			in:   "   ",
			want: "",
		},
		{
			name: "unix scheme returned verbatim",
			in:   "unix:///tmp/loom.sock",
			want: "unix:///tmp/loom.sock",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeRPCURL(tc.in); got != tc.want {
				t.Fatalf("normalizeRPCURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
