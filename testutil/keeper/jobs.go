package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	stakingkeeper "github.com/cosmos/cosmos-sdk/x/staking/keeper"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	"github.com/stretchr/testify/require"

	jobskeeper "github.com/loom-chain/loom/x/jobs/keeper"
	jobstypes "github.com/loom-chain/loom/x/jobs/types"
	oraclekeeper "github.com/loom-chain/loom/x/oracle/keeper"
	oracletypes "github.com/loom-chain/loom/x/oracle/types"
)

// JobsFixture bundles the jobs keeper with the real keepers it depends on
// so tests can fund accounts, seed prices and assert balances.
type JobsFixture struct {
	Ctx           sdk.Context
	JobsKeeper    *jobskeeper.Keeper
	OracleKeeper  *oraclekeeper.Keeper
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.Keeper
	StakingKeeper *stakingkeeper.Keeper
}

// NewJobsFixture creates a test fixture for the jobs module backed by real
// auth, bank, staking and oracle keepers over an in-memory store
func NewJobsFixture(t testing.TB) *JobsFixture {
	jobsStoreKey := storetypes.NewKVStoreKey(jobstypes.StoreKey)
	oracleStoreKey := storetypes.NewKVStoreKey(oracletypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)
	stakingStoreKey := storetypes.NewKVStoreKey(stakingtypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(jobsStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(oracleStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(stakingStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	stakingtypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName:     nil,
		minttypes.ModuleName:           {authtypes.Minter},
		stakingtypes.BondedPoolName:    {authtypes.Burner, authtypes.Staking},
		stakingtypes.NotBondedPoolName: {authtypes.Burner, authtypes.Staking},
		jobstypes.ModuleName:           nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	// Same policy as the app: every module account is blocked, the jobs
	// escrow included. Escrow moves only through the keeper.
	blockedAddrs := map[string]bool{
		authtypes.NewModuleAddress(stakingtypes.BondedPoolName).String():    true,
		authtypes.NewModuleAddress(stakingtypes.NotBondedPoolName).String(): true,
		authtypes.NewModuleAddress(jobstypes.ModuleName).String():           true,
	}

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		blockedAddrs,
		authority.String(),
		log.NewNopLogger(),
	)

	stakingKeeper := stakingkeeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(stakingStoreKey),
		accountKeeper,
		bankKeeper,
		authority.String(),
		address.NewBech32Codec(sdk.GetConfig().GetBech32ValidatorAddrPrefix()),
		address.NewBech32Codec(sdk.GetConfig().GetBech32ConsensusAddrPrefix()),
	)

	oracleKeeper := oraclekeeper.NewKeeper(
		cdc,
		oracleStoreKey,
		stakingKeeper,
		authority.String(),
	)

	jobsKeeper := jobskeeper.NewKeeper(
		cdc,
		jobsStoreKey,
		accountKeeper,
		bankKeeper,
		oracleKeeper,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return &JobsFixture{
		Ctx:           ctx,
		JobsKeeper:    jobsKeeper,
		OracleKeeper:  oracleKeeper,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		StakingKeeper: stakingKeeper,
	}
}

// JobsKeeper creates a test keeper for the jobs module
func JobsKeeper(t testing.TB) (*jobskeeper.Keeper, sdk.Context) {
	f := NewJobsFixture(t)
	return f.JobsKeeper, f.Ctx
}

// FundAccount mints coins and sends them to the given account
func (f *JobsFixture) FundAccount(t testing.TB, addr sdk.AccAddress, coins sdk.Coins) {
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, coins))
}

// SetPrice seeds the oracle with a fixed price feed for an asset
func (f *JobsFixture) SetPrice(t testing.TB, asset string, price math.Int, decimals uint32) {
	require.NoError(t, f.OracleKeeper.SetPriceFeed(f.Ctx, oracletypes.PriceFeed{
		Asset:     asset,
		Price:     price,
		Decimals:  decimals,
		UpdatedAt: f.Ctx.BlockTime(),
		Height:    f.Ctx.BlockHeight(),
	}))
}
