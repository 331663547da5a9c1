package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/loom-chain/loom/app"
)

func testCreateValidatorMsg(t *testing.T, moniker string, amount sdkmath.Int) *stakingtypes.MsgCreateValidator {
	t.Helper()

	pk := ed25519.GenPrivKey().PubKey()
	msg, err := stakingtypes.NewMsgCreateValidator(
		sdk.ValAddress(pk.Address()).String(),
		pk,
		sdk.NewCoin("uloom", amount),
		stakingtypes.NewDescription(moniker, "", "", "", ""),
		stakingtypes.NewCommissionRates(
			sdkmath.LegacyMustNewDecFromStr("0.10"),
			sdkmath.LegacyMustNewDecFromStr("0.20"),
			sdkmath.LegacyMustNewDecFromStr("0.01"),
		),
		sdkmath.NewInt(1),
	)
	require.NoError(t, err)
	return msg
}

func TestMsgCreateValidatorToGenesisValidator(t *testing.T) {
	encodingConfig := app.MakeEncodingConfig()
	msg := testCreateValidatorMsg(t, "weaver-1", sdkmath.NewInt(5_000_000))

	validator, err := msgCreateValidatorToGenesisValidator(encodingConfig.InterfaceRegistry, msg)
	require.NoError(t, err)
	require.Equal(t, "weaver-1", validator.Name)
	require.Equal(t, sdk.TokensToConsensusPower(msg.Value.Amount, sdk.DefaultPowerReduction), validator.Power)
}

func TestMsgCreateValidatorToGenesisValidatorZeroPower(t *testing.T) {
	encodingConfig := app.MakeEncodingConfig()
	// Below one power unit the validator would never make the active set.
	msg := testCreateValidatorMsg(t, "weaver-1", sdkmath.ZeroInt())

	_, err := msgCreateValidatorToGenesisValidator(encodingConfig.InterfaceRegistry, msg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "zero consensus power")
}

func TestMsgCreateValidatorToGenesisValidatorNil(t *testing.T) {
	encodingConfig := app.MakeEncodingConfig()

	_, err := msgCreateValidatorToGenesisValidator(encodingConfig.InterfaceRegistry, nil)
	require.Error(t, err)
}

func TestReadGenTxDirMissing(t *testing.T) {
	encodingConfig := app.MakeEncodingConfig()
	clientCtx := client.Context{}.
		WithCodec(encodingConfig.Codec).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
		WithTxConfig(encodingConfig.TxConfig)

	collected, err := readGenTxDir(clientCtx, t.TempDir()+"/does-not-exist")
	require.NoError(t, err)
	require.Empty(t, collected)
}

func TestEnsureBalanceAppendsOnce(t *testing.T) {
	var balances []banktypes.Balance

	first := ensureBalance(&balances, "loom1pooladdr")
	first.Coins = first.Coins.Add(sdk.NewCoin("uloom", sdkmath.NewInt(100)))

	again := ensureBalance(&balances, "loom1pooladdr")
	require.Len(t, balances, 1)
	require.Equal(t, sdkmath.NewInt(100), again.Coins.AmountOf("uloom"))

	require.Nil(t, findBalance(balances, "loom1other"))
	require.NotNil(t, findBalance(balances, "loom1pooladdr"))
}
