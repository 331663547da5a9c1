package cmd

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/app"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newTestKeyring(t *testing.T) keyring.Keyring {
	t.Helper()
	initSDKConfig()
	kr, err := keyring.New("loom", keyring.BackendTest, t.TempDir(), nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)
	return kr
}

func TestKeysCommandStructure(t *testing.T) {
	cmd := newKeysCmd(false)

	require.Equal(t, "keys", cmd.Use)
	require.Contains(t, cmd.Short, "BIP39")

	for _, name := range []string{"add", "recover", "list", "show", "delete", "export", "import"} {
		require.NotNil(t, findSubcommand(cmd, name), "keys should expose %q", name)
	}

	// wired under the root command, home comes from the root's persistent flags
	require.Nil(t, cmd.PersistentFlags().Lookup(flags.FlagHome))
	require.NotNil(t, cmd.PersistentFlags().Lookup(flags.FlagKeyringBackend))

	// standalone invocation carries its own home flag
	standalone := KeysCmd()
	require.NotNil(t, standalone.PersistentFlags().Lookup(flags.FlagHome))
}

func TestAddKeyCommandFlags(t *testing.T) {
	cmd := AddKeyCommand()

	length, err := cmd.Flags().GetInt(flagMnemonicLength)
	require.NoError(t, err)
	require.Equal(t, 24, length)

	for _, flag := range []string{flagNoBackup, flagCoinType, flagAccount, flagIndex, "recover"} {
		require.NotNil(t, cmd.Flags().Lookup(flag), "add should expose --%s", flag)
	}
}

func TestMnemonicGeneration(t *testing.T) {
	tests := []struct {
		name       string
		entropyLen int
		wantWords  int
	}{
		{"12 words from 128 bits", 16, 12},
		{"24 words from 256 bits", 32, 24},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entropy := make([]byte, tc.entropyLen)
			_, err := rand.Read(entropy)
			require.NoError(t, err)

			mnemonic, err := bip39.NewMnemonic(entropy)
			require.NoError(t, err)
			require.True(t, bip39.IsMnemonicValid(mnemonic))
			require.Len(t, strings.Fields(mnemonic), tc.wantWords)
		})
	}
}

func TestMnemonicValidation(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{"valid 12 words", testMnemonic, true},
		{"valid 24 words", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art", true},
		{"bad checksum", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon ability", false},
		{"too short", "abandon abandon abandon", false},
		{"word outside the list", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon invalidword", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, bip39.IsMnemonicValid(tc.mnemonic))
		})
	}
}

func TestRecoverNormalizesWhitespace(t *testing.T) {
	// recover accepts mnemonics pasted with ragged spacing
	ragged := "  abandon abandon  abandon abandon abandon abandon\tabandon abandon abandon abandon abandon about "
	normalized := strings.Join(strings.Fields(ragged), " ")

	require.Equal(t, testMnemonic, normalized)
	require.True(t, bip39.IsMnemonicValid(normalized))
	require.False(t, bip39.IsMnemonicValid(ragged))
}

func TestKeyringAddAndRecover(t *testing.T) {
	kr := newTestKeyring(t)
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)

	key, err := kr.NewAccount("requester", testMnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)

	addr, err := key.GetAddress()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr.String(), "loom"))

	// the same mnemonic recovered elsewhere lands on the same address
	other := newTestKeyring(t)
	recovered, err := other.NewAccount("recovered", testMnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)

	recoveredAddr, err := recovered.GetAddress()
	require.NoError(t, err)
	require.Equal(t, addr.String(), recoveredAddr.String())
}

func TestKeyringHDPathDifferentiation(t *testing.T) {
	initSDKConfig()
	coinType := sdk.GetConfig().GetCoinType()

	masterPriv, ch := hd.ComputeMastersFromSeed(bip39.NewSeed(testMnemonic, ""))

	key0, err := hd.DerivePrivateKeyForPath(masterPriv, ch, hd.CreateHDPath(coinType, 0, 0).String())
	require.NoError(t, err)
	key1, err := hd.DerivePrivateKeyForPath(masterPriv, ch, hd.CreateHDPath(coinType, 0, 1).String())
	require.NoError(t, err)
	account1, err := hd.DerivePrivateKeyForPath(masterPriv, ch, hd.CreateHDPath(coinType, 1, 0).String())
	require.NoError(t, err)

	require.NotEqual(t, key0, key1)
	require.NotEqual(t, key0, account1)
	require.NotEqual(t, key1, account1)
}

func TestKeyringExportImportRoundTrip(t *testing.T) {
	kr := newTestKeyring(t)
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)

	original, err := kr.NewAccount("provider", testMnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)

	armor, err := kr.ExportPrivKeyArmor("provider", "passphrase123")
	require.NoError(t, err)
	require.NotEmpty(t, armor)

	other := newTestKeyring(t)
	require.NoError(t, other.ImportPrivKey("imported", armor, "passphrase123"))

	imported, err := other.Key("imported")
	require.NoError(t, err)

	originalAddr, err := original.GetAddress()
	require.NoError(t, err)
	importedAddr, err := imported.GetAddress()
	require.NoError(t, err)
	require.Equal(t, originalAddr.String(), importedAddr.String())
}

func TestKeyringList(t *testing.T) {
	kr := newTestKeyring(t)
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)

	for _, name := range []string{"alice", "bob"} {
		entropy := make([]byte, 32)
		_, err := rand.Read(entropy)
		require.NoError(t, err)
		mnemonic, err := bip39.NewMnemonic(entropy)
		require.NoError(t, err)
		_, err = kr.NewAccount(name, mnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
		require.NoError(t, err)
	}

	keys, err := kr.List()
	require.NoError(t, err)
	require.Len(t, keys, 2)

	names := make(map[string]bool)
	for _, key := range keys {
		names[key.Name] = true
	}
	require.True(t, names["alice"])
	require.True(t, names["bob"])
}

func BenchmarkMnemonicGeneration(b *testing.B) {
	for i := 0; i < b.N; i++ {
		entropy := make([]byte, 32)
		_, _ = rand.Read(entropy)
		_, _ = bip39.NewMnemonic(entropy)
	}
}
