package ante_test

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/loom-chain/loom/app/ante"
)

// memoTx adds a memo on top of the plain mock tx.
type memoTx struct {
	mockTx
	memo string
}

func (m memoTx) GetMemo() string { return m.memo }

func TestMemoLimitDecorator(t *testing.T) {
	t.Parallel()

	dec := ante.NewMemoLimitDecorator(ante.MaxMemoBytes)
	ctx := sdk.Context{}.WithTxBytes([]byte{})

	// a memo at the cap passes
	_, err := dec.AnteHandle(ctx, memoTx{memo: strings.Repeat("a", ante.MaxMemoBytes)}, false, passThrough)
	require.NoError(t, err)

	// one byte over fails
	_, err = dec.AnteHandle(ctx, memoTx{memo: strings.Repeat("a", ante.MaxMemoBytes+1)}, false, passThrough)
	require.ErrorIs(t, err, sdkerrors.ErrMemoTooLarge)

	// txs without a memo interface pass untouched
	_, err = dec.AnteHandle(ctx, mockTx{}, false, passThrough)
	require.NoError(t, err)
}
