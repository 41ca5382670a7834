package wallet

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
)

// well known hardhat dev key
const (
	testKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
)

func TestSessionDerivesIdentity(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	signer, err := New(&Cfg{PrivateKey: testKey, ChainId: 1114})
	req.NoError(err)

	session, err := signer.Session(ctx)
	req.NoError(err)
	req.Equal(domain.Address(testAddress), session.Address)
	req.Equal(domain.ChainId(1114), session.ChainId)

	// 0x prefixed keys are accepted too
	signer, err = New(&Cfg{PrivateKey: "0x" + testKey, ChainId: 1114})
	req.NoError(err)
	session, err = signer.Session(ctx)
	req.NoError(err)
	req.Equal(domain.Address(testAddress), session.Address)
}

func TestSessionWithoutKey(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	signer, err := New(&Cfg{ChainId: 1114})
	req.NoError(err)

	_, err = signer.Session(ctx)
	req.True(errors.Is(err, domain.ErrWalletNotConnected))

	_, err = signer.SignTx(ctx, 1114, types.NewTransaction(0, common.Address{}, nil, 21000, big.NewInt(1), nil))
	req.True(errors.Is(err, domain.ErrWalletNotConnected))
}

func TestSignTx(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	signer, err := New(&Cfg{PrivateKey: testKey, ChainId: 1114})
	req.NoError(err)

	to := common.HexToAddress("0x7a9D78D1E5fe688F80D4C2c06Ca4C0407A967644")
	tx := types.NewTransaction(7, to, big.NewInt(100000000000000000), 150000, big.NewInt(1000000000), nil)

	signed, err := signer.SignTx(ctx, 1114, tx)
	req.NoError(err)

	from, err := types.Sender(types.NewEIP155Signer(big.NewInt(1114)), signed)
	req.NoError(err)
	req.Equal(testAddress, domain.Address(from.Hex()).ToLowerStr())
}

func TestSignTxWrongNetwork(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	signer, err := New(&Cfg{PrivateKey: testKey, ChainId: 1})
	req.NoError(err)

	tx := types.NewTransaction(0, common.Address{}, nil, 21000, big.NewInt(1), nil)
	_, err = signer.SignTx(ctx, 1114, tx)
	req.True(errors.Is(err, domain.ErrWrongNetwork))
}

func TestNewRejectsMalformedKey(t *testing.T) {
	req := require.New(t)

	_, err := New(&Cfg{PrivateKey: "not-a-key", ChainId: 1114})
	req.Error(err)
}
