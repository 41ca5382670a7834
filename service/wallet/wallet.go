// Package wallet provides the server side signing identity. It stands in for
// the browser wallet of the original flow: one configured key, one active
// network, re-derived on every use so a key or network swap is picked up
// without restart state.
package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	dWallet "github.com/core-launch/goapi/domain/wallet"
)

type Cfg struct {
	// PrivateKey is hex encoded, with or without 0x prefix. Empty means no
	// identity is connected; reads still work, writes fail fast.
	PrivateKey string
	// ChainId is the network the wallet is on, which is not necessarily the
	// network the service expects.
	ChainId domain.ChainId
}

type keySigner struct {
	mu      sync.RWMutex
	key     *ecdsa.PrivateKey
	chainId domain.ChainId
}

func New(cfg *Cfg) (dWallet.Signer, error) {
	s := &keySigner{chainId: cfg.ChainId}
	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, xerrors.Errorf("parse private key: %w", err)
		}
		s.key = key
	}
	return s, nil
}

func (s *keySigner) Session(c bCtx.Ctx) (*dWallet.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return nil, domain.ErrWalletNotConnected
	}
	addr := crypto.PubkeyToAddress(s.key.PublicKey)
	return &dWallet.Session{
		Address: domain.Address(addr.Hex()).ToLower(),
		ChainId: s.chainId,
	}, nil
}

func (s *keySigner) SignTx(c bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return nil, domain.ErrWalletNotConnected
	}
	if chainId != s.chainId {
		// refuse to authorize for a network the wallet is not on
		return nil, domain.ErrWrongNetwork
	}
	signed, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(int64(chainId))), s.key)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", err.Error(), domain.ErrUserRejected)
	}
	return signed, nil
}
