package wallet

import (
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
)

// Session is the signing identity acting on auctions. It is an explicit
// value handed into the gateway and coordinator, with no ambient global
// wallet state behind it.
type Session struct {
	Address domain.Address `json:"address"`
	ChainId domain.ChainId `json:"chainId"`
}

// Signer supplies sessions and authorizes writes.
type Signer interface {
	// Session derives the current identity and active network. Callers must
	// re-derive on every write action instead of caching the result: the
	// connected account or network may change between actions. Returns
	// domain.ErrWalletNotConnected when no identity is available.
	Session(c ctx.Ctx) (*Session, error)

	// SignTx authorizes a transaction for the given chain. Returns
	// domain.ErrUserRejected when the signer declines.
	SignTx(c ctx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Transaction, error)
}
