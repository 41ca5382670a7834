package collection

import (
	"github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/wallet"
)

// Info mirrors the factory's registry entry for one deployed collection.
type Info struct {
	Address      domain.Address `json:"address"`
	Creator      domain.Address `json:"creator"`
	Name         string         `json:"name"`
	Symbol       string         `json:"symbol"`
	CreationTime int64          `json:"creationTime"`
	MaxSupply    int            `json:"maxSupply"`
	Royalty      int            `json:"royalty"` // percent
}

// Stats is derived by walking the collection's tokens.
type Stats struct {
	TotalSupply  int `json:"totalSupply"`
	UniqueOwners int `json:"uniqueOwners"`
}

// NFT is one enumerated token of a collection.
type NFT struct {
	TokenId  domain.TokenId `json:"tokenId"`
	TokenURI string         `json:"tokenURI"`
	Owner    domain.Address `json:"owner"`
}

// CreatePayload deploys a new collection through the factory. The creation
// fee is configured at the gateway, not supplied by the caller.
type CreatePayload struct {
	Name      string `json:"name" validate:"required"`
	Symbol    string `json:"symbol" validate:"required"`
	BaseURI   string `json:"baseURI"`
	MaxSupply int    `json:"maxSupply" validate:"gte=0"`
	Royalty   int    `json:"royalty" validate:"gte=0,lte=100"`
}

// CreateResult carries the settled deployment transaction and, when the
// factory emitted its creation event, the new collection address.
type CreateResult struct {
	Collection domain.Address   `json:"collection"`
	Tx         *domain.TxResult `json:"tx"`
}

// SearchParams filters the registry listing. Nil fields mean no filter.
type SearchParams struct {
	Creator *string `query:"creator"`
}

type Repo interface {
	Count(c ctx.Ctx, chainId domain.ChainId) (int, error)
	List(c ctx.Ctx, chainId domain.ChainId) ([]domain.Address, error)
	FindOne(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*Info, error)
	Create(c ctx.Ctx, signer wallet.Signer, chainId domain.ChainId, payload CreatePayload) (*CreateResult, error)
}

// TokenRepo reads a deployed collection's erc721 surface.
type TokenRepo interface {
	Supports(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (bool, error)
	TotalSupply(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (int, error)
	BalanceOf(c ctx.Ctx, chainId domain.ChainId, address domain.Address, owner domain.Address) (int, error)
	OwnerOf(c ctx.Ctx, chainId domain.ChainId, address domain.Address, tokenId domain.TokenId) (domain.Address, error)
	TokenURI(c ctx.Ctx, chainId domain.ChainId, address domain.Address, tokenId domain.TokenId) (string, error)
}

type UseCase interface {
	Count(c ctx.Ctx, chainId domain.ChainId) (int, error)
	List(c ctx.Ctx, chainId domain.ChainId, params *SearchParams) ([]*Info, error)
	Balance(c ctx.Ctx, chainId domain.ChainId, address domain.Address, owner domain.Address) (int, error)
	FindOne(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*Info, error)
	Stats(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*Stats, error)
	ListNFTs(c ctx.Ctx, chainId domain.ChainId, address domain.Address) ([]*NFT, error)
	Create(c ctx.Ctx, chainId domain.ChainId, payload CreatePayload) (*CreateResult, error)
}
