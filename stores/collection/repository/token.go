package repository

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/collection"
	"github.com/core-launch/goapi/service/chain/contract"
)

type tokenRepo struct {
	erc721 contract.Erc721
}

// NewTokenRepo reads deployed collections through their erc721 surface.
func NewTokenRepo(erc721 contract.Erc721) collection.TokenRepo {
	return &tokenRepo{erc721}
}

// Supports probes the erc721 interface id before any enumeration.
func (r *tokenRepo) Supports(c bCtx.Ctx, chainId domain.ChainId, address domain.Address) (bool, error) {
	return r.erc721.Supports721Interface(c, chainId, common.HexToAddress(string(address)))
}

func (r *tokenRepo) TotalSupply(c bCtx.Ctx, chainId domain.ChainId, address domain.Address) (int, error) {
	supply, err := r.erc721.TotalSupply(c, chainId, common.HexToAddress(string(address)))
	if err != nil {
		return 0, err
	}
	return int(supply.Int64()), nil
}

func (r *tokenRepo) BalanceOf(c bCtx.Ctx, chainId domain.ChainId, address domain.Address, owner domain.Address) (int, error) {
	balance, err := r.erc721.BalanceOf(c, chainId, common.HexToAddress(string(address)), common.HexToAddress(string(owner)))
	if err != nil {
		return 0, err
	}
	return int(balance.Int64()), nil
}

func (r *tokenRepo) OwnerOf(c bCtx.Ctx, chainId domain.ChainId, address domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", xerrors.Errorf("token id %s: %w", tokenId, domain.ErrBadParamInput)
	}
	owner, err := r.erc721.OwnerOf(c, chainId, common.HexToAddress(string(address)), id)
	if err != nil {
		return "", err
	}
	return domain.Address(owner.Hex()).ToLower(), nil
}

func (r *tokenRepo) TokenURI(c bCtx.Ctx, chainId domain.ChainId, address domain.Address, tokenId domain.TokenId) (string, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", xerrors.Errorf("token id %s: %w", tokenId, domain.ErrBadParamInput)
	}
	return r.erc721.TokenURI(c, chainId, common.HexToAddress(string(address)), id)
}
