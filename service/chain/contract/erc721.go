package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/core-launch/goapi/base/abi"
	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/service/chain"
)

type Erc721 interface {
	Supports721Interface(c bCtx.Ctx, chainId domain.ChainId, addr common.Address) (bool, error)
	TotalSupply(c bCtx.Ctx, chainId domain.ChainId, addr common.Address) (*big.Int, error)
	OwnerOf(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (common.Address, error)
	TokenURI(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (string, error)
	BalanceOf(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, owner common.Address) (*big.Int, error)
}

type erc721Impl struct {
	chainService      chain.Client
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(chainService chain.Client) Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &erc721Impl{
		abi:               baseabi.ERC721TokenABI,
		chainService:      chainService,
		erc721InterfaceId: interfaceId,
	}
}

func (e *erc721Impl) Supports721Interface(c bCtx.Ctx, chainId domain.ChainId, addr common.Address) (bool, error) {
	unpacked, err := e.chainService.Call(c, chainId, addr, e.abi, "supportsInterface", e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *erc721Impl) TotalSupply(c bCtx.Ctx, chainId domain.ChainId, addr common.Address) (*big.Int, error) {
	unpacked, err := e.chainService.Call(c, chainId, addr, e.abi, "totalSupply")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *erc721Impl) OwnerOf(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (common.Address, error) {
	unpacked, err := e.chainService.Call(c, chainId, addr, e.abi, "ownerOf", tokenId)
	if err != nil {
		return common.Address{}, err
	}
	return unpacked[0].(common.Address), nil
}

func (e *erc721Impl) TokenURI(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, tokenId *big.Int) (string, error) {
	unpacked, err := e.chainService.Call(c, chainId, addr, e.abi, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *erc721Impl) BalanceOf(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, owner common.Address) (*big.Int, error) {
	unpacked, err := e.chainService.Call(c, chainId, addr, e.abi, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}
