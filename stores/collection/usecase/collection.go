package usecase

import (
	"strconv"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/base/log"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/collection"
	"github.com/core-launch/goapi/domain/wallet"
)

type CollectionUseCaseCfg struct {
	Repo      collection.Repo
	TokenRepo collection.TokenRepo
	Signer    wallet.Signer
	ChainId   domain.ChainId
}

type collectionUC struct {
	repo      collection.Repo
	tokenRepo collection.TokenRepo
	signer    wallet.Signer
	chainId   domain.ChainId
}

func New(cfg *CollectionUseCaseCfg) collection.UseCase {
	return &collectionUC{
		repo:      cfg.Repo,
		tokenRepo: cfg.TokenRepo,
		signer:    cfg.Signer,
		chainId:   cfg.ChainId,
	}
}

func (im *collectionUC) Count(c bCtx.Ctx, chainId domain.ChainId) (int, error) {
	return im.repo.Count(c, chainId)
}

// List resolves every registered address to its registry entry. Entries
// that fail to resolve are skipped, not fatal.
func (im *collectionUC) List(c bCtx.Ctx, chainId domain.ChainId, params *collection.SearchParams) ([]*collection.Info, error) {
	addresses, err := im.repo.List(c, chainId)
	if err != nil {
		return nil, err
	}
	var creator domain.Address
	if params != nil && params.Creator != nil {
		creator = domain.Address(*params.Creator)
	}
	infos := make([]*collection.Info, 0, len(addresses))
	for _, address := range addresses {
		info, err := im.repo.FindOne(c, chainId, address)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "address": address}).Warn("skipping unresolvable collection")
			continue
		}
		if !creator.IsEmpty() && !info.Creator.Equals(creator) {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (im *collectionUC) Balance(c bCtx.Ctx, chainId domain.ChainId, address domain.Address, owner domain.Address) (int, error) {
	return im.tokenRepo.BalanceOf(c, chainId, address, owner)
}

func (im *collectionUC) FindOne(c bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*collection.Info, error) {
	return im.repo.FindOne(c, chainId, address)
}

// Stats walks token ids from 1 and stops at the first missing one. Token
// ids in these collections are minted sequentially, so the walk covers the
// full supply.
func (im *collectionUC) Stats(c bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*collection.Stats, error) {
	supply, err := im.tokenRepo.TotalSupply(c, chainId, address)
	if err != nil {
		return nil, err
	}
	owners := map[domain.Address]struct{}{}
	for i := 1; i <= supply; i++ {
		owner, err := im.tokenRepo.OwnerOf(c, chainId, address, domain.TokenId(strconv.Itoa(i)))
		if err != nil {
			break
		}
		owners[owner] = struct{}{}
	}
	return &collection.Stats{
		TotalSupply:  supply,
		UniqueOwners: len(owners),
	}, nil
}

// ListNFTs enumerates minted tokens, stopping at the first id that fails to
// resolve. Contracts that do not expose the erc721 interface are rejected.
func (im *collectionUC) ListNFTs(c bCtx.Ctx, chainId domain.ChainId, address domain.Address) ([]*collection.NFT, error) {
	supports, err := im.tokenRepo.Supports(c, chainId, address)
	if err != nil {
		return nil, err
	}
	if !supports {
		return nil, domain.ErrBadParamInput
	}
	supply, err := im.tokenRepo.TotalSupply(c, chainId, address)
	if err != nil {
		return nil, err
	}
	nfts := make([]*collection.NFT, 0, supply)
	for i := 1; i <= supply; i++ {
		tokenId := domain.TokenId(strconv.Itoa(i))
		owner, err := im.tokenRepo.OwnerOf(c, chainId, address, tokenId)
		if err != nil {
			break
		}
		uri, err := im.tokenRepo.TokenURI(c, chainId, address, tokenId)
		if err != nil {
			break
		}
		nfts = append(nfts, &collection.NFT{
			TokenId:  tokenId,
			TokenURI: uri,
			Owner:    owner,
		})
	}
	return nfts, nil
}

func (im *collectionUC) Create(c bCtx.Ctx, chainId domain.ChainId, payload collection.CreatePayload) (*collection.CreateResult, error) {
	session, err := im.signer.Session(c)
	if err != nil {
		return nil, err
	}
	if session.ChainId != im.chainId || chainId != im.chainId {
		return nil, domain.ErrWrongNetwork
	}
	result, err := im.repo.Create(c, im.signer, chainId, payload)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "name": payload.Name}).Warn("createCollection failed")
		return nil, err
	}
	return result, nil
}
