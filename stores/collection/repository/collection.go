package repository

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/base/wei"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/collection"
	"github.com/core-launch/goapi/domain/wallet"
	"github.com/core-launch/goapi/service/chain/contract"
)

type collectionRepo struct {
	factory contract.Factory
	// creationFee is the factory's deployment fee in native currency,
	// paid as transaction value
	creationFee string
}

// NewCollectionRepo builds the registry gateway over the collection factory.
func NewCollectionRepo(factory contract.Factory, creationFee string) collection.Repo {
	return &collectionRepo{factory, creationFee}
}

func (r *collectionRepo) Count(c bCtx.Ctx, chainId domain.ChainId) (int, error) {
	count, err := r.factory.GetCollectionsCount(c, chainId)
	if err != nil {
		return 0, err
	}
	return int(count.Int64()), nil
}

func (r *collectionRepo) List(c bCtx.Ctx, chainId domain.ChainId) ([]domain.Address, error) {
	raw, err := r.factory.GetAllCollections(c, chainId)
	if err != nil {
		return nil, err
	}
	addresses := make([]domain.Address, 0, len(raw))
	for _, a := range raw {
		addresses = append(addresses, domain.Address(a.Hex()).ToLower())
	}
	return addresses, nil
}

func (r *collectionRepo) FindOne(c bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*collection.Info, error) {
	entry, err := r.factory.GetCollection(c, chainId, common.HexToAddress(string(address)))
	if err != nil {
		return nil, err
	}
	if !entry.Exists {
		return nil, domain.ErrNotFound
	}
	return &collection.Info{
		Address:      address.ToLower(),
		Creator:      domain.Address(entry.Creator.Hex()).ToLower(),
		Name:         entry.Name,
		Symbol:       entry.Symbol,
		CreationTime: entry.CreationTime.Int64(),
		MaxSupply:    int(entry.MaxSupply.Int64()),
		Royalty:      int(entry.Royalty.Int64()),
	}, nil
}

func (r *collectionRepo) Create(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, payload collection.CreatePayload) (*collection.CreateResult, error) {
	fee, err := wei.ToPositiveWei(r.creationFee)
	if err != nil {
		return nil, xerrors.Errorf("creation fee %s: %w", r.creationFee, err)
	}
	maxSupply := big.NewInt(int64(payload.MaxSupply))
	royalty := big.NewInt(int64(payload.Royalty))
	deployment, err := r.factory.CreateCollection(c, signer, chainId, payload.Name, payload.Symbol, payload.BaseURI, maxSupply, royalty, fee)
	if err != nil {
		return nil, err
	}
	result := &collection.CreateResult{Tx: deployment.Tx}
	if deployment.Collection != (common.Address{}) {
		result.Collection = domain.Address(deployment.Collection.Hex()).ToLower()
	}
	return result, nil
}
