package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/core-launch/goapi/base/abi"
	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/wallet"
	"github.com/core-launch/goapi/service/chain"
)

// CollectionEntry is the raw decoded return of the factory's collections
// mapping.
type CollectionEntry struct {
	Creator      common.Address
	Name         string
	Symbol       string
	CreationTime *big.Int
	MaxSupply    *big.Int
	Royalty      *big.Int
	Exists       bool
}

// Deployment carries the settled createCollection transaction. Collection is
// the zero address when the creation event was not found in the receipt.
type Deployment struct {
	Collection common.Address
	Tx         *domain.TxResult
}

type Factory interface {
	GetCollectionsCount(c bCtx.Ctx, chainId domain.ChainId) (*big.Int, error)
	GetAllCollections(c bCtx.Ctx, chainId domain.ChainId) ([]common.Address, error)
	GetCollection(c bCtx.Ctx, chainId domain.ChainId, collection common.Address) (*CollectionEntry, error)
	CreateCollection(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, name string, symbol string, baseURI string, maxSupply *big.Int, royalty *big.Int, fee *big.Int) (*Deployment, error)
}

type FactoryCfg struct {
	Addresses map[domain.ChainId]domain.Address
	GasLimits map[string]uint64
}

type factoryImpl struct {
	chainService chain.Client
	abi          ethabi.ABI
	cfg          *FactoryCfg
}

func NewFactory(chainService chain.Client, cfg *FactoryCfg) Factory {
	return &factoryImpl{
		chainService: chainService,
		abi:          baseabi.NFTCollectionFactoryABI,
		cfg:          cfg,
	}
}

func (f *factoryImpl) addr(chainId domain.ChainId) (common.Address, error) {
	a, ok := f.cfg.Addresses[chainId]
	if !ok {
		return common.Address{}, chain.ErrUnsupportedChain
	}
	return common.HexToAddress(string(a)), nil
}

func (f *factoryImpl) GetCollectionsCount(c bCtx.Ctx, chainId domain.ChainId) (*big.Int, error) {
	addr, err := f.addr(chainId)
	if err != nil {
		return nil, err
	}
	unpacked, err := f.chainService.Call(c, chainId, addr, f.abi, "getCollectionsCount")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (f *factoryImpl) GetAllCollections(c bCtx.Ctx, chainId domain.ChainId) ([]common.Address, error) {
	addr, err := f.addr(chainId)
	if err != nil {
		return nil, err
	}
	unpacked, err := f.chainService.Call(c, chainId, addr, f.abi, "getAllCollections")
	if err != nil {
		return nil, err
	}
	return unpacked[0].([]common.Address), nil
}

func (f *factoryImpl) GetCollection(c bCtx.Ctx, chainId domain.ChainId, collection common.Address) (*CollectionEntry, error) {
	addr, err := f.addr(chainId)
	if err != nil {
		return nil, err
	}
	unpacked, err := f.chainService.Call(c, chainId, addr, f.abi, "collections", collection)
	if err != nil {
		return nil, err
	}
	return &CollectionEntry{
		Creator:      unpacked[0].(common.Address),
		Name:         unpacked[1].(string),
		Symbol:       unpacked[2].(string),
		CreationTime: unpacked[3].(*big.Int),
		MaxSupply:    unpacked[4].(*big.Int),
		Royalty:      unpacked[5].(*big.Int),
		Exists:       unpacked[6].(bool),
	}, nil
}

func (f *factoryImpl) CreateCollection(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, name string, symbol string, baseURI string, maxSupply *big.Int, royalty *big.Int, fee *big.Int) (*Deployment, error) {
	addr, err := f.addr(chainId)
	if err != nil {
		return nil, err
	}
	receipt, err := f.chainService.Transact(c, signer, chainId, addr, fee, f.cfg.GasLimits["createCollection"], f.abi, "createCollection", name, symbol, baseURI, maxSupply, royalty)
	if err != nil {
		return nil, err
	}
	return &Deployment{
		Collection: f.createdCollection(receipt),
		Tx:         toTxResult(receipt),
	}, nil
}

// createdCollection scans the receipt for the factory's CollectionCreated
// event; the deployed address rides in the first indexed topic.
func (f *factoryImpl) createdCollection(receipt *types.Receipt) common.Address {
	eventId := f.abi.Events["CollectionCreated"].ID
	for _, l := range receipt.Logs {
		if len(l.Topics) >= 2 && l.Topics[0] == eventId {
			return common.BytesToAddress(l.Topics[1].Bytes())
		}
	}
	return common.Address{}
}
