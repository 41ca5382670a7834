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

// BiddingInfo is the raw decoded return of getBiddingInfo.
type BiddingInfo struct {
	Owner         common.Address
	MinBid        *big.Int
	HighestBid    *big.Int
	HighestBidder common.Address
	EndTime       *big.Int
	IsActive      bool
	TotalBids     *big.Int
}

// BidEntry is one decoded row of getBids.
type BidEntry struct {
	Bidder    common.Address
	Amount    *big.Int
	Timestamp *big.Int
	Active    bool
	Message   string
}

type Bidding interface {
	GetBiddingInfo(c bCtx.Ctx, chainId domain.ChainId, collection common.Address, tokenId *big.Int) (*BiddingInfo, error)
	GetBids(c bCtx.Ctx, chainId domain.ChainId, collection common.Address, tokenId *big.Int) ([]*BidEntry, error)
	StartBidding(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, collection common.Address, tokenId *big.Int, minBid *big.Int, duration *big.Int, message string) (*domain.TxResult, error)
	PlaceBid(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, collection common.Address, tokenId *big.Int, amount *big.Int, message string) (*domain.TxResult, error)
	AcceptBid(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, collection common.Address, tokenId *big.Int) (*domain.TxResult, error)
	WithdrawBid(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, collection common.Address, tokenId *big.Int) (*domain.TxResult, error)
}

type BiddingCfg struct {
	Addresses map[domain.ChainId]domain.Address
	// GasLimits per method, 0 or absent means estimate on submit
	GasLimits map[string]uint64
}

type biddingImpl struct {
	chainService chain.Client
	abi          ethabi.ABI
	cfg          *BiddingCfg
}

func NewBidding(chainService chain.Client, cfg *BiddingCfg) Bidding {
	return &biddingImpl{
		chainService: chainService,
		abi:          baseabi.NFTBiddingABI,
		cfg:          cfg,
	}
}

func (b *biddingImpl) addr(chainId domain.ChainId) (common.Address, error) {
	a, ok := b.cfg.Addresses[chainId]
	if !ok {
		return common.Address{}, chain.ErrUnsupportedChain
	}
	return common.HexToAddress(string(a)), nil
}

func (b *biddingImpl) GetBiddingInfo(c bCtx.Ctx, chainId domain.ChainId, collection common.Address, tokenId *big.Int) (*BiddingInfo, error) {
	addr, err := b.addr(chainId)
	if err != nil {
		return nil, err
	}
	unpacked, err := b.chainService.Call(c, chainId, addr, b.abi, "getBiddingInfo", collection, tokenId)
	if err != nil {
		return nil, err
	}
	return &BiddingInfo{
		Owner:         unpacked[0].(common.Address),
		MinBid:        unpacked[1].(*big.Int),
		HighestBid:    unpacked[2].(*big.Int),
		HighestBidder: unpacked[3].(common.Address),
		EndTime:       unpacked[4].(*big.Int),
		IsActive:      unpacked[5].(bool),
		TotalBids:     unpacked[6].(*big.Int),
	}, nil
}

func (b *biddingImpl) GetBids(c bCtx.Ctx, chainId domain.ChainId, collection common.Address, tokenId *big.Int) ([]*BidEntry, error) {
	addr, err := b.addr(chainId)
	if err != nil {
		return nil, err
	}
	unpacked, err := b.chainService.Call(c, chainId, addr, b.abi, "getBids", collection, tokenId)
	if err != nil {
		return nil, err
	}
	bidders := unpacked[0].([]common.Address)
	amounts := unpacked[1].([]*big.Int)
	timestamps := unpacked[2].([]*big.Int)
	actives := unpacked[3].([]bool)
	messages := unpacked[4].([]string)

	entries := make([]*BidEntry, 0, len(bidders))
	for i := range bidders {
		entries = append(entries, &BidEntry{
			Bidder:    bidders[i],
			Amount:    amounts[i],
			Timestamp: timestamps[i],
			Active:    actives[i],
			Message:   messages[i],
		})
	}
	return entries, nil
}

func (b *biddingImpl) StartBidding(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, collection common.Address, tokenId *big.Int, minBid *big.Int, duration *big.Int, message string) (*domain.TxResult, error) {
	addr, err := b.addr(chainId)
	if err != nil {
		return nil, err
	}
	receipt, err := b.chainService.Transact(c, signer, chainId, addr, nil, b.cfg.GasLimits["startBidding"], b.abi, "startBidding", collection, tokenId, minBid, duration, message)
	if err != nil {
		return nil, err
	}
	return toTxResult(receipt), nil
}

func (b *biddingImpl) PlaceBid(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, collection common.Address, tokenId *big.Int, amount *big.Int, message string) (*domain.TxResult, error) {
	addr, err := b.addr(chainId)
	if err != nil {
		return nil, err
	}
	// the bid amount rides along as transaction value
	receipt, err := b.chainService.Transact(c, signer, chainId, addr, amount, b.cfg.GasLimits["placeBid"], b.abi, "placeBid", collection, tokenId, message)
	if err != nil {
		return nil, err
	}
	return toTxResult(receipt), nil
}

func (b *biddingImpl) AcceptBid(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, collection common.Address, tokenId *big.Int) (*domain.TxResult, error) {
	addr, err := b.addr(chainId)
	if err != nil {
		return nil, err
	}
	receipt, err := b.chainService.Transact(c, signer, chainId, addr, nil, b.cfg.GasLimits["acceptBid"], b.abi, "acceptBid", collection, tokenId)
	if err != nil {
		return nil, err
	}
	return toTxResult(receipt), nil
}

func (b *biddingImpl) WithdrawBid(c bCtx.Ctx, signer wallet.Signer, chainId domain.ChainId, collection common.Address, tokenId *big.Int) (*domain.TxResult, error) {
	addr, err := b.addr(chainId)
	if err != nil {
		return nil, err
	}
	receipt, err := b.chainService.Transact(c, signer, chainId, addr, nil, b.cfg.GasLimits["withdrawBid"], b.abi, "withdrawBid", collection, tokenId)
	if err != nil {
		return nil, err
	}
	return toTxResult(receipt), nil
}

func toTxResult(receipt *types.Receipt) *domain.TxResult {
	res := &domain.TxResult{
		TxHash: domain.TxHash(receipt.TxHash.Hex()),
	}
	if receipt.BlockNumber != nil {
		res.BlockNumber = domain.BlockNumber(receipt.BlockNumber.Uint64())
	}
	return res
}
