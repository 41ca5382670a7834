package repository

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/base/log"
	"github.com/core-launch/goapi/base/wei"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/auction"
	"github.com/core-launch/goapi/domain/wallet"
	"github.com/core-launch/goapi/service/chain/contract"
)

type auctionRepo struct {
	bidding contract.Bidding
}

// NewAuctionRepo builds the ledger gateway over the bidding contract.
func NewAuctionRepo(bidding contract.Bidding) auction.Repo {
	return &auctionRepo{bidding}
}

// FindOne reads the auction snapshot. Transport and decode failures degrade
// to the default open snapshot instead of an error: viewing is never
// blocked, at the cost of not being able to tell "no auction yet" from
// "read failed".
func (r *auctionRepo) FindOne(c bCtx.Ctx, id auction.Id) (*auction.Auction, error) {
	tokenId, err := id.TokenId.ToBigInt()
	if err != nil {
		return nil, xerrors.Errorf("token id %s: %w", id.TokenId, domain.ErrBadParamInput)
	}
	info, err := r.bidding.GetBiddingInfo(c, id.ChainId, common.HexToAddress(string(id.Collection)), tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Warn("getBiddingInfo failed, serving default snapshot")
		return auction.Default(id), nil
	}
	return &auction.Auction{
		Collection:    id.Collection,
		TokenId:       id.TokenId,
		Owner:         domain.Address(info.Owner.Hex()).ToLower(),
		IsActive:      info.IsActive,
		EndTime:       info.EndTime.Int64(),
		MinBid:        wei.FromWei(info.MinBid),
		HighestBid:    wei.FromWei(info.HighestBid),
		HighestBidder: domain.Address(info.HighestBidder.Hex()).ToLower(),
		TotalBids:     int(info.TotalBids.Int64()),
	}, nil
}

// FindBids reads the bid history, oldest first as the contract stores it.
// Failures degrade to an empty history.
func (r *auctionRepo) FindBids(c bCtx.Ctx, id auction.Id) ([]*auction.Bid, error) {
	tokenId, err := id.TokenId.ToBigInt()
	if err != nil {
		return nil, xerrors.Errorf("token id %s: %w", id.TokenId, domain.ErrBadParamInput)
	}
	entries, err := r.bidding.GetBids(c, id.ChainId, common.HexToAddress(string(id.Collection)), tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Warn("getBids failed, serving empty history")
		return []*auction.Bid{}, nil
	}
	bids := make([]*auction.Bid, 0, len(entries))
	for _, e := range entries {
		bids = append(bids, &auction.Bid{
			Bidder:    domain.Address(e.Bidder.Hex()).ToLower(),
			Amount:    wei.FromWei(e.Amount),
			Timestamp: e.Timestamp.Int64(),
			Active:    e.Active,
			Message:   e.Message,
		})
	}
	return bids, nil
}

func (r *auctionRepo) Start(c bCtx.Ctx, signer wallet.Signer, id auction.Id, payload auction.StartPayload) (*domain.TxResult, error) {
	tokenId, err := id.TokenId.ToBigInt()
	if err != nil {
		return nil, xerrors.Errorf("token id %s: %w", id.TokenId, domain.ErrBadParamInput)
	}
	minBid, err := wei.ToPositiveWei(payload.MinBid)
	if err != nil {
		return nil, err
	}
	duration := big.NewInt(int64(payload.Duration.Seconds()))
	return r.bidding.StartBidding(c, signer, id.ChainId, common.HexToAddress(string(id.Collection)), tokenId, minBid, duration, payload.Message)
}

// PlaceBid submits a bid carrying amount as transaction value. The amount
// must parse to a positive exact wei value; that is the only local check,
// the minimum bid is enforced by the contract alone.
func (r *auctionRepo) PlaceBid(c bCtx.Ctx, signer wallet.Signer, id auction.Id, amount string, message string) (*domain.TxResult, error) {
	tokenId, err := id.TokenId.ToBigInt()
	if err != nil {
		return nil, xerrors.Errorf("token id %s: %w", id.TokenId, domain.ErrBadParamInput)
	}
	amountWei, err := wei.ToPositiveWei(amount)
	if err != nil {
		return nil, err
	}
	return r.bidding.PlaceBid(c, signer, id.ChainId, common.HexToAddress(string(id.Collection)), tokenId, amountWei, message)
}

func (r *auctionRepo) AcceptBid(c bCtx.Ctx, signer wallet.Signer, id auction.Id) (*domain.TxResult, error) {
	tokenId, err := id.TokenId.ToBigInt()
	if err != nil {
		return nil, xerrors.Errorf("token id %s: %w", id.TokenId, domain.ErrBadParamInput)
	}
	return r.bidding.AcceptBid(c, signer, id.ChainId, common.HexToAddress(string(id.Collection)), tokenId)
}

func (r *auctionRepo) WithdrawBid(c bCtx.Ctx, signer wallet.Signer, id auction.Id) (*domain.TxResult, error) {
	tokenId, err := id.TokenId.ToBigInt()
	if err != nil {
		return nil, xerrors.Errorf("token id %s: %w", id.TokenId, domain.ErrBadParamInput)
	}
	return r.bidding.WithdrawBid(c, signer, id.ChainId, common.HexToAddress(string(id.Collection)), tokenId)
}
