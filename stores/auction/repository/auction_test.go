package repository

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/auction"
	"github.com/core-launch/goapi/service/chain/contract"
	mContract "github.com/core-launch/goapi/service/chain/contract/mocks"
)

var testId = auction.Id{
	ChainId:    1114,
	Collection: "0x2823af7e1f2f50703ed9f81ac4b23dc1e78b9e53",
	TokenId:    "3",
}

func TestFindOne(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	bidding := new(mContract.Bidding)
	bidding.On("GetBiddingInfo", mock.Anything, testId.ChainId, mock.Anything, big.NewInt(3)).Return(&contract.BiddingInfo{
		Owner:         common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		MinBid:        big.NewInt(100000000000000000),
		HighestBid:    big.NewInt(500000000000000000),
		HighestBidder: common.HexToAddress("0x00000000000000000000000000000000000000bb"),
		EndTime:       big.NewInt(1700000000),
		IsActive:      true,
		TotalBids:     big.NewInt(2),
	}, nil)

	repo := NewAuctionRepo(bidding)
	a, err := repo.FindOne(ctx, testId)
	req.NoError(err)
	req.Equal(domain.Address("0x00000000000000000000000000000000000000aa"), a.Owner)
	req.True(a.IsActive)
	req.Equal(int64(1700000000), a.EndTime)
	req.Equal("0.1", a.MinBid)
	req.Equal("0.5", a.HighestBid)
	req.Equal(domain.Address("0x00000000000000000000000000000000000000bb"), a.HighestBidder)
	req.Equal(2, a.TotalBids)
}

func TestFindOneFallsBackOnTransportFailure(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	bidding := new(mContract.Bidding)
	bidding.On("GetBiddingInfo", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	repo := NewAuctionRepo(bidding)
	a, err := repo.FindOne(ctx, testId)
	req.NoError(err)
	req.Equal(auction.Default(testId), a)
}

func TestFindOneIsIdempotent(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	bidding := new(mContract.Bidding)
	bidding.On("GetBiddingInfo", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&contract.BiddingInfo{
		Owner:         common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		MinBid:        big.NewInt(100000000000000000),
		HighestBid:    big.NewInt(0),
		HighestBidder: common.Address{},
		EndTime:       big.NewInt(0),
		IsActive:      true,
		TotalBids:     big.NewInt(0),
	}, nil)

	repo := NewAuctionRepo(bidding)
	first, err := repo.FindOne(ctx, testId)
	req.NoError(err)
	second, err := repo.FindOne(ctx, testId)
	req.NoError(err)
	req.Equal(first, second)
}

func TestFindBids(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	bidding := new(mContract.Bidding)
	bidding.On("GetBids", mock.Anything, testId.ChainId, mock.Anything, big.NewInt(3)).Return([]*contract.BidEntry{
		{
			Bidder:    common.HexToAddress("0x00000000000000000000000000000000000000bb"),
			Amount:    big.NewInt(500000000000000000),
			Timestamp: big.NewInt(1699999999),
			Active:    true,
			Message:   "gm",
		},
	}, nil)

	repo := NewAuctionRepo(bidding)
	bids, err := repo.FindBids(ctx, testId)
	req.NoError(err)
	req.Len(bids, 1)
	req.Equal("0.5", bids[0].Amount)
	req.True(bids[0].Active)
	req.Equal("gm", bids[0].Message)
}

func TestFindBidsDegradesToEmpty(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	bidding := new(mContract.Bidding)
	bidding.On("GetBids", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	repo := NewAuctionRepo(bidding)
	bids, err := repo.FindBids(ctx, testId)
	req.NoError(err)
	req.Empty(bids)
}

func TestPlaceBidRejectsBadAmountLocally(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	bidding := new(mContract.Bidding)
	repo := NewAuctionRepo(bidding)

	for _, amount := range []string{"", "abc", "0", "-1"} {
		_, err := repo.PlaceBid(ctx, nil, testId, amount, "")
		req.True(errors.Is(err, domain.ErrInvalidAmount), amount)
	}
	bidding.AssertNotCalled(t, "PlaceBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWritesRejectMalformedTokenId(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	bidding := new(mContract.Bidding)
	repo := NewAuctionRepo(bidding)

	badId := auction.Id{ChainId: 1114, Collection: testId.Collection, TokenId: "x"}
	_, err := repo.PlaceBid(ctx, nil, badId, "0.1", "")
	req.True(errors.Is(err, domain.ErrBadParamInput))
	_, err = repo.AcceptBid(ctx, nil, badId)
	req.True(errors.Is(err, domain.ErrBadParamInput))
	_, err = repo.WithdrawBid(ctx, nil, badId)
	req.True(errors.Is(err, domain.ErrBadParamInput))
}
