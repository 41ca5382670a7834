package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/auction"
	mAuction "github.com/core-launch/goapi/domain/auction/mocks"
	"github.com/core-launch/goapi/domain/wallet"
	mWallet "github.com/core-launch/goapi/domain/wallet/mocks"
)

const testChainId = domain.ChainId(1114)

var (
	testBidder = domain.Address("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	testOwner  = domain.Address("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	testId     = auction.Id{ChainId: testChainId, Collection: domain.Address("0x2823af7e1f2f50703ed9f81ac4b23dc1e78b9e53"), TokenId: "1"}
	testTx     = &domain.TxResult{TxHash: "0xabc", BlockNumber: domain.BlockNumber(42)}
)

func openAuction() *auction.Auction {
	return &auction.Auction{
		Collection:    testId.Collection,
		TokenId:       testId.TokenId,
		Owner:         testOwner,
		IsActive:      true,
		MinBid:        "0.5",
		HighestBid:    "0",
		HighestBidder: domain.EmptyAddress,
		TotalBids:     0,
	}
}

func newUC(repo auction.Repo, signer wallet.Signer) auction.UseCase {
	return New(&AuctionUseCaseCfg{Repo: repo, Signer: signer, ChainId: testChainId})
}

func connectedSigner(address domain.Address, chainId domain.ChainId) *mWallet.Signer {
	signer := &mWallet.Signer{}
	signer.On("Session", mock.Anything).Return(&wallet.Session{Address: address, ChainId: chainId}, nil)
	return signer
}

func TestPlaceBidRefreshesSnapshot(t *testing.T) {
	c := bCtx.Background()
	before := openAuction()
	after := openAuction()
	after.HighestBid = "0.8"
	after.HighestBidder = testBidder
	after.TotalBids = 1

	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(before, nil).Once()
	repo.On("PlaceBid", mock.Anything, mock.Anything, testId, "0.8", "gm").Return(testTx, nil).Once()
	repo.On("FindOne", mock.Anything, testId).Return(after, nil).Once()
	repo.On("FindBids", mock.Anything, testId).Return([]*auction.Bid{
		{Bidder: testBidder, Amount: "0.8", Active: true, Message: "gm"},
	}, nil).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))
	view, err := uc.PlaceBid(c, testId, "0.8", "gm")
	require.NoError(t, err)
	require.Equal(t, 1, view.Auction.TotalBids)
	require.Equal(t, "0.8", view.Auction.HighestBid)
	require.True(t, view.IsHighestBidder)
	require.True(t, view.CanWithdraw)
	repo.AssertExpectations(t)
}

func TestPlaceBidBelowMinimumStillSubmitted(t *testing.T) {
	// the contract is the only judge of the minimum; a bid under the
	// advertised floor still goes out and fails remotely
	c := bCtx.Background()
	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(openAuction(), nil).Once()
	repo.On("PlaceBid", mock.Anything, mock.Anything, testId, "0.2", "").
		Return(nil, domain.ErrRemoteRejected).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))
	_, err := uc.PlaceBid(c, testId, "0.2", "")
	require.ErrorIs(t, err, domain.ErrRemoteRejected)
	repo.AssertExpectations(t)
}

func TestPlaceBidRejectsOwnerLocally(t *testing.T) {
	c := bCtx.Background()
	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(openAuction(), nil).Once()

	uc := newUC(repo, connectedSigner(testOwner, testChainId))
	_, err := uc.PlaceBid(c, testId, "1", "")
	require.ErrorIs(t, err, domain.ErrOwnerCannotBid)
	repo.AssertNotCalled(t, "PlaceBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceBidRejectsInactiveAuction(t *testing.T) {
	c := bCtx.Background()
	closed := openAuction()
	closed.IsActive = false
	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(closed, nil).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))
	_, err := uc.PlaceBid(c, testId, "1", "")
	require.ErrorIs(t, err, domain.ErrAuctionNotActive)
	repo.AssertNotCalled(t, "PlaceBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceBidRejectsBadAmount(t *testing.T) {
	c := bCtx.Background()
	repo := &mAuction.Repo{}
	uc := newUC(repo, connectedSigner(testBidder, testChainId))
	for _, amount := range []string{"0", "-1", "abc", ""} {
		_, err := uc.PlaceBid(c, testId, amount, "")
		require.ErrorIs(t, err, domain.ErrInvalidAmount, amount)
	}
	repo.AssertNotCalled(t, "PlaceBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWriteRequiresConnectedWallet(t *testing.T) {
	c := bCtx.Background()
	signer := &mWallet.Signer{}
	signer.On("Session", mock.Anything).Return(nil, domain.ErrWalletNotConnected)
	repo := &mAuction.Repo{}

	uc := newUC(repo, signer)
	_, err := uc.PlaceBid(c, testId, "1", "")
	require.ErrorIs(t, err, domain.ErrWalletNotConnected)
	repo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestWriteRequiresMatchingNetwork(t *testing.T) {
	c := bCtx.Background()
	repo := &mAuction.Repo{}
	uc := newUC(repo, connectedSigner(testBidder, domain.ChainId(1)))
	_, err := uc.PlaceBid(c, testId, "1", "")
	require.ErrorIs(t, err, domain.ErrWrongNetwork)
	repo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestSecondWriteWhileInFlightIsRefused(t *testing.T) {
	c := bCtx.Background()
	entered := make(chan struct{})
	proceed := make(chan struct{})

	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(openAuction(), nil)
	repo.On("FindBids", mock.Anything, testId).Return([]*auction.Bid{}, nil)
	repo.On("PlaceBid", mock.Anything, mock.Anything, testId, "1", "").
		Run(func(args mock.Arguments) {
			close(entered)
			<-proceed
		}).
		Return(testTx, nil).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))

	done := make(chan error, 1)
	go func() {
		_, err := uc.PlaceBid(c, testId, "1", "")
		done <- err
	}()
	<-entered

	_, err := uc.PlaceBid(c, testId, "2", "")
	require.ErrorIs(t, err, domain.ErrSubmissionInFlight)

	close(proceed)
	require.NoError(t, <-done)

	// the guard is released once the first write settles
	repo.On("PlaceBid", mock.Anything, mock.Anything, testId, "2", "").Return(testTx, nil).Once()
	_, err = uc.PlaceBid(c, testId, "2", "")
	require.NoError(t, err)
}

func TestInFlightGuardIsPerAuction(t *testing.T) {
	c := bCtx.Background()
	otherId := testId
	otherId.TokenId = "2"
	entered := make(chan struct{})
	proceed := make(chan struct{})

	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, mock.Anything).Return(openAuction(), nil)
	repo.On("FindBids", mock.Anything, mock.Anything).Return([]*auction.Bid{}, nil)
	repo.On("PlaceBid", mock.Anything, mock.Anything, testId, "1", "").
		Run(func(args mock.Arguments) {
			close(entered)
			<-proceed
		}).
		Return(testTx, nil).Once()
	repo.On("PlaceBid", mock.Anything, mock.Anything, otherId, "1", "").Return(testTx, nil).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))

	done := make(chan error, 1)
	go func() {
		_, err := uc.PlaceBid(c, testId, "1", "")
		done <- err
	}()
	<-entered

	_, err := uc.PlaceBid(c, otherId, "1", "")
	require.NoError(t, err)

	close(proceed)
	require.NoError(t, <-done)
}

func TestFailedWriteDoesNotRefresh(t *testing.T) {
	c := bCtx.Background()
	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(openAuction(), nil).Once()
	repo.On("PlaceBid", mock.Anything, mock.Anything, testId, "1", "").
		Return(nil, domain.ErrTransportFailure).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))
	view, err := uc.PlaceBid(c, testId, "1", "")
	require.ErrorIs(t, err, domain.ErrTransportFailure)
	require.Nil(t, view)
	// exactly one FindOne, for the precondition check; no post-write fetch
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindBids", mock.Anything, mock.Anything)
}

func TestAcceptBidRequiresOwner(t *testing.T) {
	c := bCtx.Background()
	snap := openAuction()
	snap.HighestBidder = testBidder
	snap.HighestBid = "0.8"
	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(snap, nil).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))
	_, err := uc.AcceptBid(c, testId)
	require.ErrorIs(t, err, domain.ErrOnlyOwnerCanAccept)
	repo.AssertNotCalled(t, "AcceptBid", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptBidRequiresActiveBid(t *testing.T) {
	c := bCtx.Background()
	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(openAuction(), nil).Once()

	uc := newUC(repo, connectedSigner(testOwner, testChainId))
	_, err := uc.AcceptBid(c, testId)
	require.ErrorIs(t, err, domain.ErrNoActiveBid)
	repo.AssertNotCalled(t, "AcceptBid", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptBidSettlesAndRefreshes(t *testing.T) {
	c := bCtx.Background()
	before := openAuction()
	before.HighestBidder = testBidder
	before.HighestBid = "0.8"
	before.TotalBids = 1
	after := openAuction()
	after.IsActive = false
	after.Owner = testBidder
	after.TotalBids = 1

	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(before, nil).Once()
	repo.On("AcceptBid", mock.Anything, mock.Anything, testId).Return(testTx, nil).Once()
	repo.On("FindOne", mock.Anything, testId).Return(after, nil).Once()
	repo.On("FindBids", mock.Anything, testId).Return([]*auction.Bid{}, nil).Once()

	uc := newUC(repo, connectedSigner(testOwner, testChainId))
	view, err := uc.AcceptBid(c, testId)
	require.NoError(t, err)
	require.False(t, view.Auction.IsActive)
	require.False(t, view.IsOwner)
	repo.AssertExpectations(t)
}

func TestWithdrawBidRequiresOwnActiveBid(t *testing.T) {
	c := bCtx.Background()
	repo := &mAuction.Repo{}
	repo.On("FindBids", mock.Anything, testId).Return([]*auction.Bid{
		{Bidder: testOwner, Amount: "0.8", Active: true},
		{Bidder: testBidder, Amount: "0.6", Active: false},
	}, nil).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))
	_, err := uc.WithdrawBid(c, testId)
	require.ErrorIs(t, err, domain.ErrNoActiveBid)
	repo.AssertNotCalled(t, "WithdrawBid", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawBidSettlesAndRefreshes(t *testing.T) {
	c := bCtx.Background()
	// the bid record stays in the history as inactive, so the bid count
	// must not move across the settle
	after := openAuction()
	after.TotalBids = 1
	repo := &mAuction.Repo{}
	repo.On("FindBids", mock.Anything, testId).Return([]*auction.Bid{
		{Bidder: testBidder, Amount: "0.8", Active: true},
	}, nil).Once()
	repo.On("WithdrawBid", mock.Anything, mock.Anything, testId).Return(testTx, nil).Once()
	repo.On("FindOne", mock.Anything, testId).Return(after, nil).Once()
	repo.On("FindBids", mock.Anything, testId).Return([]*auction.Bid{
		{Bidder: testBidder, Amount: "0.8", Active: false},
	}, nil).Once()

	uc := newUC(repo, connectedSigner(testBidder, testChainId))
	view, err := uc.WithdrawBid(c, testId)
	require.NoError(t, err)
	require.False(t, view.CanWithdraw)
	require.Equal(t, 1, view.Auction.TotalBids)
	repo.AssertExpectations(t)
}

func TestStartValidatesPayload(t *testing.T) {
	c := bCtx.Background()
	repo := &mAuction.Repo{}
	uc := newUC(repo, connectedSigner(testOwner, testChainId))

	_, err := uc.Start(c, testId, auction.StartPayload{MinBid: "nope", Duration: time.Hour})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.Start(c, testId, auction.StartPayload{MinBid: "0.1", Duration: 0})
	require.ErrorIs(t, err, domain.ErrBadParamInput)

	repo.AssertNotCalled(t, "Start", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStartSettlesAndRefreshes(t *testing.T) {
	c := bCtx.Background()
	payload := auction.StartPayload{MinBid: "0.1", Duration: 24 * time.Hour, Message: "opening"}
	started := openAuction()
	started.MinBid = "0.1"
	started.EndTime = time.Now().Add(24 * time.Hour).Unix()

	repo := &mAuction.Repo{}
	repo.On("Start", mock.Anything, mock.Anything, testId, payload).Return(testTx, nil).Once()
	repo.On("FindOne", mock.Anything, testId).Return(started, nil).Once()
	repo.On("FindBids", mock.Anything, testId).Return([]*auction.Bid{}, nil).Once()

	uc := newUC(repo, connectedSigner(testOwner, testChainId))
	view, err := uc.Start(c, testId, payload)
	require.NoError(t, err)
	require.True(t, view.Bounded)
	require.True(t, view.TimeRemaining > 0)
	repo.AssertExpectations(t)
}

func TestGetViewProjectsForViewer(t *testing.T) {
	c := bCtx.Background()
	snap := openAuction()
	snap.HighestBidder = testBidder
	snap.HighestBid = "0.8"
	snap.TotalBids = 1
	repo := &mAuction.Repo{}
	repo.On("FindOne", mock.Anything, testId).Return(snap, nil).Once()
	repo.On("FindBids", mock.Anything, testId).Return([]*auction.Bid{
		{Bidder: testBidder, Amount: "0.8", Active: true},
	}, nil).Once()

	uc := newUC(repo, &mWallet.Signer{})
	view, err := uc.GetView(c, testId, domain.Address("0xF39FD6E51AAD88F6F4CE6AB8827279CFFFB92266"))
	require.NoError(t, err)
	require.True(t, view.IsHighestBidder)
	require.True(t, view.CanBid)
	require.True(t, view.CanWithdraw)
	require.False(t, view.Bounded)
}
