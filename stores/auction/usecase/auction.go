package usecase

import (
	"sync"
	"time"

	bCtx "github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/base/log"
	"github.com/core-launch/goapi/base/wei"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/auction"
	"github.com/core-launch/goapi/domain/wallet"
)

type AuctionUseCaseCfg struct {
	Repo   auction.Repo
	Signer wallet.Signer
	// ChainId is the network writes are allowed on
	ChainId domain.ChainId
}

// auctionUC mediates viewer actions against auctions. Per auction it allows
// a single write in flight; while one is pending every further action on
// that auction is refused instead of queued. The projection a caller sees is
// always the last fetched snapshot: failed writes change nothing, settled
// writes trigger a full re-fetch.
type auctionUC struct {
	repo    auction.Repo
	signer  wallet.Signer
	chainId domain.ChainId

	mu       sync.Mutex
	inFlight map[auction.Id]struct{}
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &auctionUC{
		repo:     cfg.Repo,
		signer:   cfg.Signer,
		chainId:  cfg.ChainId,
		inFlight: make(map[auction.Id]struct{}),
	}
}

func (im *auctionUC) GetView(c bCtx.Ctx, id auction.Id, viewer domain.Address) (*auction.View, error) {
	snap, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	bids, err := im.repo.FindBids(c, id)
	if err != nil {
		return nil, err
	}
	return project(snap, bids, viewer), nil
}

func (im *auctionUC) GetBids(c bCtx.Ctx, id auction.Id) ([]*auction.Bid, error) {
	return im.repo.FindBids(c, id)
}

func (im *auctionUC) Start(c bCtx.Ctx, id auction.Id, payload auction.StartPayload) (*auction.View, error) {
	session, err := im.session(c, id)
	if err != nil {
		return nil, err
	}
	if _, err := wei.ToPositiveWei(payload.MinBid); err != nil {
		return nil, err
	}
	if payload.Duration <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if err := im.acquire(id); err != nil {
		return nil, err
	}
	defer im.release(id)
	if _, err := im.repo.Start(c, im.signer, id, payload); err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Warn("start failed")
		return nil, err
	}
	return im.refresh(c, id, session.Address)
}

func (im *auctionUC) PlaceBid(c bCtx.Ctx, id auction.Id, amount string, message string) (*auction.View, error) {
	session, err := im.session(c, id)
	if err != nil {
		return nil, err
	}
	// only amount > 0 is checked locally; whether the bid clears the
	// auction's minimum is left entirely to the contract
	if _, err := wei.ToPositiveWei(amount); err != nil {
		return nil, err
	}
	snap, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if snap.IsOwner(session.Address) {
		return nil, domain.ErrOwnerCannotBid
	}
	if !snap.IsActive {
		return nil, domain.ErrAuctionNotActive
	}
	if err := im.acquire(id); err != nil {
		return nil, err
	}
	defer im.release(id)
	if _, err := im.repo.PlaceBid(c, im.signer, id, amount, message); err != nil {
		c.WithFields(log.Fields{"err": err, "id": id, "amount": amount}).Warn("placeBid failed")
		return nil, err
	}
	return im.refresh(c, id, session.Address)
}

func (im *auctionUC) AcceptBid(c bCtx.Ctx, id auction.Id) (*auction.View, error) {
	session, err := im.session(c, id)
	if err != nil {
		return nil, err
	}
	snap, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if !snap.IsOwner(session.Address) {
		return nil, domain.ErrOnlyOwnerCanAccept
	}
	if snap.HighestBidder.IsEmpty() {
		return nil, domain.ErrNoActiveBid
	}
	if err := im.acquire(id); err != nil {
		return nil, err
	}
	defer im.release(id)
	if _, err := im.repo.AcceptBid(c, im.signer, id); err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Warn("acceptBid failed")
		return nil, err
	}
	return im.refresh(c, id, session.Address)
}

func (im *auctionUC) WithdrawBid(c bCtx.Ctx, id auction.Id) (*auction.View, error) {
	session, err := im.session(c, id)
	if err != nil {
		return nil, err
	}
	bids, err := im.repo.FindBids(c, id)
	if err != nil {
		return nil, err
	}
	if !hasActiveBid(bids, session.Address) {
		return nil, domain.ErrNoActiveBid
	}
	if err := im.acquire(id); err != nil {
		return nil, err
	}
	defer im.release(id)
	if _, err := im.repo.WithdrawBid(c, im.signer, id); err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Warn("withdrawBid failed")
		return nil, err
	}
	return im.refresh(c, id, session.Address)
}

// session re-derives the signing identity for a write and fails fast when
// the wallet sits on the wrong network.
func (im *auctionUC) session(c bCtx.Ctx, id auction.Id) (*wallet.Session, error) {
	session, err := im.signer.Session(c)
	if err != nil {
		return nil, err
	}
	if session.ChainId != im.chainId || id.ChainId != im.chainId {
		return nil, domain.ErrWrongNetwork
	}
	return session, nil
}

func (im *auctionUC) acquire(id auction.Id) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if _, ok := im.inFlight[id]; ok {
		return domain.ErrSubmissionInFlight
	}
	im.inFlight[id] = struct{}{}
	return nil
}

func (im *auctionUC) release(id auction.Id) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.inFlight, id)
}

// refresh replaces the projection with a fresh snapshot after a settled
// write.
func (im *auctionUC) refresh(c bCtx.Ctx, id auction.Id, viewer domain.Address) (*auction.View, error) {
	snap, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	bids, err := im.repo.FindBids(c, id)
	if err != nil {
		return nil, err
	}
	return project(snap, bids, viewer), nil
}

func project(snap *auction.Auction, bids []*auction.Bid, viewer domain.Address) *auction.View {
	remaining, bounded := snap.TimeRemaining(time.Now())
	return &auction.View{
		Auction:         snap,
		Bids:            bids,
		Viewer:          viewer,
		IsOwner:         snap.IsOwner(viewer),
		IsHighestBidder: snap.IsHighestBidder(viewer),
		CanBid:          snap.CanBid(viewer),
		CanWithdraw:     hasActiveBid(bids, viewer),
		TimeRemaining:   int64(remaining.Seconds()),
		Bounded:         bounded,
	}
}

func hasActiveBid(bids []*auction.Bid, viewer domain.Address) bool {
	for _, b := range bids {
		if b.CanWithdraw(viewer) {
			return true
		}
	}
	return false
}
