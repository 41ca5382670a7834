package auction

import (
	"time"

	"github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	"github.com/core-launch/goapi/domain/wallet"
)

// DefaultMinBid is the advertised minimum when the ledger cannot be read.
// Reads never block viewing: a failed fetch degrades to an open auction with
// this floor instead of an error.
const DefaultMinBid = "0.1"

// Id identifies the auction of one asset.
type Id struct {
	ChainId    domain.ChainId `json:"chainId"`
	Collection domain.Address `json:"collection"`
	TokenId    domain.TokenId `json:"tokenId"`
}

// Auction is the bidding state of one asset as last read from the ledger.
// All fields are ledger truth; nothing here is mutated locally.
type Auction struct {
	Collection    domain.Address `json:"collection"`
	TokenId       domain.TokenId `json:"tokenId"`
	Owner         domain.Address `json:"owner"`
	IsActive      bool           `json:"isActive"`
	EndTime       int64          `json:"endTime"` // unix seconds, 0 means no fixed end
	MinBid        string         `json:"minBid"`  // native currency, decimal string
	HighestBid    string         `json:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder"` // zero address means no bids yet
	TotalBids     int            `json:"totalBids"`
}

// Bid is one offer record against an auction.
type Bid struct {
	Bidder    domain.Address `json:"bidder"`
	Amount    string         `json:"amount"`
	Timestamp int64          `json:"timestamp"`
	Active    bool           `json:"active"`
	Message   string         `json:"message"`
}

// Default is the snapshot used when the ledger read fails: assume biddable
// from scratch so viewing is never blocked. Callers cannot distinguish "no
// auction yet" from "read error" through this value.
func Default(id Id) *Auction {
	return &Auction{
		Collection:    id.Collection,
		TokenId:       id.TokenId,
		Owner:         domain.EmptyAddress,
		IsActive:      true,
		EndTime:       0,
		MinBid:        DefaultMinBid,
		HighestBid:    "0",
		HighestBidder: domain.EmptyAddress,
		TotalBids:     0,
	}
}

func (a *Auction) IsOwner(viewer domain.Address) bool {
	return a.Owner.Equals(viewer)
}

func (a *Auction) IsHighestBidder(viewer domain.Address) bool {
	return !a.HighestBidder.IsEmpty() && a.HighestBidder.Equals(viewer)
}

// TimeRemaining reports how long the auction stays open. The second return
// is false when the auction has no fixed end.
func (a *Auction) TimeRemaining(now time.Time) (time.Duration, bool) {
	if a.EndTime == 0 {
		return 0, false
	}
	remaining := time.Duration(a.EndTime-now.Unix()) * time.Second
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

func (a *Auction) CanBid(viewer domain.Address) bool {
	return a.IsActive && !a.IsOwner(viewer)
}

func (a *Auction) CanAccept(b *Bid, viewer domain.Address) bool {
	return a.IsOwner(viewer) && b.Active
}

func (b *Bid) CanWithdraw(viewer domain.Address) bool {
	return b.Active && b.Bidder.Equals(viewer)
}

// View is the projection rendered to a viewer: the latest snapshot plus the
// predicates derived from it. It is rebuilt from a fresh snapshot after
// every settled write, never patched in place.
type View struct {
	Auction         *Auction       `json:"auction"`
	Bids            []*Bid         `json:"bids"`
	Viewer          domain.Address `json:"viewer"`
	IsOwner         bool           `json:"isOwner"`
	IsHighestBidder bool           `json:"isHighestBidder"`
	CanBid          bool           `json:"canBid"`
	CanWithdraw     bool           `json:"canWithdraw"`
	TimeRemaining   int64          `json:"timeRemaining"` // seconds, meaningful when Bounded
	Bounded         bool           `json:"bounded"`
}

// StartPayload opens bidding for an asset the signer owns.
type StartPayload struct {
	MinBid   string        `json:"minBid" validate:"required"`
	Duration time.Duration `json:"duration"`
	Message  string        `json:"message"`
}

// Repo is the ledger gateway. Reads degrade instead of failing: FindOne
// falls back to Default and FindBids to an empty list on transport or decode
// failures. Writes settle before returning; failures carry one of the
// domain error categories.
type Repo interface {
	FindOne(c ctx.Ctx, id Id) (*Auction, error)
	FindBids(c ctx.Ctx, id Id) ([]*Bid, error)
	Start(c ctx.Ctx, signer wallet.Signer, id Id, payload StartPayload) (*domain.TxResult, error)
	PlaceBid(c ctx.Ctx, signer wallet.Signer, id Id, amount string, message string) (*domain.TxResult, error)
	AcceptBid(c ctx.Ctx, signer wallet.Signer, id Id) (*domain.TxResult, error)
	WithdrawBid(c ctx.Ctx, signer wallet.Signer, id Id) (*domain.TxResult, error)
}

// UseCase coordinates viewer actions against one auction at a time:
// precondition gating before any ledger call, a single in-flight write per
// auction, and a full snapshot refresh once a write settles.
type UseCase interface {
	GetView(c ctx.Ctx, id Id, viewer domain.Address) (*View, error)
	GetBids(c ctx.Ctx, id Id) ([]*Bid, error)
	Start(c ctx.Ctx, id Id, payload StartPayload) (*View, error)
	PlaceBid(c ctx.Ctx, id Id, amount string, message string) (*View, error)
	AcceptBid(c ctx.Ctx, id Id) (*View, error)
	WithdrawBid(c ctx.Ctx, id Id) (*View, error)
}
