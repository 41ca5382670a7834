package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request errors, caught before any ledger call
	ErrInvalidAddress = errors.New("Invalid address")
	ErrInvalidAmount  = errors.New("invalid amount")

	// precondition errors, recoverable by user action
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrWrongNetwork       = errors.New("wrong network")
	ErrOwnerCannotBid     = errors.New("owner cannot bid on own asset")
	ErrOnlyOwnerCanAccept = errors.New("only the owner can accept bids")
	ErrAuctionNotActive   = errors.New("auction is not active")
	ErrNoActiveBid        = errors.New("no active bid")

	// one write in flight per auction view
	ErrSubmissionInFlight = errors.New("another submission is in flight")

	// terminal write failures, never retried automatically
	ErrUserRejected     = errors.New("signer rejected the transaction")
	ErrRemoteRejected   = errors.New("transaction rejected by the ledger")
	ErrTransportFailure = errors.New("ledger transport failure")

	ErrInvalidChainId = errors.New("invalid chain id")
)
