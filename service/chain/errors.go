package chain

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/xerrors"

	"github.com/core-launch/goapi/domain"
)

// node responses that mean the write itself is unacceptable, as opposed to
// the transport being unreachable
var remoteRejections = []string{
	"execution reverted",
	"insufficient funds",
	"nonce too low",
	"replacement transaction underpriced",
	"already known",
	"intrinsic gas too low",
	"gas required exceeds allowance",
	"max fee per gas less than block base fee",
}

// classifySubmitError folds raw rpc and signing failures into the domain
// taxonomy while keeping the node's diagnostic text. Already classified
// errors pass through untouched.
func classifySubmitError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrUserRejected) ||
		errors.Is(err, domain.ErrWalletNotConnected) ||
		errors.Is(err, domain.ErrWrongNetwork) ||
		errors.Is(err, domain.ErrRemoteRejected) ||
		errors.Is(err, domain.ErrTransportFailure) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return xerrors.Errorf("%s: %w", err.Error(), domain.ErrTransportFailure)
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, rejection := range remoteRejections {
		if strings.Contains(lower, rejection) {
			return xerrors.Errorf("%s: %w", msg, domain.ErrRemoteRejected)
		}
	}
	return xerrors.Errorf("%s: %w", msg, domain.ErrTransportFailure)
}
