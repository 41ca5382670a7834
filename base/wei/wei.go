// Package wei converts between display amounts of the native currency and
// their 18-decimal minimal unit. Conversions are exact: amounts are compared
// for equality on-chain, so no float is allowed on any money path.
package wei

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/core-launch/goapi/domain"
)

const nativeDecimals = 18

// ToWei converts a decimal string like "0.1" into wei. It rejects malformed
// strings, negative amounts and amounts with sub-wei precision.
func ToWei(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, xerrors.Errorf("parse %q: %w", amount, domain.ErrInvalidAmount)
	}
	if d.IsNegative() {
		return nil, xerrors.Errorf("negative amount %q: %w", amount, domain.ErrInvalidAmount)
	}
	shifted := d.Shift(nativeDecimals)
	if !shifted.IsInteger() {
		return nil, xerrors.Errorf("amount %q has sub-wei precision: %w", amount, domain.ErrInvalidAmount)
	}
	return shifted.BigInt(), nil
}

// ToPositiveWei is ToWei restricted to amounts strictly greater than zero.
func ToPositiveWei(amount string) (*big.Int, error) {
	v, err := ToWei(amount)
	if err != nil {
		return nil, err
	}
	if v.Sign() <= 0 {
		return nil, xerrors.Errorf("amount %q is not positive: %w", amount, domain.ErrInvalidAmount)
	}
	return v, nil
}

// FromWei converts wei into a normalized decimal string, e.g.
// 100000000000000000 -> "0.1".
func FromWei(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -nativeDecimals).String()
}
