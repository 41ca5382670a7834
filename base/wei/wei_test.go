package wei

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/core-launch/goapi/domain"
)

func TestToWei(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		amount string
		wei    string
	}{
		{"0.1", "100000000000000000"},
		{"1", "1000000000000000000"},
		{"0", "0"},
		{"0.05", "50000000000000000"},
		{"1.000000000000000001", "1000000000000000001"},
		{"0.000000000000000001", "1"},
		{"123456.789", "123456789000000000000000"},
		{"0.100000000000000000000", "100000000000000000"},
	}
	for _, c := range cases {
		v, err := ToWei(c.amount)
		req.NoError(err, c.amount)
		expected, ok := new(big.Int).SetString(c.wei, 10)
		req.True(ok)
		req.Zero(expected.Cmp(v), c.amount)
	}
}

func TestToWeiRejects(t *testing.T) {
	req := require.New(t)

	for _, amount := range []string{"", "abc", "1.2.3", "-1", "-0.000001", "0.0000000000000000001"} {
		_, err := ToWei(amount)
		req.Error(err, amount)
		req.True(errors.Is(err, domain.ErrInvalidAmount), amount)
	}
}

func TestToPositiveWei(t *testing.T) {
	req := require.New(t)

	v, err := ToPositiveWei("0.1")
	req.NoError(err)
	req.Equal("100000000000000000", v.String())

	for _, amount := range []string{"0", "0.0", "-1", "x"} {
		_, err := ToPositiveWei(amount)
		req.True(errors.Is(err, domain.ErrInvalidAmount), amount)
	}
}

func TestFromWei(t *testing.T) {
	req := require.New(t)

	req.Equal("0.1", FromWei(big.NewInt(100000000000000000)))
	req.Equal("0", FromWei(big.NewInt(0)))
	req.Equal("0", FromWei(nil))
	req.Equal("0.000000000000000001", FromWei(big.NewInt(1)))

	// round trips are exact for normalized inputs
	for _, amount := range []string{"0.1", "1", "42.000000000000000042", "0.000000000000000001"} {
		v, err := ToWei(amount)
		req.NoError(err)
		req.Equal(amount, FromWei(v))
	}
}
