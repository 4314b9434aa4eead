package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big0     = big.NewInt(0)
	Big1     = big.NewInt(1)
	Big10    = big.NewInt(10)
	BpsTotal = big.NewInt(10000)
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeCurrency marks amounts paid in the chain's native value instead of a token
const NativeCurrency = EmptyAddress

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) IsNative() bool {
	return a.Equals(NativeCurrency)
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToBigInt parses a decimal token id
func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid id %s", i)
	}
	return id, nil
}

// ParseAmount parses a non negative decimal amount
func ParseAmount(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return n, nil
}

// AmountString formats an amount, nil reads as zero
func AmountString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}

// CopyAmount returns a copy of n, nil reads as zero
func CopyAmount(n *big.Int) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n)
}

func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, err := ParseAmount(n)
		if err != nil {
			return nil, err
		}
		bns = append(bns, bn)
	}
	return bns, nil
}
