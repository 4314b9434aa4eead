package auction

import (
	"math/big"

	"github.com/x-xyz/goauction/domain"
)

// MaxFeeBps is the cap on the sum of all fee shares
const MaxFeeBps = 10000

// Share is one payee's cut of a settlement
type Share struct {
	Recipient domain.Address
	Amount    *big.Int
}

// FeeSplit is the outcome of splitting a winning bid
type FeeSplit struct {
	Fees   []Share
	Seller *big.Int
}

// ValidateFees checks the parallel fee tables
func ValidateFees(recipients []domain.Address, bps []int64) error {
	if len(recipients) != len(bps) {
		return ErrFeeLengthMismatch
	}
	var sum int64
	for _, b := range bps {
		if b < 0 {
			return ErrNegativeFee
		}
		sum += b
		if sum > MaxFeeBps {
			return ErrFeesExceedMaximum
		}
	}
	return nil
}

// SplitFees gives recipient i floor(total*bps[i]/10000) in order, the seller
// keeps the rest. The shares always add back up to total.
func SplitFees(total *big.Int, recipients []domain.Address, bps []int64) (*FeeSplit, error) {
	if err := ValidateFees(recipients, bps); err != nil {
		return nil, err
	}

	seller := domain.CopyAmount(total)
	fees := make([]Share, 0, len(recipients))
	for i, r := range recipients {
		fee := new(big.Int).Mul(domain.CopyAmount(total), big.NewInt(bps[i]))
		fee.Div(fee, domain.BpsTotal)
		seller.Sub(seller, fee)
		fees = append(fees, Share{Recipient: r, Amount: fee})
	}
	return &FeeSplit{Fees: fees, Seller: seller}, nil
}
