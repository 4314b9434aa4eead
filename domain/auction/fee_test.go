package auction

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/domain"
)

type feeSuite struct {
	suite.Suite
}

func TestFee(t *testing.T) {
	suite.Run(t, new(feeSuite))
}

func (s *feeSuite) TestSplitTwoRecipients() {
	split, err := SplitFees(big.NewInt(100000), []domain.Address{"0xf1", "0xf2"}, []int64{1000, 100})
	s.Require().NoError(err)
	s.Equal("10000", split.Fees[0].Amount.String())
	s.Equal("1000", split.Fees[1].Amount.String())
	s.Equal("89000", split.Seller.String())
	s.Equal(domain.Address("0xf1"), split.Fees[0].Recipient)
}

func (s *feeSuite) TestSplitFloorsToSeller() {
	split, err := SplitFees(big.NewInt(999), []domain.Address{"0xf1", "0xf2", "0xf3"}, []int64{3333, 3333, 3333})
	s.Require().NoError(err)
	sum := new(big.Int).Set(split.Seller)
	for _, f := range split.Fees {
		s.Equal("332", f.Amount.String())
		sum.Add(sum, f.Amount)
	}
	s.Equal("3", split.Seller.String())
	s.Equal("999", sum.String())
}

func (s *feeSuite) TestSplitConservation() {
	totals := []int64{0, 1, 7, 99, 10001, 123456789}
	bps := [][]int64{{}, {10000}, {1, 2, 3}, {5000, 4999, 1}, {2500, 2500, 2500, 2499}}
	for _, total := range totals {
		for _, b := range bps {
			recipients := make([]domain.Address, len(b))
			for i := range recipients {
				recipients[i] = domain.Address("0xf")
			}
			split, err := SplitFees(big.NewInt(total), recipients, b)
			s.Require().NoError(err)
			sum := new(big.Int).Set(split.Seller)
			for _, f := range split.Fees {
				s.True(f.Amount.Sign() >= 0)
				sum.Add(sum, f.Amount)
			}
			s.Equal(big.NewInt(total).String(), sum.String())
			s.True(split.Seller.Sign() >= 0)
		}
	}
}

func (s *feeSuite) TestSplitDoesNotMutateTotal() {
	total := big.NewInt(500)
	_, err := SplitFees(total, []domain.Address{"0xf1"}, []int64{1000})
	s.NoError(err)
	s.Equal("500", total.String())
}

func (s *feeSuite) TestValidateFees() {
	s.Equal(ErrFeeLengthMismatch, ValidateFees([]domain.Address{"0xf1"}, nil))
	s.Equal(ErrFeesExceedMaximum, ValidateFees([]domain.Address{"0xf1", "0xf2"}, []int64{9000, 1001}))
	s.Equal(ErrNegativeFee, ValidateFees([]domain.Address{"0xf1"}, []int64{-1}))
	s.NoError(ValidateFees([]domain.Address{"0xf1", "0xf2"}, []int64{9000, 1000}))
	s.NoError(ValidateFees(nil, nil))
}
