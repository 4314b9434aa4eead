package auction

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/domain"
)

type auctionSuite struct {
	suite.Suite
}

func TestAuction(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

func validTerms() Terms {
	return Terms{
		Quantity:       1,
		Currency:       domain.NativeCurrency,
		MinPrice:       big.NewInt(100),
		BuyNowPrice:    big.NewInt(10000),
		BidIncreaseBps: 1000,
		BidPeriod:      86400,
	}
}

func (s *auctionSuite) TestValidate() {
	tests := []struct {
		desc   string
		modify func(*Terms)
		err    error
	}{
		{"valid", func(t *Terms) {}, nil},
		{"zero price", func(t *Terms) { t.MinPrice = big.NewInt(0) }, ErrPriceZero},
		{"nil price", func(t *Terms) { t.MinPrice = nil }, ErrPriceZero},
		{"min price above 80%", func(t *Terms) { t.MinPrice = big.NewInt(8001) }, ErrMinPriceTooHigh},
		{"min price at 80%", func(t *Terms) { t.MinPrice = big.NewInt(8000) }, nil},
		{"buy now disabled", func(t *Terms) { t.BuyNowPrice = big.NewInt(0); t.MinPrice = big.NewInt(1 << 40) }, nil},
		{"sale exempt from 80%", func(t *Terms) { t.IsSale = true; t.MinPrice = big.NewInt(10000) }, nil},
		{"fee mismatch", func(t *Terms) { t.FeeRecipients = []domain.Address{"0xf1"} }, ErrFeeLengthMismatch},
		{"fee over maximum", func(t *Terms) {
			t.FeeRecipients = []domain.Address{"0xf1", "0xf2"}
			t.FeeBps = []int64{5000, 5001}
		}, ErrFeesExceedMaximum},
		{"increase too low", func(t *Terms) { t.BidIncreaseBps = 50 }, ErrBidIncreaseTooLow},
		{"negative quantity", func(t *Terms) { t.Quantity = -1 }, ErrQuantityZero},
		{"zero period", func(t *Terms) { t.BidPeriod = 0 }, ErrBidPeriodZero},
		{"sale needs no period", func(t *Terms) { t.IsSale = true; t.BidPeriod = 0 }, nil},
	}
	for _, t := range tests {
		terms := validTerms()
		t.modify(&terms)
		err := terms.Validate(MinimumBidIncreaseBps)
		if t.err == nil {
			s.NoError(err, t.desc)
		} else {
			s.Equal(t.err, err, t.desc)
			s.True(errors.Is(err, domain.ErrValidation), t.desc)
		}
	}
}

func (s *auctionSuite) TestThreshold() {
	a := &Auction{MinPrice: big.NewInt(100), BidIncreaseBps: 1000, HighestBid: new(big.Int)}
	s.Equal("100", a.Threshold().String())

	a.HighestBid = big.NewInt(100)
	a.HighestBidder = "0xb1"
	s.Equal("110", a.Threshold().String())

	a.HighestBid = big.NewInt(109)
	s.Equal("119", a.Threshold().String())
}

func (s *auctionSuite) TestClone() {
	a := &Auction{
		Key:           NewKey("0xABC", "1"),
		MinPrice:      big.NewInt(100),
		HighestBid:    big.NewInt(5),
		FeeRecipients: []domain.Address{"0xf1"},
		FeeBps:        []int64{100},
	}
	b := a.Clone()
	b.MinPrice.SetInt64(1)
	b.HighestBid.SetInt64(1)
	b.FeeBps[0] = 1
	s.Equal("100", a.MinPrice.String())
	s.Equal("5", a.HighestBid.String())
	s.Equal(int64(100), a.FeeBps[0])
	s.Equal(domain.Address("0xabc"), b.Collection)
	s.Equal("0xabc:1", b.Key.String())
	s.Equal("0", b.Clone().BuyNowPrice.String())
}

func (s *auctionSuite) TestStates() {
	a := &Auction{HighestBid: new(big.Int)}
	s.False(a.IsConfigured())
	s.False(a.IsSellerActive())
	s.False(a.ReachesBuyNow(big.NewInt(1)))

	a.Seller = "0xs"
	a.Holder = "0xS"
	a.MinPrice = big.NewInt(100)
	a.BuyNowPrice = big.NewInt(200)
	s.True(a.IsSellerActive())
	s.True(a.ReachesMinPrice(big.NewInt(100)))
	s.False(a.ReachesBuyNow(big.NewInt(199)))
	s.True(a.ReachesBuyNow(big.NewInt(200)))

	a.EndTime = 1000
	s.False(a.IsEnded(999))
	s.True(a.IsEnded(1000))

	a.HighestBid = big.NewInt(1)
	a.HighestBidder = "0xb"
	s.Equal(domain.Address("0xb"), a.ItemRecipient())
	a.Recipient = "0xr"
	s.Equal(domain.Address("0xr"), a.ItemRecipient())
	a.ClearBid()
	s.False(a.HasBid())
	s.True(a.HighestBidder.IsEmpty())
	s.True(a.Recipient.IsEmpty())
}
