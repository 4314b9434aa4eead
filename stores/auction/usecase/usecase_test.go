package usecase

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/credit"
	"github.com/x-xyz/goauction/domain/erc1155"
	"github.com/x-xyz/goauction/service/keeper"
	"github.com/x-xyz/goauction/service/wallet"
	activityRepository "github.com/x-xyz/goauction/stores/activity/repository"
	"github.com/x-xyz/goauction/stores/auction/repository"
	creditRepository "github.com/x-xyz/goauction/stores/credit/repository"
	creditUsecase "github.com/x-xyz/goauction/stores/credit/usecase"
	erc1155Repository "github.com/x-xyz/goauction/stores/erc1155/repository"
	erc1155Usecase "github.com/x-xyz/goauction/stores/erc1155/usecase"
	paytokenRepository "github.com/x-xyz/goauction/stores/paytoken/repository"
)

const (
	mockCollection = domain.Address("0x23c0221b2b66071afdcce502a103f18ec2666a12")
	mockToken      = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
	mockUnknown    = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	seller         = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bidder1        = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	bidder2        = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	fee1           = domain.Address("0xa7ca695b37854181f09c1c39a0cdcffc8db7a667")
	fee2           = domain.Address("0x54a769173d97432a48371b022709117c090298e3")
	receiver       = domain.Address("0x2e9e733cb0394aace1226e34313f12b0764be65a")

	startFunds = 1000000
)

var (
	native = domain.NativeCurrency
	start  = time.Unix(1600000000, 0)
)

func amt(n int64) *big.Int {
	return big.NewInt(n)
}

type auctionSuite struct {
	suite.Suite

	clock      *clock.Manual
	wallet     *wallet.Wallet
	custodian  erc1155.Custodian
	credits    credit.UseCase
	activities activity.Repo
	payTokens  domain.PayTokenRepo
	uc         auction.UseCase
	key        auction.Key
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

func (s *auctionSuite) SetupTest() {
	c := ctx.Background()
	s.clock = clock.NewManual(start)
	s.wallet = wallet.New()
	s.activities = activityRepository.NewMemoryRepo()
	s.payTokens = paytokenRepository.NewPayTokenMemoryRepo(
		domain.PayToken{Symbol: "ETH", Decimals: 18, Address: native},
		domain.PayToken{Symbol: "WETH", Decimals: 18, Address: mockToken},
	)
	s.custodian = erc1155Usecase.NewCustodian(&erc1155Usecase.CustodianCfg{
		Holding: erc1155Repository.NewHoldingMemoryRepo(),
	})
	s.credits = creditUsecase.New(&creditUsecase.CreditUseCaseCfg{
		Repo:         creditRepository.NewMemoryRepo(),
		Native:       s.wallet,
		Token:        s.wallet,
		ActivityRepo: s.activities,
		Clock:        s.clock,
	})
	s.uc = New(&AuctionUseCaseCfg{
		Repo:         repository.NewMemoryRepo(),
		Custodian:    s.custodian,
		Dispatcher:   s.credits,
		PayTokenRepo: s.payTokens,
		ActivityRepo: s.activities,
		Clock:        s.clock,
	})
	s.key = auction.NewKey(mockCollection, "1")

	s.Require().NoError(s.custodian.Deposit(c, mockCollection, "1", seller, 1))
	for _, b := range []domain.Address{bidder1, bidder2} {
		s.wallet.Fund(native, b, amt(startFunds))
		s.wallet.Fund(mockToken, b, amt(startFunds))
	}
}

func (s *auctionSuite) balance(currency, owner domain.Address) string {
	return s.wallet.BalanceOf(currency, owner).String()
}

func (s *auctionSuite) items(owner domain.Address) int64 {
	n, err := s.custodian.BalanceOf(ctx.Background(), mockCollection, "1", owner)
	s.Require().NoError(err)
	return n
}

func (s *auctionSuite) createDefault(minPrice, buyNow int64) *auction.Receipt {
	r, err := s.uc.CreateDefaultAuction(ctx.Background(), seller, s.key, auction.DefaultTerms{
		Currency:    native,
		MinPrice:    amt(minPrice),
		BuyNowPrice: amt(buyNow),
	})
	s.Require().NoError(err)
	return r
}

func (s *auctionSuite) get() *auction.Auction {
	a, err := s.uc.Get(ctx.Background(), s.key)
	s.Require().NoError(err)
	return a
}

func (s *auctionSuite) TestScenarioDefaultAuction() {
	c := ctx.Background()
	r := s.createDefault(100, 10000)
	s.Equal(s.key, r.Key)
	s.False(r.Settled)

	a := s.get()
	s.Equal(seller, a.Seller)
	s.Equal(int64(0), a.EndTime)
	s.Equal(auction.DefaultBidPeriod, a.BidPeriod)
	s.Equal(auction.DefaultBidIncreaseBps, a.BidIncreaseBps)

	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)
	a = s.get()
	s.Equal("100", a.HighestBid.String())
	s.Equal(bidder1, a.HighestBidder)
	s.Equal(start.Unix()+auction.DefaultBidPeriod, a.EndTime)

	_, err = s.uc.PlaceBid(c, bidder2, s.key, native, amt(109))
	s.ErrorIs(err, auction.ErrNotEnoughFunds)
	s.ErrorIs(err, domain.ErrInsufficientBid)
	s.Equal("100", s.get().HighestBid.String())
	s.Equal("1000000", s.balance(native, bidder2))

	_, err = s.uc.UpdateMinimumPrice(c, seller, s.key, amt(50))
	s.ErrorIs(err, auction.ErrHasBid)

	_, err = s.uc.PlaceBid(c, bidder2, s.key, native, amt(110))
	s.Require().NoError(err)
	s.Equal(bidder2, s.get().HighestBidder)
	s.Equal("1000000", s.balance(native, bidder1))
	s.Equal("110", s.wallet.Escrow(native).String())
}

func (s *auctionSuite) TestScenarioEarlyBidStartsAuction() {
	c := ctx.Background()
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)

	a := s.get()
	s.False(a.IsConfigured())
	s.Equal(int64(0), a.Id)
	s.Equal(int64(0), a.EndTime)
	s.Equal(native, a.Currency)

	s.createDefault(100, 10000)
	a = s.get()
	s.Equal(bidder1, a.HighestBidder)
	s.Equal(start.Unix()+auction.DefaultBidPeriod, a.EndTime)
}

func (s *auctionSuite) TestScenarioEarlyBidBelowMinPrice() {
	c := ctx.Background()
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)

	s.createDefault(201, 10000)
	a := s.get()
	s.Equal("100", a.HighestBid.String())
	s.Equal(int64(0), a.EndTime)

	// later bids only have to beat the increase, the period waits for the min price
	_, err = s.uc.PlaceBid(c, bidder2, s.key, native, amt(200))
	s.Require().NoError(err)
	s.Equal(int64(0), s.get().EndTime)
	s.Equal("1000000", s.balance(native, bidder1))

	_, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(219))
	s.ErrorIs(err, auction.ErrNotEnoughFunds)
	_, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(220))
	s.Require().NoError(err)
	s.Equal(start.Unix()+auction.DefaultBidPeriod, s.get().EndTime)
}

func (s *auctionSuite) TestScenarioWhitelistSale() {
	c := ctx.Background()
	r, err := s.uc.CreateSale(c, seller, s.key, auction.SaleTerms{
		Currency:         native,
		Price:            amt(10000),
		WhitelistedBuyer: bidder2,
	})
	s.Require().NoError(err)
	s.False(r.Settled)

	_, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(10000))
	s.ErrorIs(err, auction.ErrOnlyWhitelisted)
	s.ErrorIs(err, domain.ErrAuthorization)

	r, err = s.uc.PlaceBid(c, bidder2, s.key, native, amt(10000))
	s.Require().NoError(err)
	s.True(r.Settled)
	s.Equal(int64(1), s.items(bidder2))
	s.Equal(int64(0), s.items(seller))
	s.Equal("10000", s.balance(native, seller))

	_, err = s.uc.Get(c, s.key)
	s.ErrorIs(err, auction.ErrAuctionNotFound)
}

func (s *auctionSuite) createWithFees() {
	_, err := s.uc.CreateAuction(ctx.Background(), seller, s.key, auction.Terms{
		Quantity:       1,
		Currency:       native,
		MinPrice:       amt(100),
		BidIncreaseBps: 1000,
		BidPeriod:      3600,
		FeeRecipients:  []domain.Address{fee1, fee2},
		FeeBps:         []int64{1000, 100},
	})
	s.Require().NoError(err)
}

func (s *auctionSuite) TestScenarioFeeSplit() {
	c := ctx.Background()
	s.createWithFees()
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(100000))
	s.Require().NoError(err)

	_, err = s.uc.SettleAuction(c, bidder2, s.key)
	s.ErrorIs(err, auction.ErrNotOver)

	s.clock.Advance(3600 * time.Second)
	r, err := s.uc.SettleAuction(c, bidder2, s.key)
	s.Require().NoError(err)
	s.True(r.Settled)

	s.Equal("10000", s.balance(native, fee1))
	s.Equal("1000", s.balance(native, fee2))
	s.Equal("89000", s.balance(native, seller))
	s.Equal("900000", s.balance(native, bidder1))
	s.Equal("0", s.wallet.Escrow(native).String())
	s.Equal(int64(1), s.items(bidder1))

	_, err = s.uc.SettleAuction(c, bidder2, s.key)
	s.ErrorIs(err, auction.ErrAuctionNotFound)
	s.Equal("89000", s.balance(native, seller))
}

func (s *auctionSuite) TestScenarioFailedPayoutBecomesCredit() {
	c := ctx.Background()
	s.createWithFees()
	s.wallet.Reject(fee1)

	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(100000))
	s.Require().NoError(err)
	s.clock.Advance(time.Hour)
	_, err = s.uc.SettleAuction(c, bidder1, s.key)
	s.Require().NoError(err)

	s.Equal(int64(1), s.items(bidder1))
	_, err = s.uc.Get(c, s.key)
	s.ErrorIs(err, auction.ErrAuctionNotFound)
	s.Equal("0", s.balance(native, fee1))
	s.Equal("89000", s.balance(native, seller))

	owed, err := s.credits.FindAll(c, fee1)
	s.Require().NoError(err)
	s.Require().Len(owed, 1)
	s.Equal("10000", owed[0].Amount.String())
	s.Equal("10000", s.wallet.Escrow(native).String())

	s.wallet.Accept(fee1)
	paid, err := s.credits.Withdraw(c, fee1)
	s.Require().NoError(err)
	s.Require().Len(paid, 1)
	s.Equal("10000", s.balance(native, fee1))
	s.Equal("0", s.wallet.Escrow(native).String())

	_, err = s.credits.Withdraw(c, fee1)
	s.ErrorIs(err, credit.ErrNoCredits)
}

func (s *auctionSuite) TestOutbidRefundFallsBackToCredit() {
	c := ctx.Background()
	s.createDefault(100, 10000)
	s.wallet.Reject(bidder1)

	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)
	_, err = s.uc.PlaceBid(c, bidder2, s.key, native, amt(110))
	s.Require().NoError(err)

	owed, err := s.credits.FindAll(c, bidder1)
	s.Require().NoError(err)
	s.Require().Len(owed, 1)
	s.Equal("100", owed[0].Amount.String())
	s.Equal("210", s.wallet.Escrow(native).String())
}

func (s *auctionSuite) TestConfigureValidation() {
	c := ctx.Background()
	base := func() auction.Terms {
		return auction.Terms{Quantity: 1, Currency: native, MinPrice: amt(100), BuyNowPrice: amt(10000), BidIncreaseBps: 1000, BidPeriod: 3600}
	}
	tests := []struct {
		desc   string
		caller domain.Address
		modify func(*auction.Terms)
		err    error
	}{
		{"zero price", seller, func(t *auction.Terms) { t.MinPrice = amt(0) }, auction.ErrPriceZero},
		{"min above 80%", seller, func(t *auction.Terms) { t.MinPrice = amt(8001) }, auction.ErrMinPriceTooHigh},
		{"fee mismatch", seller, func(t *auction.Terms) { t.FeeRecipients = []domain.Address{fee1} }, auction.ErrFeeLengthMismatch},
		{"fee above max", seller, func(t *auction.Terms) {
			t.FeeRecipients = []domain.Address{fee1, fee2}
			t.FeeBps = []int64{9000, 1001}
		}, auction.ErrFeesExceedMaximum},
		{"increase too low", seller, func(t *auction.Terms) { t.BidIncreaseBps = 99 }, auction.ErrBidIncreaseTooLow},
		{"zero period", seller, func(t *auction.Terms) { t.BidPeriod = 0 }, auction.ErrBidPeriodZero},
		{"unknown currency", seller, func(t *auction.Terms) { t.Currency = mockUnknown }, auction.ErrCurrencyNotAllowed},
		{"not the owner", bidder1, func(t *auction.Terms) {}, auction.ErrNotItemOwner},
		{"quantity above balance", seller, func(t *auction.Terms) { t.Quantity = 2 }, auction.ErrNotItemOwner},
	}
	for _, t := range tests {
		terms := base()
		t.modify(&terms)
		_, err := s.uc.CreateAuction(c, t.caller, s.key, terms)
		s.ErrorIs(err, t.err, t.desc)
		_, err = s.uc.Get(c, s.key)
		s.ErrorIs(err, auction.ErrAuctionNotFound, t.desc)
	}

	s.createDefault(100, 10000)
	_, err := s.uc.CreateDefaultAuction(c, seller, s.key, auction.DefaultTerms{Currency: native, MinPrice: amt(50)})
	s.ErrorIs(err, auction.ErrAlreadyStarted)
	s.Equal("Auction already started by owner", err.Error())
}

func (s *auctionSuite) TestCurrency() {
	c := ctx.Background()
	_, err := s.uc.PlaceBid(c, bidder1, s.key, mockUnknown, amt(100))
	s.ErrorIs(err, auction.ErrCurrencyNotAllowed)

	_, err = s.uc.PlaceBid(c, bidder1, s.key, mockToken, amt(100))
	s.Require().NoError(err)
	_, err = s.uc.PlaceBid(c, bidder2, s.key, native, amt(200))
	s.ErrorIs(err, auction.ErrCurrencyMismatch)
	s.Equal("Bid to be in specified ERC20/Eth", err.Error())

	// configuring in another currency hands the early bid back
	s.createDefault(100, 10000)
	a := s.get()
	s.False(a.HasBid())
	s.Equal(native, a.Currency)
	s.Equal("1000000", s.balance(mockToken, bidder1))

	_, err = s.uc.PlaceBid(c, bidder2, s.key, mockToken, amt(200))
	s.ErrorIs(err, auction.ErrCurrencyMismatch)
}

func (s *auctionSuite) TestBuyNow() {
	c := ctx.Background()
	s.createDefault(100, 10000)
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(500))
	s.Require().NoError(err)

	r, err := s.uc.PlaceBid(c, bidder2, s.key, native, amt(10000))
	s.Require().NoError(err)
	s.True(r.Settled)
	s.Equal("1000000", s.balance(native, bidder1))
	s.Equal("10000", s.balance(native, seller))
	s.Equal(int64(1), s.items(bidder2))
}

func (s *auctionSuite) TestBuyNowSkipsIncreaseRule() {
	c := ctx.Background()
	_, err := s.uc.PlaceBid(c, bidder2, s.key, native, amt(9500))
	s.Require().NoError(err)
	r, err := s.uc.CreateSale(c, seller, s.key, auction.SaleTerms{Currency: native, Price: amt(10000)})
	s.Require().NoError(err)
	s.False(r.Settled)
	s.Equal(int64(0), s.get().EndTime)

	r, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(10000))
	s.Require().NoError(err)
	s.True(r.Settled)
	s.Equal(int64(1), s.items(bidder1))
	s.Equal("1000000", s.balance(native, bidder2))
}

func (s *auctionSuite) TestCustomBidRecipient() {
	c := ctx.Background()
	s.createDefault(100, 10000)
	_, err := s.uc.PlaceCustomBid(c, bidder1, s.key, native, amt(10000), "")
	s.ErrorIs(err, auction.ErrEmptyRecipient)

	r, err := s.uc.PlaceCustomBid(c, bidder1, s.key, native, amt(10000), receiver)
	s.Require().NoError(err)
	s.True(r.Settled)
	s.Equal(int64(1), s.items(receiver))
	s.Equal(int64(0), s.items(bidder1))
	s.Equal("990000", s.balance(native, bidder1))
}

func (s *auctionSuite) TestEndedAuctionRejectsBids() {
	c := ctx.Background()
	s.createDefault(100, 10000)
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)

	s.clock.Advance(time.Duration(auction.DefaultBidPeriod) * time.Second)
	_, err = s.uc.PlaceBid(c, bidder2, s.key, native, amt(200))
	s.ErrorIs(err, auction.ErrEnded)
	s.Equal("1000000", s.balance(native, bidder2))
}

func (s *auctionSuite) TestTakeHighestBid() {
	c := ctx.Background()
	s.createDefault(100, 10000)

	_, err := s.uc.TakeHighestBid(c, seller, s.key)
	s.ErrorIs(err, auction.ErrZeroPayout)
	s.Equal("cannot payout 0 bid", err.Error())

	_, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(300))
	s.Require().NoError(err)

	_, err = s.uc.TakeHighestBid(c, bidder1, s.key)
	s.ErrorIs(err, auction.ErrOnlySeller)

	r, err := s.uc.TakeHighestBid(c, seller, s.key)
	s.Require().NoError(err)
	s.True(r.Settled)
	s.Equal("300", s.balance(native, seller))
	s.Equal(int64(1), s.items(bidder1))
}

func (s *auctionSuite) TestWithdraw() {
	c := ctx.Background()
	s.createDefault(100, 10000)

	_, err := s.uc.WithdrawAuction(c, bidder1, s.key)
	s.ErrorIs(err, auction.ErrNotNftOwner)

	_, err = s.uc.WithdrawAuction(c, seller, s.key)
	s.Require().NoError(err)
	_, err = s.uc.Get(c, s.key)
	s.ErrorIs(err, auction.ErrAuctionNotFound)
	s.Equal(int64(1), s.items(seller))

	s.createDefault(100, 10000)
	_, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)
	_, err = s.uc.WithdrawAuction(c, seller, s.key)
	s.ErrorIs(err, auction.ErrHasBid)
}

func (s *auctionSuite) TestUpdatePrices() {
	c := ctx.Background()
	s.createDefault(100, 10000)

	_, err := s.uc.UpdateMinimumPrice(c, bidder1, s.key, amt(200))
	s.ErrorIs(err, auction.ErrOnlySeller)
	s.Equal("Only nft seller", err.Error())

	_, err = s.uc.UpdateMinimumPrice(c, seller, s.key, amt(10001))
	s.ErrorIs(err, auction.ErrMinPriceTooHigh)
	_, err = s.uc.UpdateMinimumPrice(c, seller, s.key, amt(0))
	s.ErrorIs(err, auction.ErrPriceZero)

	_, err = s.uc.UpdateMinimumPrice(c, seller, s.key, amt(200))
	s.Require().NoError(err)
	s.Equal("200", s.get().MinPrice.String())

	_, err = s.uc.UpdateBuyNowPrice(c, seller, s.key, amt(249))
	s.ErrorIs(err, auction.ErrMinPriceTooHigh)
	_, err = s.uc.UpdateBuyNowPrice(c, seller, s.key, amt(250))
	s.Require().NoError(err)
	s.Equal("250", s.get().BuyNowPrice.String())

	_, err = s.uc.UpdateWhitelistedBuyer(c, seller, s.key, bidder1)
	s.ErrorIs(err, auction.ErrNotASale)
	s.Equal("Not a sale", err.Error())
}

func (s *auctionSuite) TestSaleRejectsPriceUpdates() {
	c := ctx.Background()
	_, err := s.uc.CreateSale(c, seller, s.key, auction.SaleTerms{Currency: native, Price: amt(10000)})
	s.Require().NoError(err)

	_, err = s.uc.UpdateMinimumPrice(c, seller, s.key, amt(100))
	s.ErrorIs(err, auction.ErrNotForSale)
	_, err = s.uc.UpdateBuyNowPrice(c, seller, s.key, amt(100))
	s.ErrorIs(err, auction.ErrNotForSale)
}

func (s *auctionSuite) TestUpdateWhitelistedBuyerRefunds() {
	c := ctx.Background()
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(5000))
	s.Require().NoError(err)
	_, err = s.uc.CreateSale(c, seller, s.key, auction.SaleTerms{Currency: native, Price: amt(10000)})
	s.Require().NoError(err)
	s.Equal(bidder1, s.get().HighestBidder)

	_, err = s.uc.UpdateWhitelistedBuyer(c, seller, s.key, bidder2)
	s.Require().NoError(err)
	a := s.get()
	s.False(a.HasBid())
	s.True(a.HighestBidder.IsEmpty())
	s.Equal(bidder2, a.WhitelistedBuyer)
	s.Equal("1000000", s.balance(native, bidder1))
}

func (s *auctionSuite) TestEarlyBidSettlesOnSale() {
	c := ctx.Background()
	_, err := s.uc.PlaceBid(c, bidder2, s.key, native, amt(10000))
	s.Require().NoError(err)

	r, err := s.uc.CreateSale(c, seller, s.key, auction.SaleTerms{Currency: native, Price: amt(10000), WhitelistedBuyer: bidder2})
	s.Require().NoError(err)
	s.True(r.Settled)
	s.Equal(int64(1), s.items(bidder2))
	s.Equal("10000", s.balance(native, seller))
}

func (s *auctionSuite) TestEarlyBidRefundedForOtherBuyer() {
	c := ctx.Background()
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(10000))
	s.Require().NoError(err)

	r, err := s.uc.CreateSale(c, seller, s.key, auction.SaleTerms{Currency: native, Price: amt(10000), WhitelistedBuyer: bidder2})
	s.Require().NoError(err)
	s.False(r.Settled)
	s.False(s.get().HasBid())
	s.Equal("1000000", s.balance(native, bidder1))
	s.Equal(int64(1), s.items(seller))
}

func (s *auctionSuite) TestEarlyBidAboveBuyNowSettlesOnCreate() {
	c := ctx.Background()
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(20000))
	s.Require().NoError(err)

	r := s.createDefault(100, 10000)
	s.True(r.Settled)
	s.Equal(int64(1), s.items(bidder1))
	s.Equal("20000", s.balance(native, seller))
}

func (s *auctionSuite) TestExternalTransferMovesStanding() {
	c := ctx.Background()
	first := s.createDefault(100, 10000)

	s.Require().NoError(s.custodian.ExternalTransfer(c, erc1155.Transfer{
		Address: mockCollection, TokenId: "1", From: seller, To: bidder1, Value: 1,
	}))
	a := s.get()
	s.Equal(seller, a.Seller)
	s.Equal(bidder1, a.Holder)
	s.Equal("100", a.MinPrice.String())

	_, err := s.uc.UpdateMinimumPrice(c, seller, s.key, amt(200))
	s.ErrorIs(err, auction.ErrOnlySeller)

	second, err := s.uc.CreateDefaultAuction(c, bidder1, s.key, auction.DefaultTerms{Currency: native, MinPrice: amt(150), BuyNowPrice: amt(10000)})
	s.Require().NoError(err)
	s.Greater(second.Id, first.Id)
	a = s.get()
	s.Equal(bidder1, a.Seller)
	s.Equal("150", a.MinPrice.String())
}

func (s *auctionSuite) TestBuyNowRejectedWhenSellerLeft() {
	c := ctx.Background()
	s.createDefault(100, 10000)
	s.Require().NoError(s.custodian.ExternalTransfer(c, erc1155.Transfer{
		Address: mockCollection, TokenId: "1", From: seller, To: bidder2, Value: 1,
	}))

	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(10000))
	s.ErrorIs(err, auction.ErrSellerNotHolder)
	s.Equal("1000000", s.balance(native, bidder1))
}

func (s *auctionSuite) TestQuantity() {
	c := ctx.Background()
	s.Require().NoError(s.custodian.Deposit(c, mockCollection, "1", seller, 4))
	_, err := s.uc.CreateAuction(c, seller, s.key, auction.Terms{
		Quantity: 3, Currency: native, MinPrice: amt(100), BuyNowPrice: amt(1000), BidIncreaseBps: 500, BidPeriod: 60,
	})
	s.Require().NoError(err)
	_, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(1000))
	s.Require().NoError(err)
	s.Equal(int64(3), s.items(bidder1))
	s.Equal(int64(2), s.items(seller))
}

func (s *auctionSuite) TestOwnerOf() {
	c := ctx.Background()
	owner, err := s.uc.OwnerOf(c, s.key)
	s.Require().NoError(err)
	s.Equal(seller, owner)

	_, err = s.uc.OwnerOf(c, auction.NewKey(mockCollection, "7"))
	s.ErrorIs(err, auction.ErrItemNotDeposited)
	s.Equal("NFT not deposited", err.Error())
}

func (s *auctionSuite) TestCollectFailure() {
	c := ctx.Background()
	poor := domain.Address("0x9999999999999999999999999999999999999999")
	_, err := s.uc.PlaceBid(c, poor, s.key, native, amt(100))
	s.ErrorIs(err, auction.ErrBidCollectFailure)
	s.ErrorIs(err, domain.ErrPayment)
	_, err = s.uc.Get(c, s.key)
	s.ErrorIs(err, auction.ErrAuctionNotFound)
}

func (s *auctionSuite) TestFindExpired() {
	c := ctx.Background()
	other := auction.NewKey(mockCollection, "2")
	s.Require().NoError(s.custodian.Deposit(c, mockCollection, "2", seller, 1))

	s.createDefault(100, 10000)
	_, err := s.uc.CreateAuction(c, seller, other, auction.Terms{Currency: native, MinPrice: amt(100), BidIncreaseBps: 1000, BidPeriod: 10})
	s.Require().NoError(err)
	_, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)
	_, err = s.uc.PlaceBid(c, bidder1, other, native, amt(100))
	s.Require().NoError(err)

	keys, err := s.uc.FindExpired(c, 10)
	s.Require().NoError(err)
	s.Empty(keys)

	s.clock.Advance(10 * time.Second)
	keys, err = s.uc.FindExpired(c, 10)
	s.Require().NoError(err)
	s.Equal([]auction.Key{other}, keys)
}

func (s *auctionSuite) TestFindExpiredSkipsItemsSellerMovedOut() {
	c := ctx.Background()
	other := auction.NewKey(mockCollection, "2")
	s.Require().NoError(s.custodian.Deposit(c, mockCollection, "2", seller, 1))

	terms := auction.Terms{Currency: native, MinPrice: amt(100), BidIncreaseBps: 1000, BidPeriod: 10}
	_, err := s.uc.CreateAuction(c, seller, s.key, terms)
	s.Require().NoError(err)
	_, err = s.uc.CreateAuction(c, seller, other, terms)
	s.Require().NoError(err)
	_, err = s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)
	s.Require().NoError(s.custodian.ExternalTransfer(c, erc1155.Transfer{
		Address: mockCollection, TokenId: "1", From: seller, To: bidder2, Value: 1,
	}))
	_, err = s.uc.PlaceBid(c, bidder1, other, native, amt(100))
	s.Require().NoError(err)
	s.clock.Advance(10 * time.Second)

	keys, err := s.uc.FindExpired(c, 1)
	s.Require().NoError(err)
	s.Equal([]auction.Key{other}, keys)

	k := keeper.New(&keeper.KeeperCfg{Auction: s.uc, Address: fee1, BatchLimit: 1})
	found, settled, err := k.Sweep(c)
	s.Require().NoError(err)
	s.Equal(1, found)
	s.Equal(1, settled)
	_, err = s.uc.Get(c, other)
	s.ErrorIs(err, auction.ErrAuctionNotFound)

	keys, err = s.uc.FindExpired(c, 1)
	s.Require().NoError(err)
	s.Empty(keys)
	s.Equal(bidder1, s.get().HighestBidder)
}

func (s *auctionSuite) TestIdsIncrease() {
	c := ctx.Background()
	first := s.createDefault(100, 10000)
	_, err := s.uc.WithdrawAuction(c, seller, s.key)
	s.Require().NoError(err)
	second := s.createDefault(100, 10000)
	s.Greater(second.Id, first.Id)
}

func (s *auctionSuite) TestActivities() {
	c := ctx.Background()
	s.createDefault(100, 10000)
	_, err := s.uc.PlaceBid(c, bidder1, s.key, native, amt(100))
	s.Require().NoError(err)
	_, err = s.uc.PlaceBid(c, bidder2, s.key, native, amt(10000))
	s.Require().NoError(err)

	acts, err := s.activities.FindAll(c, activity.WithItem(mockCollection, "1"))
	s.Require().NoError(err)
	types := []activity.Type{}
	for _, a := range acts {
		types = append(types, a.Type)
	}
	s.Equal([]activity.Type{
		activity.TypeSettled,
		activity.TypeBidMade,
		activity.TypeBidRefunded,
		activity.TypeBidMade,
		activity.TypeAuctionCreated,
	}, types)
}

func (s *auctionSuite) TestConcurrentBidsConserveFunds() {
	c := ctx.Background()
	s.createDefault(100, 100000000)

	bidders := []domain.Address{}
	for i := 0; i < 16; i++ {
		b := domain.Address(big.NewInt(int64(0x1000 + i)).Text(16))
		s.wallet.Fund(native, b, amt(startFunds))
		bidders = append(bidders, b)
	}

	wg := sync.WaitGroup{}
	for i, b := range bidders {
		wg.Add(1)
		go func(i int, b domain.Address) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				s.uc.PlaceBid(c, b, s.key, native, amt(int64(100+i*50+j*1000)))
			}
		}(i, b)
	}
	wg.Wait()

	a := s.get()
	total := new(big.Int)
	for _, b := range bidders {
		total.Add(total, s.wallet.BalanceOf(native, b))
	}
	s.Equal(a.HighestBid.String(), s.wallet.Escrow(native).String())
	total.Add(total, s.wallet.Escrow(native))
	s.Equal(amt(startFunds*16).String(), total.String())
}
