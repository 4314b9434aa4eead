package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/domain/auction"
)

func (im *impl) CreateAuction(c ctx.Ctx, caller domain.Address, key auction.Key, terms auction.Terms) (*auction.Receipt, error) {
	terms.IsSale = false
	terms.WhitelistedBuyer = ""
	return im.configure(c, caller, key, terms)
}

func (im *impl) CreateDefaultAuction(c ctx.Ctx, caller domain.Address, key auction.Key, terms auction.DefaultTerms) (*auction.Receipt, error) {
	return im.configure(c, caller, key, auction.Terms{
		Quantity:       terms.Quantity,
		Currency:       terms.Currency,
		MinPrice:       terms.MinPrice,
		BuyNowPrice:    terms.BuyNowPrice,
		BidIncreaseBps: im.defaultBidIncreaseBps,
		BidPeriod:      im.defaultBidPeriod,
		FeeRecipients:  terms.FeeRecipients,
		FeeBps:         terms.FeeBps,
	})
}

func (im *impl) CreateSale(c ctx.Ctx, caller domain.Address, key auction.Key, terms auction.SaleTerms) (*auction.Receipt, error) {
	t := terms.ToTerms()
	t.BidIncreaseBps = im.defaultBidIncreaseBps
	return im.configure(c, caller, key, t)
}

// configure writes fresh terms on key, keeping a compatible standing bid
func (im *impl) configure(c ctx.Ctx, caller domain.Address, key auction.Key, terms auction.Terms) (*auction.Receipt, error) {
	key = auction.NewKey(key.Collection, key.TokenId)
	if terms.Quantity == 0 {
		terms.Quantity = 1
	}
	if err := terms.Validate(im.minimumBidIncreaseBps); err != nil {
		return nil, err
	}
	if err := im.checkCurrency(c, terms.Currency); err != nil {
		return nil, err
	}

	unlock := im.lock(key)
	defer unlock()
	now := im.clock.Now()

	balance, err := im.custodian.BalanceOf(c, key.Collection, key.TokenId, caller)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"key":    key,
			"caller": caller,
		}).Error("custodian.BalanceOf failed")
		return nil, err
	}
	if balance < terms.Quantity {
		return nil, auction.ErrNotItemOwner
	}

	existing, err := im.load(c, key)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsSellerActive() {
		return nil, auction.ErrAlreadyStarted
	}

	id, err := im.repo.NextId(c)
	if err != nil {
		c.WithField("err", err).Error("repo.NextId failed")
		return nil, err
	}

	a := &auction.Auction{
		Key:              key,
		Id:               id,
		Seller:           caller.ToLower(),
		Holder:           caller.ToLower(),
		Quantity:         terms.Quantity,
		Currency:         terms.Currency.ToLower(),
		MinPrice:         domain.CopyAmount(terms.MinPrice),
		BuyNowPrice:      domain.CopyAmount(terms.BuyNowPrice),
		BidIncreaseBps:   terms.BidIncreaseBps,
		BidPeriod:        terms.BidPeriod,
		WhitelistedBuyer: terms.WhitelistedBuyer.ToLower(),
		IsSale:           terms.IsSale,
		FeeRecipients:    lowerAll(terms.FeeRecipients),
		FeeBps:           append([]int64{}, terms.FeeBps...),
		HighestBid:       domain.CopyAmount(nil),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if a.IsSale {
		a.BidPeriod = 0
	}

	refundExisting := false
	if existing != nil && existing.HasBid() {
		if keepsBid(a, existing) {
			a.HighestBid = existing.HighestBid
			a.HighestBidder = existing.HighestBidder
			a.Recipient = existing.Recipient
		} else {
			refundExisting = true
		}
	}

	settle := false
	if a.HasBid() {
		if a.ReachesBuyNow(a.HighestBid) {
			settle = true
		} else if a.ReachesMinPrice(a.HighestBid) && !a.IsSale {
			a.EndTime = now.Unix() + a.BidPeriod
		}
	}

	t := activity.TypeAuctionCreated
	if a.IsSale {
		t = activity.TypeSaleCreated
	}

	if settle {
		// the kept bid already meets the price, the new terms are never
		// stored and a failed hand over leaves existing in place
		split, err := im.handOver(c, existing, a)
		if err != nil {
			return nil, err
		}
		im.record(c, a, t, caller, a.MinPrice, now)
		met.BumpSum("configure", 1, "sale", boolTag(a.IsSale))
		im.payOut(c, a, split, now)
		return receipt(a, true), nil
	}

	if err := im.repo.Upsert(c, a); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("repo.Upsert failed")
		return nil, err
	}
	if refundExisting {
		im.refund(c, existing, now)
	}

	im.record(c, a, t, caller, a.MinPrice, now)
	met.BumpSum("configure", 1, "sale", boolTag(a.IsSale))
	return receipt(a, false), nil
}

// keepsBid reports whether a standing bid is still valid under the new terms
func keepsBid(a *auction.Auction, existing *auction.Auction) bool {
	if !existing.Currency.Equals(a.Currency) {
		return false
	}
	if a.IsSale && !a.WhitelistedBuyer.IsEmpty() && !existing.HighestBidder.Equals(a.WhitelistedBuyer) {
		return false
	}
	return true
}

func lowerAll(addrs []domain.Address) []domain.Address {
	res := make([]domain.Address, 0, len(addrs))
	for _, a := range addrs {
		res = append(res, a.ToLower())
	}
	return res
}

func boolTag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
