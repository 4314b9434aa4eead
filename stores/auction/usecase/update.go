package usecase

import (
	"math/big"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/erc1155"
)

func (im *impl) UpdateMinimumPrice(c ctx.Ctx, caller domain.Address, key auction.Key, price *big.Int) (*auction.Receipt, error) {
	return im.updatePrice(c, caller, key, price, activity.TypeMinPriceUpdated, func(a *auction.Auction) {
		a.MinPrice = domain.CopyAmount(price)
	})
}

// UpdateBuyNowPrice only stores the new price, a standing bid above it does
// not settle until the next bid or take
func (im *impl) UpdateBuyNowPrice(c ctx.Ctx, caller domain.Address, key auction.Key, price *big.Int) (*auction.Receipt, error) {
	return im.updatePrice(c, caller, key, price, activity.TypeBuyNowUpdated, func(a *auction.Auction) {
		a.BuyNowPrice = domain.CopyAmount(price)
	})
}

func (im *impl) updatePrice(c ctx.Ctx, caller domain.Address, key auction.Key, price *big.Int, t activity.Type, apply func(*auction.Auction)) (*auction.Receipt, error) {
	key = auction.NewKey(key.Collection, key.TokenId)
	unlock := im.lock(key)
	defer unlock()
	now := im.clock.Now()

	a, err := im.loadSellerSide(c, caller, key, auction.ErrOnlySeller)
	if err != nil {
		return nil, err
	}
	if a.IsSale {
		return nil, auction.ErrNotForSale
	}
	if a.HasBid() {
		return nil, auction.ErrHasBid
	}
	if price == nil || price.Sign() <= 0 {
		return nil, auction.ErrPriceZero
	}

	apply(a)
	terms := auction.Terms{
		Quantity:       a.Quantity,
		Currency:       a.Currency,
		MinPrice:       a.MinPrice,
		BuyNowPrice:    a.BuyNowPrice,
		BidIncreaseBps: a.BidIncreaseBps,
		BidPeriod:      a.BidPeriod,
		FeeRecipients:  a.FeeRecipients,
		FeeBps:         a.FeeBps,
	}
	// the increase floor may have moved since the record was written
	if err := terms.Validate(0); err != nil {
		return nil, err
	}
	a.UpdatedAt = now

	if err := im.repo.Upsert(c, a); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("repo.Upsert failed")
		return nil, err
	}
	im.record(c, a, t, caller, price, now)
	return receipt(a, false), nil
}

func (im *impl) UpdateWhitelistedBuyer(c ctx.Ctx, caller domain.Address, key auction.Key, buyer domain.Address) (*auction.Receipt, error) {
	key = auction.NewKey(key.Collection, key.TokenId)
	unlock := im.lock(key)
	defer unlock()
	now := im.clock.Now()

	a, err := im.loadSellerSide(c, caller, key, auction.ErrOnlySeller)
	if err != nil {
		return nil, err
	}
	if !a.IsSale {
		return nil, auction.ErrNotASale
	}

	a.WhitelistedBuyer = buyer.ToLower()
	refund := a.HasBid() && !a.HighestBidder.Equals(buyer)
	prev := a.Clone()
	if refund {
		a.ClearBid()
	}
	a.UpdatedAt = now

	if err := im.repo.Upsert(c, a); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("repo.Upsert failed")
		return nil, err
	}
	if refund {
		im.refund(c, prev, now)
	}
	im.record(c, a, activity.TypeWhitelistUpdated, caller, nil, now)
	return receipt(a, false), nil
}

func (im *impl) ReassociateOnExternalTransfer(c ctx.Ctx, key auction.Key, newOwner domain.Address) error {
	key = auction.NewKey(key.Collection, key.TokenId)
	unlock := im.lock(key)
	defer unlock()
	now := im.clock.Now()

	a, err := im.load(c, key)
	if err != nil {
		return err
	}
	if a == nil || !a.IsConfigured() || a.Holder.Equals(newOwner) {
		return nil
	}

	a.Holder = newOwner.ToLower()
	a.UpdatedAt = now
	if err := im.repo.Upsert(c, a); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("repo.Upsert failed")
		return err
	}
	im.record(c, a, activity.TypeHolderChanged, newOwner, nil, now)
	c.WithFields(log.Fields{
		"key":    key,
		"seller": a.Seller,
		"holder": a.Holder,
	}).Info("auction holder changed")
	return nil
}

// onExternalTransfer keeps the seller as holder while they can still cover
// the auctioned quantity, otherwise hands standing to the largest holder
func (im *impl) onExternalTransfer(c ctx.Ctx, t erc1155.Transfer) {
	key := auction.NewKey(t.Address, t.TokenId)
	a, err := im.load(c, key)
	if err != nil || a == nil || !a.IsConfigured() {
		return
	}

	holder := a.Seller
	balance, err := im.custodian.BalanceOf(c, t.Address, t.TokenId, a.Seller)
	if err != nil {
		return
	}
	if balance < a.Quantity {
		owner, err := im.custodian.OwnerOf(c, t.Address, t.TokenId)
		if err == domain.ErrNotFound {
			owner = t.To
		} else if err != nil {
			return
		}
		holder = owner
	}

	if err := im.ReassociateOnExternalTransfer(c, key, holder); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"transfer": t,
		}).Error("ReassociateOnExternalTransfer failed")
	}
}
