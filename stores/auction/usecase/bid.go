package usecase

import (
	"math/big"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/domain/auction"
)

func (im *impl) PlaceBid(c ctx.Ctx, caller domain.Address, key auction.Key, currency domain.Address, amount *big.Int) (*auction.Receipt, error) {
	return im.placeBid(c, caller, key, currency, amount, "")
}

func (im *impl) PlaceCustomBid(c ctx.Ctx, caller domain.Address, key auction.Key, currency domain.Address, amount *big.Int, recipient domain.Address) (*auction.Receipt, error) {
	if recipient.IsEmpty() || recipient.Equals(domain.EmptyAddress) {
		return nil, auction.ErrEmptyRecipient
	}
	return im.placeBid(c, caller, key, currency, amount, recipient)
}

func (im *impl) placeBid(c ctx.Ctx, caller domain.Address, key auction.Key, currency domain.Address, amount *big.Int, recipient domain.Address) (*auction.Receipt, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, auction.ErrNotEnoughFunds
	}
	key = auction.NewKey(key.Collection, key.TokenId)
	caller = caller.ToLower()
	currency = currency.ToLower()

	unlock := im.lock(key)
	defer unlock()
	now := im.clock.Now()

	a, err := im.load(c, key)
	if err != nil {
		return nil, err
	}
	if a == nil {
		// early bid, the record only carries the bid until a seller shows up
		a = &auction.Auction{
			Key:            key,
			BidIncreaseBps: im.defaultBidIncreaseBps,
			HighestBid:     domain.CopyAmount(nil),
			CreatedAt:      now,
		}
	}

	if a.IsConfigured() || a.HasBid() {
		if !a.Currency.Equals(currency) {
			return nil, auction.ErrCurrencyMismatch
		}
	} else {
		if err := im.checkCurrency(c, currency); err != nil {
			return nil, err
		}
		a.Currency = currency
	}

	if a.IsSale && !a.WhitelistedBuyer.IsEmpty() && !a.WhitelistedBuyer.Equals(caller) {
		return nil, auction.ErrOnlyWhitelisted
	}

	// a bid at buy now price always qualifies
	if !a.ReachesBuyNow(amount) && amount.Cmp(a.Threshold()) < 0 {
		return nil, auction.ErrNotEnoughFunds
	}

	if a.IsEnded(now.Unix()) {
		return nil, auction.ErrEnded
	}

	settle := a.ReachesBuyNow(amount)
	if settle {
		if err := im.checkSellerHolds(c, a); err != nil {
			return nil, err
		}
	}

	if err := im.dispatcher.Collect(c, caller, currency, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"key":    key,
			"bidder": caller,
			"amount": amount,
		}).Warn("dispatcher.Collect failed")
		return nil, auction.ErrBidCollectFailure
	}

	prev := a.Clone()

	a.HighestBid = domain.CopyAmount(amount)
	a.HighestBidder = caller
	a.Recipient = recipient.ToLower()
	if a.IsConfigured() && !a.IsStarted() && !a.IsSale && a.ReachesMinPrice(amount) {
		a.EndTime = now.Unix() + a.BidPeriod
	}
	a.UpdatedAt = now

	if settle {
		// nothing is persisted before the hand over, a failed one only owes
		// the caller the new bid
		split, err := im.handOver(c, prev, a)
		if err != nil {
			im.giveBack(c, caller, currency, amount)
			return nil, err
		}
		im.refund(c, prev, now)
		im.record(c, a, activity.TypeBidMade, caller, amount, now)
		met.BumpSum("bid", 1, "early", boolTag(!a.IsConfigured()))
		im.payOut(c, a, split, now)
		return receipt(a, true), nil
	}

	if err := im.repo.Upsert(c, a); err != nil {
		// the stored record still carries the previous bid, only the new
		// one has to go back
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("repo.Upsert failed")
		im.giveBack(c, caller, currency, amount)
		return nil, err
	}
	im.refund(c, prev, now)
	im.record(c, a, activity.TypeBidMade, caller, amount, now)
	met.BumpSum("bid", 1, "early", boolTag(!a.IsConfigured()))
	return receipt(a, false), nil
}

// giveBack returns a collected bid that never made it into a record
func (im *impl) giveBack(c ctx.Ctx, to domain.Address, currency domain.Address, amount *big.Int) {
	if err := im.dispatcher.Dispatch(c, to, currency, amount); err != nil {
		c.WithField("err", err).Error("dispatcher.Dispatch failed")
	}
}
