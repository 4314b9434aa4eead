package usecase

import (
	"errors"
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/erc1155"
)

func (im *impl) TakeHighestBid(c ctx.Ctx, caller domain.Address, key auction.Key) (*auction.Receipt, error) {
	key = auction.NewKey(key.Collection, key.TokenId)
	unlock := im.lock(key)
	defer unlock()
	now := im.clock.Now()

	a, err := im.loadSellerSide(c, caller, key, auction.ErrOnlySeller)
	if err != nil {
		return nil, err
	}
	if !a.HasBid() {
		return nil, auction.ErrZeroPayout
	}
	if err := im.settle(c, a, now); err != nil {
		return nil, err
	}
	return receipt(a, true), nil
}

func (im *impl) SettleAuction(c ctx.Ctx, caller domain.Address, key auction.Key) (*auction.Receipt, error) {
	key = auction.NewKey(key.Collection, key.TokenId)
	unlock := im.lock(key)
	defer unlock()
	now := im.clock.Now()

	a, err := im.load(c, key)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, auction.ErrAuctionNotFound
	}
	if !a.IsConfigured() || !a.IsEnded(now.Unix()) {
		return nil, auction.ErrNotOver
	}
	if err := im.settle(c, a, now); err != nil {
		return nil, err
	}
	return receipt(a, true), nil
}

func (im *impl) WithdrawAuction(c ctx.Ctx, caller domain.Address, key auction.Key) (*auction.Receipt, error) {
	key = auction.NewKey(key.Collection, key.TokenId)
	unlock := im.lock(key)
	defer unlock()
	now := im.clock.Now()

	a, err := im.loadSellerSide(c, caller, key, auction.ErrNotNftOwner)
	if err != nil {
		return nil, err
	}
	if a.HasBid() {
		return nil, auction.ErrHasBid
	}
	if err := im.repo.Delete(c, key); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("repo.Delete failed")
		return nil, err
	}
	im.record(c, a, activity.TypeWithdrawn, caller, nil, now)
	return receipt(a, false), nil
}

// checkSellerHolds makes sure the seller can still hand over the item
func (im *impl) checkSellerHolds(c ctx.Ctx, a *auction.Auction) error {
	if !a.IsSellerActive() {
		return auction.ErrSellerNotHolder
	}
	balance, err := im.custodian.BalanceOf(c, a.Collection, a.TokenId, a.Seller)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": a.Key,
		}).Error("custodian.BalanceOf failed")
		return err
	}
	if balance < a.Quantity {
		return auction.ErrSellerNotHolder
	}
	return nil
}

// settle hands the item to the winner, pays out the winning bid and frees
// the slot. Payouts never fail the settlement, they fall back to credits.
func (im *impl) settle(c ctx.Ctx, a *auction.Auction, now time.Time) error {
	split, err := im.handOver(c, a, a)
	if err != nil {
		return err
	}
	im.payOut(c, a, split, now)
	return nil
}

// handOver frees the slot and moves the item to the winner of a. stored is
// what the repo holds for the key before the call, nil when nothing. When the
// transfer fails stored is written back, so an error leaves the repo as it was.
func (im *impl) handOver(c ctx.Ctx, stored, a *auction.Auction) (*auction.FeeSplit, error) {
	if err := im.checkSellerHolds(c, a); err != nil {
		return nil, err
	}
	split, err := auction.SplitFees(a.HighestBid, a.FeeRecipients, a.FeeBps)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": a.Key,
		}).Error("auction.SplitFees failed")
		return nil, err
	}

	if stored != nil {
		if err := im.repo.Delete(c, a.Key); err != nil && err != auction.ErrAuctionNotFound {
			c.WithFields(log.Fields{
				"err": err,
				"key": a.Key,
			}).Error("repo.Delete failed")
			return nil, err
		}
	}

	err = im.custodian.Transfer(c, erc1155.Transfer{
		Address: a.Collection,
		TokenId: a.TokenId,
		From:    a.Seller,
		To:      a.ItemRecipient(),
		Value:   a.Quantity,
	})
	if err == nil {
		return split, nil
	}
	c.WithFields(log.Fields{
		"err": err,
		"key": a.Key,
	}).Error("custodian.Transfer failed")
	if stored != nil {
		if err := im.repo.Upsert(c, stored); err != nil {
			met.BumpSum("settle.restore.failed", 1)
			c.WithFields(log.Fields{
				"err": err,
				"key": a.Key,
			}).Error("repo.Upsert failed")
		}
	}
	if errors.Is(err, erc1155.ErrInsufficientBalance) {
		return nil, auction.ErrSellerNotHolder
	}
	return nil, err
}

func (im *impl) payOut(c ctx.Ctx, a *auction.Auction, split *auction.FeeSplit, now time.Time) {
	for _, fee := range split.Fees {
		im.pay(c, a, fee.Recipient, fee.Amount)
	}
	im.pay(c, a, a.Seller, split.Seller)

	winner := a.ItemRecipient()
	im.record(c, a, activity.TypeSettled, winner, a.HighestBid, now)
	met.BumpSum("settle", 1, "sale", boolTag(a.IsSale))
	c.WithFields(log.Fields{
		"key":    a.Key,
		"id":     a.Id,
		"winner": winner,
		"amount": a.HighestBid,
	}).Info("auction settled")
}

func (im *impl) pay(c ctx.Ctx, a *auction.Auction, to domain.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	if err := im.dispatcher.Dispatch(c, to, a.Currency, amount); err != nil {
		met.BumpSum("payout.err", 1)
		c.WithFields(log.Fields{
			"err":    err,
			"key":    a.Key,
			"to":     to,
			"amount": amount,
		}).Error("payout dispatch failed")
	}
}
