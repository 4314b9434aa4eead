package usecase

import (
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/keylock"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/credit"
	"github.com/x-xyz/goauction/domain/erc1155"
)

var met = metrics.New("auction")

type AuctionUseCaseCfg struct {
	Repo         auction.Repo
	Custodian    erc1155.Custodian
	Dispatcher   credit.Dispatcher
	PayTokenRepo domain.PayTokenRepo
	ActivityRepo activity.Repo
	Clock        domain.Clock

	// zero values fall back to the auction package defaults
	DefaultBidPeriod      int64
	DefaultBidIncreaseBps int64
	MinimumBidIncreaseBps int64
}

type impl struct {
	repo         auction.Repo
	custodian    erc1155.Custodian
	dispatcher   credit.Dispatcher
	payTokenRepo domain.PayTokenRepo
	activityRepo activity.Repo
	clock        domain.Clock
	locks        *keylock.KeyLock

	defaultBidPeriod      int64
	defaultBidIncreaseBps int64
	minimumBidIncreaseBps int64
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	im := &impl{
		repo:                  cfg.Repo,
		custodian:             cfg.Custodian,
		dispatcher:            cfg.Dispatcher,
		payTokenRepo:          cfg.PayTokenRepo,
		activityRepo:          cfg.ActivityRepo,
		clock:                 cfg.Clock,
		locks:                 keylock.New(),
		defaultBidPeriod:      cfg.DefaultBidPeriod,
		defaultBidIncreaseBps: cfg.DefaultBidIncreaseBps,
		minimumBidIncreaseBps: cfg.MinimumBidIncreaseBps,
	}
	if im.defaultBidPeriod <= 0 {
		im.defaultBidPeriod = auction.DefaultBidPeriod
	}
	if im.defaultBidIncreaseBps <= 0 {
		im.defaultBidIncreaseBps = auction.DefaultBidIncreaseBps
	}
	if im.minimumBidIncreaseBps <= 0 {
		im.minimumBidIncreaseBps = auction.MinimumBidIncreaseBps
	}
	cfg.Custodian.Subscribe(im.onExternalTransfer)
	return im
}

func (im *impl) lock(key auction.Key) func() {
	return im.locks.Lock(key.String())
}

// load returns nil without error when no record lives on key
func (im *impl) load(c ctx.Ctx, key auction.Key) (*auction.Auction, error) {
	a, err := im.repo.FindOne(c, key)
	if err == auction.ErrAuctionNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("repo.FindOne failed")
		return nil, err
	}
	return a, nil
}

// loadSellerSide returns the record when caller is its active seller
func (im *impl) loadSellerSide(c ctx.Ctx, caller domain.Address, key auction.Key, notSeller error) (*auction.Auction, error) {
	a, err := im.load(c, key)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.IsSellerActive() || !a.Seller.Equals(caller) {
		return nil, notSeller
	}
	return a, nil
}

func (im *impl) checkCurrency(c ctx.Ctx, currency domain.Address) error {
	if _, err := im.payTokenRepo.FindOne(c, currency); err == domain.ErrNotFound {
		return auction.ErrCurrencyNotAllowed
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"currency": currency,
		}).Error("payTokenRepo.FindOne failed")
		return err
	}
	return nil
}

// refund hands a standing bid back to its bidder and clears it
func (im *impl) refund(c ctx.Ctx, a *auction.Auction, now time.Time) {
	if !a.HasBid() {
		return
	}
	if err := im.dispatcher.Dispatch(c, a.HighestBidder, a.Currency, a.HighestBid); err != nil {
		met.BumpSum("refund.err", 1)
		c.WithFields(log.Fields{
			"err":    err,
			"key":    a.Key,
			"bidder": a.HighestBidder,
			"amount": a.HighestBid,
		}).Error("refund dispatch failed")
	}
	im.record(c, a, activity.TypeBidRefunded, a.HighestBidder, a.HighestBid, now)
	a.ClearBid()
}

func (im *impl) record(c ctx.Ctx, a *auction.Auction, t activity.Type, actor domain.Address, amount *big.Int, now time.Time) {
	if im.activityRepo == nil {
		return
	}
	act, err := activity.New(t, actor, amount, a.Currency, now)
	if err != nil {
		c.WithField("err", err).Error("activity.New failed")
		return
	}
	act.Collection = a.Collection
	act.TokenId = a.TokenId
	act.AuctionId = a.Id
	if err := im.activityRepo.Insert(c, act); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"type": t,
			"key":  a.Key,
		}).Error("activityRepo.Insert failed")
	}
}

func receipt(a *auction.Auction, settled bool) *auction.Receipt {
	return &auction.Receipt{Key: a.Key, Id: a.Id, Settled: settled}
}
