package usecase

import (
	"math/big"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/keylock"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/domain/credit"
)

var met = metrics.New("credit")

type CreditUseCaseCfg struct {
	Repo credit.Repo
	// Native moves NativeCurrency, Token every other paytoken
	Native       credit.Transferer
	Token        credit.Transferer
	ActivityRepo activity.Repo
	Clock        domain.Clock
}

type impl struct {
	repo         credit.Repo
	native       credit.Transferer
	token        credit.Transferer
	activityRepo activity.Repo
	clock        domain.Clock
	locks        *keylock.KeyLock
}

func New(cfg *CreditUseCaseCfg) credit.UseCase {
	return &impl{
		repo:         cfg.Repo,
		native:       cfg.Native,
		token:        cfg.Token,
		activityRepo: cfg.ActivityRepo,
		clock:        cfg.Clock,
		locks:        keylock.New(),
	}
}

func (im *impl) transferer(currency domain.Address) credit.Transferer {
	if currency.IsNative() {
		return im.native
	}
	return im.token
}

func (im *impl) Collect(c ctx.Ctx, payer domain.Address, currency domain.Address, amount *big.Int) error {
	if err := im.transferer(currency).Receive(c, currency, payer, amount); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"payer":    payer,
			"currency": currency,
			"amount":   amount,
		}).Warn("Receive failed")
		return err
	}
	return nil
}

func (im *impl) Dispatch(c ctx.Ctx, recipient domain.Address, currency domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return nil
	}
	now := im.clock.Now()
	err := im.transferer(currency).Send(c, currency, recipient, amount)
	if err == nil {
		met.BumpSum("dispatch.pushed", 1)
		return nil
	}
	c.WithFields(log.Fields{
		"err":       err,
		"recipient": recipient,
		"currency":  currency,
		"amount":    amount,
	}).Warn("push failed, crediting")

	unlock := im.locks.Lock(recipient.ToLowerStr())
	defer unlock()
	if _, err := im.repo.Add(c, recipient, currency, amount); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"recipient": recipient,
		}).Error("repo.Add failed")
		return err
	}
	met.BumpSum("dispatch.credited", 1)
	im.record(c, activity.TypeCreditRecorded, recipient, currency, amount, now)
	return nil
}

// Withdraw pushes every credit of caller. A credit whose push fails is added
// back. Every taken credit is visited, the first ledger error is returned last.
func (im *impl) Withdraw(c ctx.Ctx, caller domain.Address) ([]*credit.Credit, error) {
	unlock := im.locks.Lock(caller.ToLowerStr())
	defer unlock()
	now := im.clock.Now()

	credits, err := im.repo.Take(c, caller)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"caller": caller,
		}).Error("repo.Take failed")
		return nil, err
	}
	if len(credits) == 0 {
		return nil, credit.ErrNoCredits
	}

	paid := []*credit.Credit{}
	var ledgerErr error
	for _, cr := range credits {
		if err := im.transferer(cr.Currency).Send(c, cr.Currency, caller, cr.Amount); err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"caller":   caller,
				"currency": cr.Currency,
			}).Warn("withdraw push failed, crediting back")
			if _, err := im.repo.Add(c, caller, cr.Currency, cr.Amount); err != nil {
				c.WithFields(log.Fields{
					"err":    err,
					"credit": cr,
				}).Error("repo.Add failed")
				met.BumpSum("withdraw.recredit.failed", 1)
				if ledgerErr == nil {
					ledgerErr = xerrors.Errorf("recredit %s: %w", cr.Currency, err)
				}
			}
			continue
		}
		paid = append(paid, cr)
		im.record(c, activity.TypeCreditsWithdrawn, caller, cr.Currency, cr.Amount, now)
	}
	return paid, ledgerErr
}

func (im *impl) FindAll(c ctx.Ctx, recipient domain.Address) ([]*credit.Credit, error) {
	return im.repo.FindAll(c, recipient)
}

func (im *impl) record(c ctx.Ctx, t activity.Type, actor domain.Address, currency domain.Address, amount *big.Int, now time.Time) {
	if im.activityRepo == nil {
		return
	}
	a, err := activity.New(t, actor, amount, currency, now)
	if err != nil {
		c.WithField("err", err).Error("activity.New failed")
		return
	}
	if err := im.activityRepo.Insert(c, a); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"type": t,
		}).Error("activityRepo.Insert failed")
	}
}
