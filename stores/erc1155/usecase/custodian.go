package usecase

import (
	"sync"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/keylock"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/erc1155"
)

type CustodianCfg struct {
	Holding erc1155.HoldingRepo
}

type custodian struct {
	holding erc1155.HoldingRepo
	locks   *keylock.KeyLock

	hookLock sync.RWMutex
	hooks    []erc1155.TransferHook
}

func NewCustodian(cfg *CustodianCfg) erc1155.Custodian {
	return &custodian{
		holding: cfg.Holding,
		locks:   keylock.New(),
	}
}

func tokenKey(address domain.Address, tokenId domain.TokenId) string {
	return address.ToLowerStr() + ":" + tokenId.String()
}

func (u *custodian) OwnerOf(ctx bCtx.Ctx, address domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	holdings, err := u.holding.FindAll(ctx, erc1155.WithToken(address, tokenId))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"tokenId": tokenId,
		}).Error("holding.FindAll failed")
		return "", err
	}
	var (
		owner domain.Address
		best  int64
	)
	for _, h := range holdings {
		if h.Balance > best {
			owner = h.Owner
			best = h.Balance
		}
	}
	if best == 0 {
		return "", domain.ErrNotFound
	}
	return owner, nil
}

func (u *custodian) BalanceOf(ctx bCtx.Ctx, address domain.Address, tokenId domain.TokenId, owner domain.Address) (int64, error) {
	h, err := u.holding.FindOne(ctx, erc1155.NewHoldingId(address, tokenId, owner))
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"tokenId": tokenId,
			"owner":   owner,
		}).Error("holding.FindOne failed")
		return 0, err
	}
	return h.Balance, nil
}

func (u *custodian) Deposit(ctx bCtx.Ctx, address domain.Address, tokenId domain.TokenId, owner domain.Address, value int64) error {
	if value <= 0 {
		return erc1155.ErrInvalidValue
	}
	unlock := u.locks.Lock(tokenKey(address, tokenId))
	defer unlock()

	if _, err := u.holding.Increment(ctx, erc1155.NewHoldingId(address, tokenId, owner), value); err != nil {
		ctx.WithField("err", err).Error("holding.Increment failed")
		return err
	}
	return nil
}

func (u *custodian) Transfer(ctx bCtx.Ctx, t erc1155.Transfer) error {
	return u.move(ctx, t)
}

func (u *custodian) ExternalTransfer(ctx bCtx.Ctx, t erc1155.Transfer) error {
	if err := u.move(ctx, t); err != nil {
		return err
	}

	u.hookLock.RLock()
	hooks := append([]erc1155.TransferHook{}, u.hooks...)
	u.hookLock.RUnlock()

	t.Address = t.Address.ToLower()
	t.From = t.From.ToLower()
	t.To = t.To.ToLower()
	for _, hook := range hooks {
		hook(ctx, t)
	}
	return nil
}

func (u *custodian) Subscribe(hook erc1155.TransferHook) {
	u.hookLock.Lock()
	defer u.hookLock.Unlock()
	u.hooks = append(u.hooks, hook)
}

// move debits from and credits to. A holding that drops to zero is removed.
func (u *custodian) move(ctx bCtx.Ctx, t erc1155.Transfer) error {
	if t.Value <= 0 {
		return erc1155.ErrInvalidValue
	}
	unlock := u.locks.Lock(tokenKey(t.Address, t.TokenId))
	defer unlock()

	fromId := erc1155.NewHoldingId(t.Address, t.TokenId, t.From)
	balance, err := u.BalanceOf(ctx, t.Address, t.TokenId, t.From)
	if err != nil {
		return err
	}
	if balance < t.Value {
		return erc1155.ErrInsufficientBalance
	}

	from, err := u.holding.Increment(ctx, fromId, -t.Value)
	if err != nil {
		ctx.WithField("err", err).Error("holding.Increment failed")
		return xerrors.Errorf("debit %s: %w", t.From, err)
	}
	if from.Balance == 0 {
		if err := u.holding.Delete(ctx, fromId); err != nil && err != domain.ErrNotFound {
			ctx.WithField("err", err).Error("holding.Delete failed")
			return err
		}
	}

	if _, err := u.holding.Increment(ctx, erc1155.NewHoldingId(t.Address, t.TokenId, t.To), t.Value); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"transfer": t,
		}).Error("holding.Increment failed")
		return xerrors.Errorf("credit %s: %w", t.To, err)
	}

	ctx.WithFields(log.Fields{
		"address": t.Address,
		"tokenId": t.TokenId,
		"from":    t.From,
		"to":      t.To,
		"value":   t.Value,
	}).Info("erc1155 transfer")
	return nil
}
