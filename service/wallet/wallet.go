// Package wallet is an in-process ledger of native value and token balances.
// It backs local runs and tests where no chain is attached.
package wallet

import (
	"errors"
	"math/big"
	"sync"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
)

var (
	ErrInsufficientBalance = errors.New("wallet: insufficient balance")
	ErrInsufficientEscrow  = errors.New("wallet: insufficient escrow")
	ErrRejected            = errors.New("wallet: recipient rejected transfer")
	ErrNegativeAmount      = errors.New("wallet: negative amount")
)

// Wallet implements credit.Transferer. Funds received sit in escrow until sent.
type Wallet struct {
	mu       sync.Mutex
	balances map[domain.Address]map[domain.Address]*big.Int
	escrow   map[domain.Address]*big.Int
	rejected map[domain.Address]bool
}

func New() *Wallet {
	return &Wallet{
		balances: map[domain.Address]map[domain.Address]*big.Int{},
		escrow:   map[domain.Address]*big.Int{},
		rejected: map[domain.Address]bool{},
	}
}

func (w *Wallet) balance(currency, owner domain.Address) *big.Int {
	currency, owner = currency.ToLower(), owner.ToLower()
	m, ok := w.balances[currency]
	if !ok {
		m = map[domain.Address]*big.Int{}
		w.balances[currency] = m
	}
	b, ok := m[owner]
	if !ok {
		b = new(big.Int)
		m[owner] = b
	}
	return b
}

func (w *Wallet) escrowOf(currency domain.Address) *big.Int {
	currency = currency.ToLower()
	b, ok := w.escrow[currency]
	if !ok {
		b = new(big.Int)
		w.escrow[currency] = b
	}
	return b
}

// Fund mints amount of currency to owner
func (w *Wallet) Fund(currency, owner domain.Address, amount *big.Int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b := w.balance(currency, owner)
	b.Add(b, amount)
}

func (w *Wallet) BalanceOf(currency, owner domain.Address) *big.Int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return domain.CopyAmount(w.balance(currency, owner))
}

func (w *Wallet) Escrow(currency domain.Address) *big.Int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return domain.CopyAmount(w.escrowOf(currency))
}

// Reject makes every later Send to owner fail until Accept is called
func (w *Wallet) Reject(owner domain.Address) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rejected[owner.ToLower()] = true
}

func (w *Wallet) Accept(owner domain.Address) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.rejected, owner.ToLower())
}

func (w *Wallet) Receive(c bCtx.Ctx, currency domain.Address, from domain.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	b := w.balance(currency, from)
	if b.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	b.Sub(b, amount)
	e := w.escrowOf(currency)
	e.Add(e, amount)
	return nil
}

func (w *Wallet) Send(c bCtx.Ctx, currency domain.Address, to domain.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.rejected[to.ToLower()] {
		return ErrRejected
	}
	e := w.escrowOf(currency)
	if e.Cmp(amount) < 0 {
		c.WithFields(log.Fields{
			"currency": currency,
			"escrow":   e,
			"amount":   amount,
		}).Error("escrow short")
		return ErrInsufficientEscrow
	}
	e.Sub(e, amount)
	b := w.balance(currency, to)
	b.Add(b, amount)
	return nil
}
