package credit

import (
	"math/big"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

var ErrNoCredits = domain.NewError(domain.ErrPayment, "no credits to withdraw")

// Credit is an amount the engine owes recipient but could not push
type Credit struct {
	Recipient domain.Address `json:"recipient"`
	Currency  domain.Address `json:"currency"`
	Amount    *big.Int       `json:"amount"`
}

type Repo interface {
	// Add accumulates amount on (recipient, currency) and returns the new balance
	Add(c ctx.Ctx, recipient domain.Address, currency domain.Address, amount *big.Int) (*Credit, error)
	// FindAll lists every non zero balance of recipient
	FindAll(c ctx.Ctx, recipient domain.Address) ([]*Credit, error)
	// Take atomically zeroes and returns every balance of recipient
	Take(c ctx.Ctx, recipient domain.Address) ([]*Credit, error)
}

// Transferer moves one currency in and out of the engine's escrow
type Transferer interface {
	// Receive pulls amount from payer into escrow
	Receive(c ctx.Ctx, currency domain.Address, from domain.Address, amount *big.Int) error
	// Send pushes amount from escrow to recipient. An error means the
	// recipient could not take the funds.
	Send(c ctx.Ctx, currency domain.Address, to domain.Address, amount *big.Int) error
}

// Dispatcher moves funds between the engine and its users
type Dispatcher interface {
	Collect(c ctx.Ctx, payer domain.Address, currency domain.Address, amount *big.Int) error
	// Dispatch pushes amount to recipient and falls back to a credit. Only a
	// failure to record the credit is returned.
	Dispatch(c ctx.Ctx, recipient domain.Address, currency domain.Address, amount *big.Int) error
}

type UseCase interface {
	Dispatcher

	// Withdraw pushes every credit of caller, returns what was paid out
	Withdraw(c ctx.Ctx, caller domain.Address) ([]*Credit, error)
	FindAll(c ctx.Ctx, recipient domain.Address) ([]*Credit, error)
}
