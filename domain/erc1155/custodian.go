package erc1155

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

var (
	ErrInsufficientBalance = domain.NewError(domain.ErrAuthorization, "insufficient token balance")
	ErrInvalidValue        = domain.NewError(domain.ErrValidation, "transfer value must be positive")
)

// Transfer is a movement of value units of one token between holders
type Transfer struct {
	Address domain.Address
	TokenId domain.TokenId
	From    domain.Address
	To      domain.Address
	Value   int64
}

// TransferHook observes transfers made outside the engine
type TransferHook func(c ctx.Ctx, t Transfer)

// Custodian tracks who holds how many units of each token
type Custodian interface {
	// OwnerOf returns the holder with the largest balance of the token,
	// domain.ErrNotFound if nobody holds it
	OwnerOf(c ctx.Ctx, address domain.Address, tokenId domain.TokenId) (domain.Address, error)
	BalanceOf(c ctx.Ctx, address domain.Address, tokenId domain.TokenId, owner domain.Address) (int64, error)
	// Deposit mints value units to owner
	Deposit(c ctx.Ctx, address domain.Address, tokenId domain.TokenId, owner domain.Address, value int64) error
	// Transfer moves units on the engine's behalf, hooks are not fired
	Transfer(c ctx.Ctx, t Transfer) error
	// ExternalTransfer moves units on a holder's behalf and fires every hook
	ExternalTransfer(c ctx.Ctx, t Transfer) error
	Subscribe(hook TransferHook)
}
