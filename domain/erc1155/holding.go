package erc1155

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type Holding struct {
	Address domain.Address `json:"address" bson:"address"`
	TokenId domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner   domain.Address `json:"owner" bson:"owner"`
	Balance int64          `json:"balance" bson:"balance"`
}

type HoldingId struct {
	Address domain.Address `bson:"address"`
	TokenId domain.TokenId `bson:"tokenId"`
	Owner   domain.Address `bson:"owner"`
}

func NewHoldingId(address domain.Address, tokenId domain.TokenId, owner domain.Address) HoldingId {
	return HoldingId{Address: address.ToLower(), TokenId: tokenId, Owner: owner.ToLower()}
}

type FindAllOptions struct {
	Owner   *domain.Address
	Address *domain.Address
	TokenId *domain.TokenId
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = owner.ToLowerPtr()
		return nil
	}
}

func WithHoldingAddress(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Address = address.ToLowerPtr()
		return nil
	}
}

func WithToken(address domain.Address, tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Address = address.ToLowerPtr()
		options.TokenId = &tokenId
		return nil
	}
}

type HoldingRepo interface {
	// FindOne returns domain.ErrNotFound when owner never held the token
	FindOne(c ctx.Ctx, id HoldingId) (*Holding, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Holding, error)
	Delete(c ctx.Ctx, id HoldingId) error
	// Increment adds value to the balance, creating the holding if needed
	Increment(c ctx.Ctx, id HoldingId, value int64) (*Holding, error)
}
