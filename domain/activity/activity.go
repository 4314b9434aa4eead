package activity

import (
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type Type string

const (
	TypeAuctionCreated   Type = "auctionCreated"
	TypeSaleCreated      Type = "saleCreated"
	TypeBidMade          Type = "bidMade"
	TypeBidRefunded      Type = "bidRefunded"
	TypeSettled          Type = "settled"
	TypeWithdrawn        Type = "withdrawn"
	TypeMinPriceUpdated  Type = "minPriceUpdated"
	TypeBuyNowUpdated    Type = "buyNowPriceUpdated"
	TypeWhitelistUpdated Type = "whitelistedBuyerUpdated"
	TypeHolderChanged    Type = "holderChanged"
	TypeCreditRecorded   Type = "creditRecorded"
	TypeCreditsWithdrawn Type = "creditsWithdrawn"
)

type Activity struct {
	Id         uuid.UUID      `json:"id" bson:"_id"`
	Type       Type           `json:"type" bson:"type"`
	Collection domain.Address `json:"collection,omitempty" bson:"collection,omitempty"`
	TokenId    domain.TokenId `json:"tokenId,omitempty" bson:"tokenId,omitempty"`
	AuctionId  int64          `json:"auctionId,omitempty" bson:"auctionId,omitempty"`
	Actor      domain.Address `json:"actor,omitempty" bson:"actor,omitempty"`
	Amount     string         `json:"amount,omitempty" bson:"amount,omitempty"`
	Currency   domain.Address `json:"currency,omitempty" bson:"currency,omitempty"`
	Time       time.Time      `json:"time" bson:"time"`
}

// New stamps a fresh id on an activity
func New(t Type, actor domain.Address, amount *big.Int, currency domain.Address, now time.Time) (*Activity, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	a := &Activity{
		Id:       id,
		Type:     t,
		Actor:    actor.ToLower(),
		Currency: currency.ToLower(),
		Time:     now,
	}
	if amount != nil {
		a.Amount = amount.String()
	}
	return a, nil
}

type FindAllOptions struct {
	Collection *domain.Address `bson:"collection,omitempty"`
	TokenId    *domain.TokenId `bson:"tokenId,omitempty"`
	Actor      *domain.Address `bson:"actor,omitempty"`
	Type       *Type           `bson:"type,omitempty"`
	Offset     *int            `bson:"-"`
	Limit      *int            `bson:"-"`
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

func WithItem(collection domain.Address, tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		options.TokenId = &tokenId
		return nil
	}
}

func WithActor(actor domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Actor = actor.ToLowerPtr()
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithPagination(offset int, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// Repo lists newest first
type Repo interface {
	Insert(c ctx.Ctx, a *Activity) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Activity, error)
}
