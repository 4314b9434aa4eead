package auction

import (
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

const (
	DefaultBidPeriod      int64 = 86400
	DefaultBidIncreaseBps int64 = 1000
	MinimumBidIncreaseBps int64 = 100
)

// Key identifies the item an auction record belongs to
type Key struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func NewKey(collection domain.Address, tokenId domain.TokenId) Key {
	return Key{Collection: collection.ToLower(), TokenId: tokenId}
}

func (k Key) String() string {
	return string(k.Collection) + ":" + string(k.TokenId)
}

// Auction is the live record of one item. A record without a seller is an
// early bid placeholder.
type Auction struct {
	Key
	Id int64
	// Seller configured the record. Holder is who the custodian last saw
	// receive the item, seller side calls need both to match.
	Seller           domain.Address
	Holder           domain.Address
	Quantity         int64
	Currency         domain.Address
	MinPrice         *big.Int
	BuyNowPrice      *big.Int
	BidIncreaseBps   int64
	BidPeriod        int64
	EndTime          int64
	HighestBid       *big.Int
	HighestBidder    domain.Address
	Recipient        domain.Address
	WhitelistedBuyer domain.Address
	IsSale           bool
	FeeRecipients    []domain.Address
	FeeBps           []int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a *Auction) Clone() *Auction {
	res := *a
	res.MinPrice = domain.CopyAmount(a.MinPrice)
	res.BuyNowPrice = domain.CopyAmount(a.BuyNowPrice)
	res.HighestBid = domain.CopyAmount(a.HighestBid)
	res.FeeRecipients = append([]domain.Address{}, a.FeeRecipients...)
	res.FeeBps = append([]int64{}, a.FeeBps...)
	return &res
}

func (a *Auction) IsConfigured() bool {
	return !a.Seller.IsEmpty()
}

// IsSellerActive reports whether the seller still holds the item
func (a *Auction) IsSellerActive() bool {
	return a.IsConfigured() && a.Seller.Equals(a.Holder)
}

func (a *Auction) HasBid() bool {
	return a.HighestBid != nil && a.HighestBid.Sign() > 0
}

func (a *Auction) IsStarted() bool {
	return a.EndTime != 0
}

func (a *Auction) IsEnded(now int64) bool {
	return a.EndTime != 0 && now >= a.EndTime
}

func (a *Auction) HasBuyNow() bool {
	return a.BuyNowPrice != nil && a.BuyNowPrice.Sign() > 0
}

// ReachesBuyNow reports whether amount triggers an instant settlement
func (a *Auction) ReachesBuyNow(amount *big.Int) bool {
	return a.IsConfigured() && a.HasBuyNow() && amount.Cmp(a.BuyNowPrice) >= 0
}

// ReachesMinPrice reports whether amount starts the bid period
func (a *Auction) ReachesMinPrice(amount *big.Int) bool {
	return a.IsConfigured() && a.MinPrice != nil && amount.Cmp(a.MinPrice) >= 0
}

// Threshold is the lowest acceptable next bid
func (a *Auction) Threshold() *big.Int {
	if !a.HasBid() {
		return domain.CopyAmount(a.MinPrice)
	}
	res := new(big.Int).Mul(a.HighestBid, big.NewInt(10000+a.BidIncreaseBps))
	return res.Div(res, domain.BpsTotal)
}

// ItemRecipient is where the item goes on settlement
func (a *Auction) ItemRecipient() domain.Address {
	if !a.Recipient.IsEmpty() {
		return a.Recipient
	}
	return a.HighestBidder
}

func (a *Auction) ClearBid() {
	a.HighestBid = new(big.Int)
	a.HighestBidder = ""
	a.Recipient = ""
}

// Terms configure an auction or a sale
type Terms struct {
	Quantity         int64
	Currency         domain.Address
	MinPrice         *big.Int
	BuyNowPrice      *big.Int
	BidIncreaseBps   int64
	BidPeriod        int64
	WhitelistedBuyer domain.Address
	IsSale           bool
	FeeRecipients    []domain.Address
	FeeBps           []int64
}

// DefaultTerms configure an auction with the engine's default period and increase
type DefaultTerms struct {
	Quantity      int64
	Currency      domain.Address
	MinPrice      *big.Int
	BuyNowPrice   *big.Int
	FeeRecipients []domain.Address
	FeeBps        []int64
}

// SaleTerms configure a fixed price sale, optionally for one buyer only
type SaleTerms struct {
	Quantity         int64
	Currency         domain.Address
	Price            *big.Int
	WhitelistedBuyer domain.Address
	FeeRecipients    []domain.Address
	FeeBps           []int64
}

func (t SaleTerms) ToTerms() Terms {
	return Terms{
		Quantity:         t.Quantity,
		Currency:         t.Currency,
		MinPrice:         domain.CopyAmount(t.Price),
		BuyNowPrice:      domain.CopyAmount(t.Price),
		BidIncreaseBps:   DefaultBidIncreaseBps,
		WhitelistedBuyer: t.WhitelistedBuyer,
		IsSale:           true,
		FeeRecipients:    t.FeeRecipients,
		FeeBps:           t.FeeBps,
	}
}

// Validate checks everything that does not need the current record
func (t Terms) Validate(minimumBidIncreaseBps int64) error {
	if t.MinPrice == nil || t.MinPrice.Sign() <= 0 {
		return ErrPriceZero
	}
	if t.BuyNowPrice != nil && t.BuyNowPrice.Sign() < 0 {
		return ErrPriceZero
	}
	if !t.IsSale && t.BuyNowPrice != nil && t.BuyNowPrice.Sign() > 0 {
		// minPrice <= 80% of buyNowPrice
		lhs := new(big.Int).Mul(t.MinPrice, domain.BpsTotal)
		rhs := new(big.Int).Mul(t.BuyNowPrice, big.NewInt(8000))
		if lhs.Cmp(rhs) > 0 {
			return ErrMinPriceTooHigh
		}
	}
	if err := ValidateFees(t.FeeRecipients, t.FeeBps); err != nil {
		return err
	}
	if t.BidIncreaseBps < minimumBidIncreaseBps {
		return ErrBidIncreaseTooLow
	}
	if t.Quantity < 0 {
		return ErrQuantityZero
	}
	if !t.IsSale && t.BidPeriod <= 0 {
		return ErrBidPeriodZero
	}
	return nil
}

// Receipt is returned by every mutating call
type Receipt struct {
	Key     Key   `json:"key"`
	Id      int64 `json:"id"`
	Settled bool  `json:"settled"`
}

type FindAllOptions struct {
	Seller      *domain.Address
	EndedBefore *int64
	// SellerHolding keeps only records whose seller still holds the item
	SellerHolding *bool
	Offset        *int
	Limit         *int
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

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

// WithEndedBefore selects started auctions whose end time is at or before ts
func WithEndedBefore(ts int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndedBefore = &ts
		return nil
	}
}

func WithSellerHolding() FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		holding := true
		options.SellerHolding = &holding
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

type Repo interface {
	// FindOne returns ErrAuctionNotFound if no record lives on key
	FindOne(c ctx.Ctx, key Key) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Upsert(c ctx.Ctx, a *Auction) error
	Delete(c ctx.Ctx, key Key) error
	// NextId returns the next auction sequence number, strictly increasing
	NextId(c ctx.Ctx) (int64, error)
}

type UseCase interface {
	CreateAuction(c ctx.Ctx, caller domain.Address, key Key, terms Terms) (*Receipt, error)
	CreateDefaultAuction(c ctx.Ctx, caller domain.Address, key Key, terms DefaultTerms) (*Receipt, error)
	CreateSale(c ctx.Ctx, caller domain.Address, key Key, terms SaleTerms) (*Receipt, error)

	PlaceBid(c ctx.Ctx, caller domain.Address, key Key, currency domain.Address, amount *big.Int) (*Receipt, error)
	PlaceCustomBid(c ctx.Ctx, caller domain.Address, key Key, currency domain.Address, amount *big.Int, recipient domain.Address) (*Receipt, error)

	TakeHighestBid(c ctx.Ctx, caller domain.Address, key Key) (*Receipt, error)
	SettleAuction(c ctx.Ctx, caller domain.Address, key Key) (*Receipt, error)
	WithdrawAuction(c ctx.Ctx, caller domain.Address, key Key) (*Receipt, error)

	UpdateMinimumPrice(c ctx.Ctx, caller domain.Address, key Key, price *big.Int) (*Receipt, error)
	UpdateBuyNowPrice(c ctx.Ctx, caller domain.Address, key Key, price *big.Int) (*Receipt, error)
	UpdateWhitelistedBuyer(c ctx.Ctx, caller domain.Address, key Key, buyer domain.Address) (*Receipt, error)

	// ReassociateOnExternalTransfer records that the item moved to newOwner
	// outside the engine
	ReassociateOnExternalTransfer(c ctx.Ctx, key Key, newOwner domain.Address) error

	Get(c ctx.Ctx, key Key) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	// FindExpired lists keys whose bid period is over and can be settled
	FindExpired(c ctx.Ctx, limit int) ([]Key, error)
	OwnerOf(c ctx.Ctx, key Key) (domain.Address, error)
}
