package http

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/middleware"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction   auction.UseCase
	payTokens domain.PayTokenRepo
}

func New(e *echo.Echo, _auction auction.UseCase, payTokens domain.PayTokenRepo, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{_auction, payTokens}

	e.GET("/auctions", h.findAll)

	g := e.Group("/auctions/:collection/:tokenId", middleware.IsValidAddress("collection"))
	g.GET("", h.get)
	g.GET("/owner", h.ownerOf)

	auth := authMw.Auth()
	g.POST("", h.create, auth)
	g.POST("/default", h.createDefault, auth)
	g.POST("/sale", h.createSale, auth)
	g.POST("/bids", h.placeBid, auth)
	g.POST("/take", h.take, auth)
	g.POST("/settle", h.settle, auth)
	g.POST("/withdraw", h.withdraw, auth)
	g.PATCH("/min-price", h.updateMinPrice, auth)
	g.PATCH("/buy-now-price", h.updateBuyNowPrice, auth)
	g.PATCH("/whitelisted-buyer", h.updateWhitelistedBuyer, auth)
}

func keyOf(c echo.Context) auction.Key {
	return auction.NewKey(domain.Address(c.Param("collection")), domain.TokenId(c.Param("tokenId")))
}

// amountOf parses a validated uint256 string, empty means zero
func amountOf(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return n
}

// bind reports false once it has written a bad request response
func bind(c echo.Context, p interface{}) (bool, error) {
	if err := c.Bind(p); err != nil {
		return false, delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return false, delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	return true, nil
}

func respond(c echo.Context, ctx bCtx.Ctx, op string, r *auction.Receipt, err error) error {
	if err != nil {
		ctx.WithField("err", err).Warn(op + " failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, r)
}

type fees struct {
	FeeRecipients []domain.Address `json:"feeRecipients" validate:"dive,eth_addr"`
	FeeBps        []int64          `json:"feeBps" validate:"dive,min=0,max=10000"`
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	type params struct {
		Quantity       int64          `json:"quantity" validate:"min=0"`
		Currency       domain.Address `json:"currency" validate:"required,eth_addr"`
		MinPrice       string         `json:"minPrice" validate:"required,uint256"`
		BuyNowPrice    string         `json:"buyNowPrice" validate:"omitempty,uint256"`
		BidPeriod      int64          `json:"bidPeriod" validate:"min=0"`
		BidIncreaseBps int64          `json:"bidIncreaseBps" validate:"min=0,max=10000"`
		fees
	}

	p := &params{}
	if ok, err := bind(c, p); !ok {
		return err
	}

	r, err := h.auction.CreateAuction(ctx, authMiddleware.Caller(c), keyOf(c), auction.Terms{
		Quantity:       p.Quantity,
		Currency:       p.Currency,
		MinPrice:       amountOf(p.MinPrice),
		BuyNowPrice:    amountOf(p.BuyNowPrice),
		BidIncreaseBps: p.BidIncreaseBps,
		BidPeriod:      p.BidPeriod,
		FeeRecipients:  p.FeeRecipients,
		FeeBps:         p.FeeBps,
	})
	return respond(c, ctx, "auction.CreateAuction", r, err)
}

func (h *handler) createDefault(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	type params struct {
		Quantity    int64          `json:"quantity" validate:"min=0"`
		Currency    domain.Address `json:"currency" validate:"required,eth_addr"`
		MinPrice    string         `json:"minPrice" validate:"required,uint256"`
		BuyNowPrice string         `json:"buyNowPrice" validate:"omitempty,uint256"`
		fees
	}

	p := &params{}
	if ok, err := bind(c, p); !ok {
		return err
	}

	r, err := h.auction.CreateDefaultAuction(ctx, authMiddleware.Caller(c), keyOf(c), auction.DefaultTerms{
		Quantity:      p.Quantity,
		Currency:      p.Currency,
		MinPrice:      amountOf(p.MinPrice),
		BuyNowPrice:   amountOf(p.BuyNowPrice),
		FeeRecipients: p.FeeRecipients,
		FeeBps:        p.FeeBps,
	})
	return respond(c, ctx, "auction.CreateDefaultAuction", r, err)
}

func (h *handler) createSale(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	type params struct {
		Quantity         int64          `json:"quantity" validate:"min=0"`
		Currency         domain.Address `json:"currency" validate:"required,eth_addr"`
		Price            string         `json:"price" validate:"required,uint256"`
		WhitelistedBuyer domain.Address `json:"whitelistedBuyer" validate:"omitempty,eth_addr"`
		fees
	}

	p := &params{}
	if ok, err := bind(c, p); !ok {
		return err
	}

	r, err := h.auction.CreateSale(ctx, authMiddleware.Caller(c), keyOf(c), auction.SaleTerms{
		Quantity:         p.Quantity,
		Currency:         p.Currency,
		Price:            amountOf(p.Price),
		WhitelistedBuyer: p.WhitelistedBuyer,
		FeeRecipients:    p.FeeRecipients,
		FeeBps:           p.FeeBps,
	})
	return respond(c, ctx, "auction.CreateSale", r, err)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	type params struct {
		Currency  domain.Address `json:"currency" validate:"required,eth_addr"`
		Amount    string         `json:"amount" validate:"required,uint256"`
		Recipient domain.Address `json:"recipient" validate:"omitempty,eth_addr"`
	}

	p := &params{}
	if ok, err := bind(c, p); !ok {
		return err
	}

	caller := authMiddleware.Caller(c)
	if p.Recipient != "" {
		r, err := h.auction.PlaceCustomBid(ctx, caller, keyOf(c), p.Currency, amountOf(p.Amount), p.Recipient)
		return respond(c, ctx, "auction.PlaceCustomBid", r, err)
	}
	r, err := h.auction.PlaceBid(ctx, caller, keyOf(c), p.Currency, amountOf(p.Amount))
	return respond(c, ctx, "auction.PlaceBid", r, err)
}

func (h *handler) take(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	r, err := h.auction.TakeHighestBid(ctx, authMiddleware.Caller(c), keyOf(c))
	return respond(c, ctx, "auction.TakeHighestBid", r, err)
}

func (h *handler) settle(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	r, err := h.auction.SettleAuction(ctx, authMiddleware.Caller(c), keyOf(c))
	return respond(c, ctx, "auction.SettleAuction", r, err)
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	r, err := h.auction.WithdrawAuction(ctx, authMiddleware.Caller(c), keyOf(c))
	return respond(c, ctx, "auction.WithdrawAuction", r, err)
}

type priceParams struct {
	Price string `json:"price" validate:"required,uint256"`
}

func (h *handler) updateMinPrice(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	p := &priceParams{}
	if ok, err := bind(c, p); !ok {
		return err
	}
	r, err := h.auction.UpdateMinimumPrice(ctx, authMiddleware.Caller(c), keyOf(c), amountOf(p.Price))
	return respond(c, ctx, "auction.UpdateMinimumPrice", r, err)
}

func (h *handler) updateBuyNowPrice(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	p := &priceParams{}
	if ok, err := bind(c, p); !ok {
		return err
	}
	r, err := h.auction.UpdateBuyNowPrice(ctx, authMiddleware.Caller(c), keyOf(c), amountOf(p.Price))
	return respond(c, ctx, "auction.UpdateBuyNowPrice", r, err)
}

func (h *handler) updateWhitelistedBuyer(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	type params struct {
		Buyer domain.Address `json:"buyer" validate:"omitempty,eth_addr"`
	}
	p := &params{}
	if ok, err := bind(c, p); !ok {
		return err
	}
	r, err := h.auction.UpdateWhitelistedBuyer(ctx, authMiddleware.Caller(c), keyOf(c), p.Buyer)
	return respond(c, ctx, "auction.UpdateWhitelistedBuyer", r, err)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	a, err := h.auction.Get(ctx, keyOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.toView(ctx, a))
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	type params struct {
		Seller *domain.Address `query:"seller"`
		Offset int             `query:"offset"`
		Limit  int             `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil || p.Offset < 0 || p.Limit < 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []auction.FindAllOptionsFunc{
		auction.WithPagination(p.Offset, p.Limit),
	}
	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}

	res, err := h.auction.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	views := make([]*view, 0, len(res))
	for _, a := range res {
		views = append(views, h.toView(ctx, a))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, views)
}

func (h *handler) ownerOf(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	owner, err := h.auction.OwnerOf(ctx, keyOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, owner)
}

type feeView struct {
	Recipient domain.Address `json:"recipient"`
	Bps       int64          `json:"bps"`
	Percent   string         `json:"percent"`
}

type view struct {
	Collection       domain.Address `json:"collection"`
	TokenId          domain.TokenId `json:"tokenId"`
	Id               int64          `json:"id"`
	Seller           domain.Address `json:"seller"`
	Holder           domain.Address `json:"holder"`
	Quantity         int64          `json:"quantity"`
	Currency         domain.Address `json:"currency"`
	MinPrice         string         `json:"minPrice"`
	DisplayMinPrice  string         `json:"displayMinPrice"`
	BuyNowPrice      string         `json:"buyNowPrice"`
	DisplayBuyNow    string         `json:"displayBuyNowPrice"`
	BidIncreaseBps   int64          `json:"bidIncreaseBps"`
	BidPeriod        int64          `json:"bidPeriod"`
	EndTime          int64          `json:"endTime"`
	HighestBid       string         `json:"highestBid"`
	DisplayBid       string         `json:"displayHighestBid"`
	HighestBidder    domain.Address `json:"highestBidder"`
	Recipient        domain.Address `json:"recipient"`
	WhitelistedBuyer domain.Address `json:"whitelistedBuyer"`
	IsSale           bool           `json:"isSale"`
	Fees             []feeView      `json:"fees"`
}

func (h *handler) toView(ctx bCtx.Ctx, a *auction.Auction) *view {
	decimals := h.decimals(ctx, a.Currency)
	v := &view{
		Collection:       a.Collection,
		TokenId:          a.TokenId,
		Id:               a.Id,
		Seller:           a.Seller,
		Holder:           a.Holder,
		Quantity:         a.Quantity,
		Currency:         a.Currency,
		MinPrice:         domain.CopyAmount(a.MinPrice).String(),
		DisplayMinPrice:  display(a.MinPrice, decimals),
		BuyNowPrice:      domain.CopyAmount(a.BuyNowPrice).String(),
		DisplayBuyNow:    display(a.BuyNowPrice, decimals),
		BidIncreaseBps:   a.BidIncreaseBps,
		BidPeriod:        a.BidPeriod,
		EndTime:          a.EndTime,
		HighestBid:       domain.CopyAmount(a.HighestBid).String(),
		DisplayBid:       display(a.HighestBid, decimals),
		HighestBidder:    a.HighestBidder,
		Recipient:        a.Recipient,
		WhitelistedBuyer: a.WhitelistedBuyer,
		IsSale:           a.IsSale,
		Fees:             []feeView{},
	}
	for i, r := range a.FeeRecipients {
		v.Fees = append(v.Fees, feeView{
			Recipient: r,
			Bps:       a.FeeBps[i],
			Percent:   decimal.New(a.FeeBps[i], -2).String(),
		})
	}
	return v
}

// decimals of currency, 0 shows raw amounts for unknown currencies
func (h *handler) decimals(ctx bCtx.Ctx, currency domain.Address) int32 {
	if currency == "" {
		return 0
	}
	token, err := h.payTokens.FindOne(ctx, currency)
	if err != nil {
		return 0
	}
	return token.Decimals
}

func display(amount *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(domain.CopyAmount(amount), -decimals).String()
}
