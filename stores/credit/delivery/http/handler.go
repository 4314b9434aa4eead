package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/credit"
	"github.com/x-xyz/goauction/middleware"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	credit    credit.UseCase
	payTokens domain.PayTokenRepo
}

func New(e *echo.Echo, _credit credit.UseCase, payTokens domain.PayTokenRepo, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{_credit, payTokens}
	g := e.Group("/credits")
	g.GET("/:address", h.getCredits, middleware.IsValidAddress("address"))
	g.POST("/withdraw", h.withdraw, authMw.Auth())
}

type creditView struct {
	Currency      domain.Address `json:"currency"`
	Symbol        string         `json:"symbol"`
	Amount        string         `json:"amount"`
	DisplayAmount string         `json:"displayAmount"`
}

func (h *handler) toViews(ctx bCtx.Ctx, credits []*credit.Credit) []creditView {
	res := make([]creditView, 0, len(credits))
	for _, c := range credits {
		v := creditView{
			Currency:      c.Currency,
			Amount:        c.Amount.String(),
			DisplayAmount: c.Amount.String(),
		}
		if token, err := h.payTokens.FindOne(ctx, c.Currency); err == nil {
			v.Symbol = token.Symbol
			v.DisplayAmount = decimal.NewFromBigInt(c.Amount, -token.Decimals).String()
		}
		res = append(res, v)
	}
	return res
}

func (h *handler) getCredits(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	res, err := h.credit.FindAll(ctx, domain.Address(c.Param("address")).ToLower())
	if err != nil {
		ctx.WithField("err", err).Error("credit.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.toViews(ctx, res))
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	paid, err := h.credit.Withdraw(ctx, authMiddleware.Caller(c))
	if err != nil {
		ctx.WithField("err", err).Warn("credit.Withdraw failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.toViews(ctx, paid))
}
