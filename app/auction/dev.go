package main

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/erc1155"
	"github.com/x-xyz/goauction/service/wallet"
)

// devHandler seeds holdings and balances so the engine can be driven
// end to end without a chain behind it.
type devHandler struct {
	custodian erc1155.Custodian
	funds     *wallet.Wallet
}

func newDevHandler(e *echo.Echo, custodian erc1155.Custodian, funds *wallet.Wallet) {
	h := &devHandler{
		custodian: custodian,
		funds:     funds,
	}
	g := e.Group("/dev")
	g.POST("/deposit", h.deposit)
	g.POST("/transfer", h.transfer)
	g.POST("/fund", h.fund)
	g.GET("/balances/:currency/:owner", h.balance)
}

type itemParams struct {
	Address domain.Address `json:"collection" validate:"required,eth_addr"`
	TokenId domain.TokenId `json:"tokenId" validate:"required,uint256"`
	Value   int64          `json:"value" validate:"gt=0"`
}

func bindDev(c echo.Context, p interface{}) (bool, error) {
	if err := c.Bind(p); err != nil {
		return false, delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return false, delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	return true, nil
}

func (h *devHandler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		itemParams
		Owner domain.Address `json:"owner" validate:"required,eth_addr"`
	}
	p := &params{}
	if ok, err := bindDev(c, p); !ok {
		return err
	}

	if err := h.custodian.Deposit(ctx, p.Address.ToLower(), p.TokenId, p.Owner.ToLower(), p.Value); err != nil {
		ctx.WithFields(itemFields(p.Address, p.TokenId, err)).Error("custodian.Deposit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// transfer moves units outside the engine, the same way a direct chain
// transfer would
func (h *devHandler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		itemParams
		From domain.Address `json:"from" validate:"required,eth_addr"`
		To   domain.Address `json:"to" validate:"required,eth_addr"`
	}
	p := &params{}
	if ok, err := bindDev(c, p); !ok {
		return err
	}

	t := erc1155.Transfer{
		Address: p.Address.ToLower(),
		TokenId: p.TokenId,
		From:    p.From.ToLower(),
		To:      p.To.ToLower(),
		Value:   p.Value,
	}
	if err := h.custodian.ExternalTransfer(ctx, t); err != nil {
		ctx.WithFields(itemFields(p.Address, p.TokenId, err)).Error("custodian.ExternalTransfer failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *devHandler) fund(c echo.Context) error {
	type params struct {
		Currency domain.Address `json:"currency" validate:"omitempty,eth_addr"`
		Owner    domain.Address `json:"owner" validate:"required,eth_addr"`
		Amount   string         `json:"amount" validate:"required,uint256"`
	}
	p := &params{}
	if ok, err := bindDev(c, p); !ok {
		return err
	}
	if p.Currency == "" {
		p.Currency = domain.NativeCurrency
	}

	amount, _ := new(big.Int).SetString(p.Amount, 10)
	h.funds.Fund(p.Currency, p.Owner, amount)
	return delivery.MakeJsonResp(c, http.StatusOK, h.funds.BalanceOf(p.Currency, p.Owner).String())
}

func (h *devHandler) balance(c echo.Context) error {
	currency := domain.Address(c.Param("currency"))
	owner := domain.Address(c.Param("owner"))
	return delivery.MakeJsonResp(c, http.StatusOK, h.funds.BalanceOf(currency, owner).String())
}

func itemFields(address domain.Address, tokenId domain.TokenId, err error) log.Fields {
	return log.Fields{
		"address": address,
		"tokenId": tokenId,
		"err":     err,
	}
}
